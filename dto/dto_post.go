package dto

type CreatePostReq struct {
	Text string `json:"text" validate:"required"`
}

type CreateCommentReq struct {
	Text string `json:"text" validate:"required"`
}
