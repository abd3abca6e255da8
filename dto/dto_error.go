package dto

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

type ValidationResponse struct {
	Errors []FieldError `json:"errors"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}
