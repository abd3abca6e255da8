package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"devconnector/dto"
	"devconnector/internal/middleware"
	"devconnector/internal/models"
)

type PostService interface {
	Create(ctx context.Context, uid, text string) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, uid, id string) error
	Like(ctx context.Context, uid, id string) ([]models.Like, error)
	Unlike(ctx context.Context, uid, id string) ([]models.Like, error)
	AddComment(ctx context.Context, uid, id, text string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, uid, id, commentID string) ([]models.Comment, error)
}

type PostHandler struct {
	Service PostService
	Timeout time.Duration
}

func NewPostHandler(svc PostService, timeout time.Duration) *PostHandler {
	return &PostHandler{Service: svc, Timeout: timeout}
}

// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      dto.CreatePostReq  true  "Post text"
// @Success      201   {object}  models.Post
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	var body dto.CreatePostReq
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	post, err := h.Service.Create(ctx, uid, body.Text)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// @Summary      List posts
// @Description  All posts, newest first
// @Tags         posts
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   models.Post
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	posts, err := h.Service.ListAll(ctx)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(posts)
}

// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  models.Post
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	post, err := h.Service.GetByID(ctx, c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(post)
}

// @Summary      Delete a post
// @Description  Only the author may delete a post
// @Tags         posts
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Post ID (hex ObjectID)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	if err := h.Service.Delete(ctx, uid, c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Msg: "Post removed"})
}

// @Summary      Like a post
// @Tags         likes
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Post ID (hex ObjectID)"
// @Success      200  {array}   models.Like
// @Failure      403  {object}  dto.ErrorResponse  "already liked"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/like/{id} [put]
func (h *PostHandler) Like(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	likes, err := h.Service.Like(ctx, uid, c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(likes)
}

// @Summary      Unlike a post
// @Tags         likes
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Post ID (hex ObjectID)"
// @Success      200  {array}   models.Like
// @Failure      403  {object}  dto.ErrorResponse  "not liked yet"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/unlike/{id} [put]
func (h *PostHandler) Unlike(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	likes, err := h.Service.Unlike(ctx, uid, c.Params("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(likes)
}

// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path      string                true  "Post ID (hex ObjectID)"
// @Param        body  body      dto.CreateCommentReq  true  "Comment text"
// @Success      200   {array}   models.Comment
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/comment/{id} [put]
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	comments, err := h.Service.AddComment(ctx, uid, c.Params("id"), body.Text)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(comments)
}

// @Summary      Delete a comment
// @Description  Only the comment's author may delete it
// @Tags         comments
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id         path      string  true  "Post ID (hex ObjectID)"
// @Param        commentId  path      string  true  "Comment ID (hex ObjectID)"
// @Success      200        {array}   models.Comment
// @Failure      401        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /posts/comment/{id}/{commentId} [delete]
func (h *PostHandler) DeleteComment(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	comments, err := h.Service.DeleteComment(ctx, uid, c.Params("id"), c.Params("commentId"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(comments)
}
