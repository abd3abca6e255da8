package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"devconnector/dto"
	"devconnector/internal/middleware"
	"devconnector/internal/models"
)

type ProfileService interface {
	GetMine(ctx context.Context, uid string) (*models.ProfileView, error)
	Upsert(ctx context.Context, uid string, req dto.ProfileReq) (*models.ProfileView, error)
	ListAll(ctx context.Context) ([]models.ProfileView, error)
	GetByUserID(ctx context.Context, userID string) (*models.ProfileView, error)
}

type ProfileHandler struct {
	Service ProfileService
	Timeout time.Duration
}

func NewProfileHandler(svc ProfileService, timeout time.Duration) *ProfileHandler {
	return &ProfileHandler{Service: svc, Timeout: timeout}
}

// @Summary      Current user's profile
// @Tags         profile
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  models.ProfileView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /profile/me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	p, err := h.Service.GetMine(ctx, uid)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(p)
}

// @Summary      Create or update own profile
// @Description  Blank fields keep their stored value. skills is comma separated.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      dto.ProfileReq  true  "Profile fields"
// @Success      200   {object}  models.ProfileView
// @Failure      400   {object}  dto.ValidationResponse
// @Router       /profile [post]
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	var body dto.ProfileReq
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	p, err := h.Service.Upsert(ctx, uid, body)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(p)
}

// @Summary      List profiles
// @Tags         profile
// @Produce      json
// @Success      200  {array}  models.ProfileView
// @Router       /profile [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	profiles, err := h.Service.ListAll(ctx)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(profiles)
}

// @Summary      Profile by user ID
// @Tags         profile
// @Produce      json
// @Param        userId  path      string  true  "User ID (hex ObjectID)"
// @Success      200     {object}  models.ProfileView
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /profile/user/{userId} [get]
func (h *ProfileHandler) ByUser(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	p, err := h.Service.GetByUserID(ctx, c.Params("userId"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(p)
}
