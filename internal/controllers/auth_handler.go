package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"devconnector/dto"
	"devconnector/internal/middleware"
	"devconnector/internal/models"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterReq) (string, error)
	Login(ctx context.Context, req dto.LoginReq) (string, error)
	Me(ctx context.Context, uid string) (*models.User, error)
}

type AuthHandler struct {
	Service AuthService
	Timeout time.Duration
}

func NewAuthHandler(svc AuthService, timeout time.Duration) *AuthHandler {
	return &AuthHandler{Service: svc, Timeout: timeout}
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterReq  true  "Account"
// @Success      201   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ValidationResponse
// @Router       /users [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterReq
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	tok, err := h.Service.Register(ctx, body)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{Token: tok})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginReq  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	tok, err := h.Service.Login(ctx, body)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.TokenResponse{Token: tok})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c, h.Timeout)
	defer cancel()
	u, err := h.Service.Me(ctx, uid)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(u)
}
