package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"devconnector/dto"
	"devconnector/internal/services"
)

const defaultTimeout = 5 * time.Second

// reqCtx bounds a service call by the configured request timeout.
func reqCtx(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

// statusOf maps a service error kind to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrForbidden):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func respondErr(c *fiber.Ctx, err error) error {
	var verr services.ValidationErrors
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationResponse{Errors: verr})
	}
	status := statusOf(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(dto.ErrorResponse{Msg: "Server Error"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Msg: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "invalid body"})
}
