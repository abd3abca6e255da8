package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"devconnector/dto"
	"devconnector/internal/logger"
)

// ErrorHandler renders errors that reach Fiber as {"msg": ...}. Anything
// that is not a *fiber.Error is logged and hidden behind a 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	log = logger.OrNop(log)
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Msg: fe.Message})
		}
		log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server Error"})
	}
}
