package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"devconnector/internal/logger"
)

// RequestRecorder receives one observation per finished request.
type RequestRecorder interface {
	RecordRequest(method, route string, status int, d time.Duration)
}

// RequestLogger logs every request with zap and feeds rec. Errors from the
// chain are rendered here so the logged status is the one sent.
func RequestLogger(log *zap.Logger, rec RequestRecorder) fiber.Handler {
	log = logger.OrNop(log)
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()

		route := c.Route().Path
		if rec != nil {
			rec.RecordRequest(c.Method(), route, status, elapsed)
		}

		rid, _ := c.Locals("requestid").(string)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("request_id", rid),
			zap.String("ip", c.IP()),
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("request", fields...)
		} else {
			log.Info("request", fields...)
		}
		return nil
	}
}
