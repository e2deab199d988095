package serverutils

import (
	"errors"

	"sentiment-dashboard/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// StatusRule maps a sentinel error (matched with errors.Is) to an HTTP status.
type StatusRule struct {
	Err    error
	Status int
}

// StatusFor resolves the response status for err. *fiber.Error keeps its own
// code; unmatched errors are 500.
func StatusFor(err error, rules []StatusRule) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	for _, r := range rules {
		if errors.Is(err, r.Err) {
			return r.Status
		}
	}
	return fiber.StatusInternalServerError
}

// ErrorHandlerMiddleware converts handler errors into BaseResponse JSON.
func ErrorHandlerMiddleware(log logger.ILogger, rules []StatusRule) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		code := StatusFor(err, rules)
		details := map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"status": code,
			"error":  err,
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "request failed", details)
		} else {
			log.Warn("HTTP", "request rejected", details)
		}
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
