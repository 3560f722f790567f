package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Recovery - middleware для восстановления после паники.
// Паника уходит в структурированный лог вместе с идентификатором запроса.
func Recovery(logger *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			requestID, _ := c.Locals(RequestIDKey).(string)
			logger.Error("Panic recovered",
				zap.Any("panic", e),
				zap.String("path", c.Path()),
				zap.String("request_id", requestID),
				zap.Stack("stack"),
			)
		},
	})
}
