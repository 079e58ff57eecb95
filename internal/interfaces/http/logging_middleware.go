package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/weimars70/conta-hencker/pkg/logger"
)

// LocalRequestID key del identificador de la petición en Fiber.
const LocalRequestID = "request_id"

// LoggingMiddleware asigna un request id, lo propaga en la respuesta y
// registra cada petición con método, ruta, estado y latencia.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-ID", requestID)

		inicio := time.Now()
		err := c.Next()
		latencia := time.Since(inicio)

		evt := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", latencia).
			Msg("request")

		return err
	}
}
