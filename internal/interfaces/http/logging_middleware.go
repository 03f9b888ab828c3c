package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-intel/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
