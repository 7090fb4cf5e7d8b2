package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID header donde viaja el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// RequestID asigna un identificador único a cada petición si el cliente no
// trae uno, y lo refleja en la respuesta para correlación en los logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(HeaderRequestID, requestID)
		c.Set(HeaderRequestID, requestID)
		return c.Next()
	}
}
