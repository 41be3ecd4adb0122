package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// SerializeWrites toma el cerrojo compartido con el intérprete en POST/PUT/PATCH/DELETE,
// de modo que leer-modificar-escribir sobre el store no se intercale con una orden de chat.
// No debe montarse en rutas que ejecutan el intérprete (ya toma el mismo cerrojo).
func SerializeWrites(l sync.Locker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l == nil {
			return c.Next()
		}
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		l.Lock()
		defer l.Unlock()
		return c.Next()
	}
}
