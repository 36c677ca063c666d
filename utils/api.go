package utils

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/campushub/api/database"
)

// MakeHTTPHandleFunc binds a store-aware handler into a Fiber handler,
// mapping any unhandled error onto the failure envelope.
func MakeHTTPHandleFunc(handler func(c *fiber.Ctx, store database.Storage) error, store database.Storage) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := handler(c, store); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Internal server error",
				"message": err.Error(),
			})
		}
		return nil
	}
}
