package handlers

import (
	"time"

	"github.com/campushub/api/database"
	"github.com/gofiber/fiber/v2"
)

// HandleCheckHealth handles GET /api/health
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":    "DEGRADED",
			"message":   err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "OK",
		"message":   "CampusHub API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
