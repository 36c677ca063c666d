package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	return &APIServer{
		app:           app,
		listenAddress: listenAddress,
	}
}

// errorHandler is the last line of defense: anything a handler did not map
// itself comes out as the uniform failure envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
			"path":  c.OriginalURL(),
		})
	}

	log.Println("Server error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal server error",
		"message": err.Error(),
	})
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting API Server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}
