package router

import (
	"os"

	"github.com/campushub/api/database"
	"github.com/campushub/api/handlers"
	event_handlers "github.com/campushub/api/handlers/event"
	resource_handlers "github.com/campushub/api/handlers/resource"
	student_handlers "github.com/campushub/api/handlers/student"
	"github.com/campushub/api/services"
	"github.com/campushub/api/utils"
	"github.com/campushub/api/utils/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: allowedOrigins,
	})

	// Initialize handlers
	eventHandler := event_handlers.NewEventHandler(store)
	studentService := services.NewStudentService(store)
	studentHandler := student_handlers.NewStudentHandler(store, studentService)
	resourceHandler := resource_handlers.NewResourceHandler(store)

	api := app.Group("/api")

	// Health check endpoint
	api.Get("/health", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// Events routes
	events := api.Group("/events")
	events.Get("/", eventHandler.ListEvents)
	events.Get("/:id", eventHandler.GetEvent)
	events.Post("/", eventHandler.CreateEvent)
	events.Put("/:id", eventHandler.UpdateEvent)
	events.Delete("/:id", eventHandler.DeleteEvent)

	// Students routes
	students := api.Group("/students")
	students.Get("/", studentHandler.ListStudents)
	students.Get("/:id", studentHandler.GetStudent)
	students.Post("/", studentHandler.CreateStudent)
	students.Put("/:id", studentHandler.UpdateStudent)
	students.Delete("/:id", studentHandler.DeleteStudent)

	// Resources routes
	resources := api.Group("/resources")
	resources.Get("/", resourceHandler.ListResources)
	resources.Get("/:id", resourceHandler.GetResource)
	resources.Post("/", resourceHandler.CreateResource)
	resources.Put("/:id", resourceHandler.UpdateResource)
	resources.Delete("/:id", resourceHandler.DeleteResource)

	// Fallback for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
			"path":  c.OriginalURL(),
		})
	})
}
