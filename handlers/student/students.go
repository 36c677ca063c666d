package student

import (
	"errors"
	"strings"

	"github.com/campushub/api/database"
	"github.com/campushub/api/model"
	"github.com/campushub/api/services"
	"github.com/campushub/api/utils/response"
	"github.com/campushub/api/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// StudentHandler handles student-related requests
type StudentHandler struct {
	store     database.Storage
	service   *services.StudentService
	validator *validation.Validator
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(store database.Storage, service *services.StudentService) *StudentHandler {
	return &StudentHandler{
		store:     store,
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateStudentRequest represents the request body for creating a student
type CreateStudentRequest struct {
	Name             string   `json:"name" validate:"required,max=100"`
	Email            string   `json:"email" validate:"required"`
	RegisteredEvents []string `json:"registeredEvents"`
}

// UpdateStudentRequest represents a partial student update. Empty name/email
// mean "not provided". A nil registeredEvents leaves the stored list
// untouched; a supplied one replaces it wholesale.
type UpdateStudentRequest struct {
	Name             string    `json:"name" validate:"omitempty,max=100"`
	Email            string    `json:"email"`
	RegisteredEvents *[]string `json:"registeredEvents"`
}

// ListStudents handles GET /api/students, inlining referenced event details
func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	students, err := h.store.ListStudents()
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve students", err.Error())
	}

	views := make([]services.StudentView, 0, len(students))
	for _, student := range students {
		view, err := h.service.View(student)
		if err != nil {
			return response.InternalServerError(c, "Failed to retrieve students", err.Error())
		}
		views = append(views, view)
	}

	return response.List(c, len(views), views)
}

// GetStudent handles GET /api/students/:id
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	student, err := h.store.GetStudent(c.Params("id"))
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return response.BadRequest(c, "Invalid student ID format")
		}
		if errors.Is(err, model.ErrNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to retrieve student", err.Error())
	}

	view, err := h.service.View(*student)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve student", err.Error())
	}

	return response.Success(c, view)
}

// CreateStudent handles POST /api/students
func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Trim before validation so whitespace-only input fails the required check
	req.Name = validation.SanitizeString(req.Name)
	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(req); err != nil {
		if fields := validation.MissingFields(err); len(fields) > 0 {
			return response.BadRequest(c, "Missing required fields: "+strings.Join(fields, ", "))
		}
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	student, err := h.service.Create(req.Name, req.Email, req.RegisteredEvents)
	if err != nil {
		return h.writeError(c, err, "Failed to create student")
	}

	return response.Created(c, "Student created successfully", student)
}

// UpdateStudent handles PUT /api/students/:id
func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	student, err := h.service.Update(c.Params("id"), services.UpdateStudentParams{
		Name:             req.Name,
		Email:            req.Email,
		RegisteredEvents: req.RegisteredEvents,
	})
	if err != nil {
		return h.writeError(c, err, "Failed to update student")
	}

	return response.SuccessWithMessage(c, "Student updated successfully", student)
}

// DeleteStudent handles DELETE /api/students/:id
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	if err := h.store.DeleteStudent(c.Params("id")); err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return response.BadRequest(c, "Invalid student ID format")
		}
		if errors.Is(err, model.ErrNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to delete student", err.Error())
	}

	return response.NoContent(c)
}

// writeError maps student write failures onto the envelope
func (h *StudentHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	var unresolved *model.UnresolvedReferenceError
	switch {
	case errors.Is(err, model.ErrMalformedID):
		return response.BadRequest(c, "Invalid student ID format")
	case errors.Is(err, model.ErrNotFound):
		return response.NotFound(c, "Student not found")
	case errors.Is(err, model.ErrDuplicateEmail):
		return response.BadRequest(c, "Student with this email already exists")
	case errors.Is(err, model.ErrInvalidEmail):
		return response.ValidationError(c, err.Error())
	case errors.As(err, &unresolved):
		return response.BadRequest(c, "Event with ID "+unresolved.EventID+" not found")
	default:
		return response.InternalServerError(c, fallback, err.Error())
	}
}
