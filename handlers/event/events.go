package event

import (
	"errors"
	"strings"

	"github.com/campushub/api/database"
	"github.com/campushub/api/model"
	"github.com/campushub/api/utils/response"
	"github.com/campushub/api/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// EventHandler handles event-related requests
type EventHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewEventHandler creates a new event handler
func NewEventHandler(store database.Storage) *EventHandler {
	return &EventHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// OrganizerRequest is the embedded organizer payload
type OrganizerRequest struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
}

// CreateEventRequest represents the request body for creating an event.
// Category falls back to its default when absent; an unrecognized value is
// rejected.
type CreateEventRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Category    string            `json:"category" validate:"omitempty,oneof=Academic Sports Cultural Workshop Seminar Social Other"`
	Date        string            `json:"date" validate:"required"`
	Description *string           `json:"description" validate:"omitempty,max=1000"`
	Organizer   *OrganizerRequest `json:"organizer" validate:"required"`
}

// UpdateEventRequest represents a partial event update. Empty strings on
// title/category/date mean "not provided"; a nil description leaves the
// stored value unchanged while an explicit "" clears it. A supplied
// organizer replaces the embedded value as a whole.
type UpdateEventRequest struct {
	Title       string            `json:"title" validate:"omitempty,max=200"`
	Category    string            `json:"category" validate:"omitempty,oneof=Academic Sports Cultural Workshop Seminar Social Other"`
	Date        string            `json:"date"`
	Description *string           `json:"description" validate:"omitempty,max=1000"`
	Organizer   *OrganizerRequest `json:"organizer" validate:"omitempty"`
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	filter := database.EventFilter{
		Category: c.Query("category"),
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := validation.ParseDate(dateStr)
		if err != nil {
			return response.BadRequest(c, "Invalid date filter")
		}
		filter.DateFrom = &date
	}

	events, err := h.store.ListEvents(filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve events", err.Error())
	}

	return response.List(c, len(events), events)
}

// GetEvent handles GET /api/events/:id
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	event, err := h.store.GetEvent(c.Params("id"))
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return response.BadRequest(c, "Invalid event ID format")
		}
		if errors.Is(err, model.ErrNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to retrieve event", err.Error())
	}

	return response.Success(c, event)
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Trim before validation so whitespace-only input fails the required check
	req.Title = validation.SanitizeString(req.Title)
	req.Category = validation.SanitizeString(req.Category)
	if req.Organizer != nil {
		req.Organizer.Name = validation.SanitizeString(req.Organizer.Name)
		req.Organizer.Department = validation.SanitizeString(req.Organizer.Department)
		req.Organizer.Contact = validation.SanitizeString(req.Organizer.Contact)
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		if fields := validation.MissingFields(err); len(fields) > 0 {
			return response.BadRequest(c, "Missing required fields: "+strings.Join(fields, ", "))
		}
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return response.ValidationError(c, err.Error())
	}

	category := model.DefaultEventCategory
	if req.Category != "" {
		category = model.EventCategory(req.Category)
	}

	event := model.Event{
		Title:    req.Title,
		Category: category,
		Date:     date,
		Organizer: model.Organizer{
			Name:       req.Organizer.Name,
			Department: req.Organizer.Department,
			Contact:    req.Organizer.Contact,
		},
	}
	if req.Description != nil {
		event.Description = validation.SanitizeString(*req.Description)
	}

	if err := h.store.CreateEvent(&event); err != nil {
		return response.InternalServerError(c, "Failed to create event", err.Error())
	}

	return response.Created(c, "Event created successfully", event)
}

// UpdateEvent handles PUT /api/events/:id
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	event, err := h.store.GetEvent(c.Params("id"))
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return response.BadRequest(c, "Invalid event ID format")
		}
		if errors.Is(err, model.ErrNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to retrieve event", err.Error())
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Title = validation.SanitizeString(req.Title)
	req.Category = validation.SanitizeString(req.Category)
	if req.Organizer != nil {
		req.Organizer.Name = validation.SanitizeString(req.Organizer.Name)
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Category != "" {
		event.Category = model.EventCategory(req.Category)
	}
	if req.Date != "" {
		date, err := validation.ParseDate(req.Date)
		if err != nil {
			return response.ValidationError(c, err.Error())
		}
		event.Date = date
	}
	if req.Description != nil {
		event.Description = validation.SanitizeString(*req.Description)
	}
	if req.Organizer != nil {
		event.Organizer = model.Organizer{
			Name:       req.Organizer.Name,
			Department: validation.SanitizeString(req.Organizer.Department),
			Contact:    validation.SanitizeString(req.Organizer.Contact),
		}
	}

	if err := h.store.SaveEvent(event); err != nil {
		return response.InternalServerError(c, "Failed to update event", err.Error())
	}

	return response.SuccessWithMessage(c, "Event updated successfully", event)
}

// DeleteEvent handles DELETE /api/events/:id. Students keep any references
// they hold to the deleted event.
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.store.DeleteEvent(c.Params("id")); err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return response.BadRequest(c, "Invalid event ID format")
		}
		if errors.Is(err, model.ErrNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to delete event", err.Error())
	}

	return response.NoContent(c)
}
