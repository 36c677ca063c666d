package resource

import (
	"errors"
	"strings"

	"github.com/campushub/api/database"
	"github.com/campushub/api/model"
	"github.com/campushub/api/utils/response"
	"github.com/campushub/api/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// ResourceHandler handles resource-related requests
type ResourceHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(store database.Storage) *ResourceHandler {
	return &ResourceHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// CreateResourceRequest represents the request body for creating a resource.
// Type and availability fall back to their defaults when absent;
// unrecognized values are rejected.
type CreateResourceRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Type         string  `json:"type" validate:"omitempty,oneof=Equipment Room Facility Vehicle Technology Other"`
	Availability string  `json:"availability" validate:"omitempty,oneof=Available 'In Use' Maintenance Reserved"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	Location     *string `json:"location"`
}

// UpdateResourceRequest represents a partial resource update. Empty strings
// on name/type/availability mean "not provided"; nil description/location
// leave the stored values unchanged while an explicit "" clears them.
type UpdateResourceRequest struct {
	Name         string  `json:"name" validate:"omitempty,max=200"`
	Type         string  `json:"type" validate:"omitempty,oneof=Equipment Room Facility Vehicle Technology Other"`
	Availability string  `json:"availability" validate:"omitempty,oneof=Available 'In Use' Maintenance Reserved"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	Location     *string `json:"location"`
}

// ListResources handles GET /api/resources
func (h *ResourceHandler) ListResources(c *fiber.Ctx) error {
	filter := database.ResourceFilter{
		Type:         c.Query("type"),
		Availability: c.Query("availability"),
	}

	resources, err := h.store.ListResources(filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve resources", err.Error())
	}

	return response.List(c, len(resources), resources)
}

// GetResource handles GET /api/resources/:id
func (h *ResourceHandler) GetResource(c *fiber.Ctx) error {
	resource, err := h.store.GetResource(c.Params("id"))
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return response.BadRequest(c, "Invalid resource ID format")
		}
		if errors.Is(err, model.ErrNotFound) {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to retrieve resource", err.Error())
	}

	return response.Success(c, resource)
}

// CreateResource handles POST /api/resources
func (h *ResourceHandler) CreateResource(c *fiber.Ctx) error {
	var req CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Trim before validation so whitespace-only input fails the required check
	req.Name = validation.SanitizeString(req.Name)
	req.Type = validation.SanitizeString(req.Type)
	req.Availability = validation.SanitizeString(req.Availability)

	if err := h.validator.ValidateStruct(req); err != nil {
		if fields := validation.MissingFields(err); len(fields) > 0 {
			return response.BadRequest(c, "Missing required fields: "+strings.Join(fields, ", "))
		}
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	resourceType := model.DefaultResourceType
	if req.Type != "" {
		resourceType = model.ResourceType(req.Type)
	}
	availability := model.DefaultResourceAvailability
	if req.Availability != "" {
		availability = model.ResourceAvailability(req.Availability)
	}

	resource := model.Resource{
		Name:         req.Name,
		Type:         resourceType,
		Availability: availability,
	}
	if req.Description != nil {
		resource.Description = validation.SanitizeString(*req.Description)
	}
	if req.Location != nil {
		resource.Location = validation.SanitizeString(*req.Location)
	}

	if err := h.store.CreateResource(&resource); err != nil {
		return response.InternalServerError(c, "Failed to create resource", err.Error())
	}

	return response.Created(c, "Resource created successfully", resource)
}

// UpdateResource handles PUT /api/resources/:id
func (h *ResourceHandler) UpdateResource(c *fiber.Ctx) error {
	resource, err := h.store.GetResource(c.Params("id"))
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return response.BadRequest(c, "Invalid resource ID format")
		}
		if errors.Is(err, model.ErrNotFound) {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to retrieve resource", err.Error())
	}

	var req UpdateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Type = validation.SanitizeString(req.Type)
	req.Availability = validation.SanitizeString(req.Availability)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if req.Name != "" {
		resource.Name = req.Name
	}
	if req.Type != "" {
		resource.Type = model.ResourceType(req.Type)
	}
	if req.Availability != "" {
		resource.Availability = model.ResourceAvailability(req.Availability)
	}
	if req.Description != nil {
		resource.Description = validation.SanitizeString(*req.Description)
	}
	if req.Location != nil {
		resource.Location = validation.SanitizeString(*req.Location)
	}

	if err := h.store.SaveResource(resource); err != nil {
		return response.InternalServerError(c, "Failed to update resource", err.Error())
	}

	return response.SuccessWithMessage(c, "Resource updated successfully", resource)
}

// DeleteResource handles DELETE /api/resources/:id
func (h *ResourceHandler) DeleteResource(c *fiber.Ctx) error {
	if err := h.store.DeleteResource(c.Params("id")); err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return response.BadRequest(c, "Invalid resource ID format")
		}
		if errors.Is(err, model.ErrNotFound) {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to delete resource", err.Error())
	}

	return response.NoContent(c)
}
