package response

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the uniform envelope every endpoint returns. Success responses
// carry data (and count for list endpoints); failures carry a short error
// label plus an optional diagnostic message.
type Response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success returns a 200 response wrapping data
func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage returns a 200 response with a message
func SuccessWithMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns a 200 response with a count alongside the collection.
// Count is always serialized, including zero for an empty collection.
func List(c *fiber.Ctx, count int, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Created returns a 201 Created response
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NoContent returns a 204 No Content response with an empty body
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Fail returns an error response with the given status
func Fail(c *fiber.Ctx, statusCode int, errMsg string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   errMsg,
	})
}

// FailWithMessage returns an error response carrying the underlying message
func FailWithMessage(c *fiber.Ctx, statusCode int, errMsg string, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   errMsg,
		Message: message,
	})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, errMsg string) error {
	return Fail(c, fiber.StatusBadRequest, errMsg)
}

// ValidationError returns a 400 response naming the violated fields
func ValidationError(c *fiber.Ctx, message string) error {
	return FailWithMessage(c, fiber.StatusBadRequest, "Validation error", message)
}

// NotFound returns a 404 Not Found response
func NotFound(c *fiber.Ctx, errMsg string) error {
	return Fail(c, fiber.StatusNotFound, errMsg)
}

// InternalServerError returns a 500 response with the underlying message
// attached for diagnostics.
func InternalServerError(c *fiber.Ctx, errMsg string, message string) error {
	return FailWithMessage(c, fiber.StatusInternalServerError, errMsg, message)
}
