package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"educore_backend/internals/features/academics/service"
	helper "educore_backend/internals/helpers"
)

// jsonServiceError maps the service error taxonomy onto HTTP. Message
// formatting lives here; the services only return structured kinds.
func jsonServiceError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrDuplicateKey):
		return helper.JsonError(c, fiber.StatusConflict, "Record already exists")
	case errors.Is(err, service.ErrInvalidReference):
		return helper.JsonError(c, fiber.StatusBadRequest, "Referenced course does not exist")
	case errors.Is(err, service.ErrOutOfRange):
		return helper.JsonError(c, fiber.StatusBadRequest, "Grade must be between 1.0 and 5.0")
	case errors.Is(err, service.ErrUnavailable):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage unavailable, try again")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected error")
	}
}
