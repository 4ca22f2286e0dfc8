// error_utils.go
package utils

import (
	"errors"

	"Backend-VendorRisk/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleDomainError maps the lifecycle error taxonomy to HTTP statuses.
// ValidationError carries the offending question ids so the caller can
// re-prompt instead of seeing a bare "invalid input".
func HandleDomainError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":              validationErr.Error(),
			"missingQuestionIds": validationErr.MissingQuestionIDs,
		})
	}

	var stateErr *models.InvalidStateError
	if errors.As(err, &stateErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":  stateErr.Error(),
			"status": stateErr.Status,
		})
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		return HandleError(c, fiber.StatusNotFound, notFoundErr.Error())
	}

	var computationErr *models.ComputationError
	if errors.As(err, &computationErr) {
		return HandleError(c, fiber.StatusConflict, computationErr.Error())
	}

	return HandleError(c, fiber.StatusInternalServerError, err.Error())
}
