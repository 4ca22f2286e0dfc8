package controllers

import (
	"errors"

	surveys "Backend-VendorRisk/src/services/surveys"
	"Backend-VendorRisk/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SaveAnswersByLink godoc
// @Summary      Save answers through the respondent link
// @Tags         respond
// @Accept       json
// @Produce      json
// @Param        token path string true "Link token"
// @Param        body body controllers.answersBody true "Answers"
// @Success      200
// @Failure      410  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /respond/{token}/answers [put]
func SaveAnswersByLink(c *fiber.Ctx) error {
	survey, err := surveys.GetSurveyByLinkToken(c.Context(), c.Params("token"))
	if err != nil {
		if errors.Is(err, surveys.ErrLinkExpired) {
			return utils.HandleError(c, fiber.StatusGone, "Survey link has expired")
		}
		return utils.HandleDomainError(c, err)
	}

	var body answersBody
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	status, err := surveys.Save(c.Context(), survey.ID, body.Answers)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Answers saved", "status": status})
}

// SubmitByLink godoc
// @Summary      Submit a survey response through the respondent link
// @Tags         respond
// @Accept       json
// @Produce      json
// @Param        token path string true "Link token"
// @Param        body body controllers.answersBody true "Answers"
// @Success      200
// @Failure      410  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /respond/{token}/submit [post]
func SubmitByLink(c *fiber.Ctx) error {
	survey, err := surveys.GetSurveyByLinkToken(c.Context(), c.Params("token"))
	if err != nil {
		if errors.Is(err, surveys.ErrLinkExpired) {
			return utils.HandleError(c, fiber.StatusGone, "Survey link has expired")
		}
		return utils.HandleDomainError(c, err)
	}

	var body answersBody
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	status, requiresScoring, err := surveys.Submit(c.Context(), survey.ID, body.Answers)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":               "Survey submitted",
		"status":                status,
		"requiresManualScoring": requiresScoring,
	})
}
