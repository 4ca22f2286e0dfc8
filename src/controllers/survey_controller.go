package controllers

import (
	"errors"

	"Backend-VendorRisk/src/models"
	surveys "Backend-VendorRisk/src/services/surveys"
	"Backend-VendorRisk/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type answersBody struct {
	Answers []models.AnswerInput `json:"answers"`
}

type manualScoresBody struct {
	Scores []models.ManualScoreInput `json:"scores"`
}

// CreateSurvey godoc
// @Summary      Dispatch a template to a vendor
// @Description  Creates a survey in DRAFT, or SENT when sendNow is set
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        body body models.CreateSurveyRequest true "Template, vendor and link options"
// @Success      201  {object}  models.Survey
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys [post]
func CreateSurvey(c *fiber.Ctx) error {
	var request models.CreateSurveyRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if request.TemplateID.IsZero() || request.VendorID.IsZero() {
		return utils.HandleError(c, fiber.StatusBadRequest, "templateId and vendorId are required")
	}

	survey, err := surveys.CreateSurvey(c.Context(), &request)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(survey)
}

// GetSurveyByID godoc
// @Summary      Get a survey
// @Tags         surveys
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200  {object}  models.Survey
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id} [get]
func GetSurveyByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	survey, err := surveys.GetSurveyByID(c.Context(), id)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(survey)
}

// GetSurveyByLink godoc
// @Summary      Open a survey through its respondent link
// @Description  Expired links return 410 Gone; the survey status is unchanged
// @Tags         surveys
// @Produce      json
// @Param        token path string true "Link token"
// @Success      200  {object}  models.Survey
// @Failure      404  {object}  models.ErrorResponse
// @Failure      410  {object}  models.ErrorResponse
// @Router       /respond/{token} [get]
func GetSurveyByLink(c *fiber.Ctx) error {
	survey, err := surveys.GetSurveyByLinkToken(c.Context(), c.Params("token"))
	if err != nil {
		if errors.Is(err, surveys.ErrLinkExpired) {
			return utils.HandleError(c, fiber.StatusGone, "Survey link has expired")
		}
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(survey)
}

// SaveAnswers godoc
// @Summary      Save answers without submitting
// @Description  Moves DRAFT / SENT surveys to IN_PROGRESS on first save
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        id path string true "Survey ID"
// @Param        body body controllers.answersBody true "Answers"
// @Success      200
// @Failure      409  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /surveys/{id}/answers [put]
func SaveAnswers(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	var body answersBody
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	status, err := surveys.Save(c.Context(), id, body.Answers)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Answers saved", "status": status})
}

// SubmitSurvey godoc
// @Summary      Submit a survey response
// @Description  Validates required questions, then completes or parks the survey in PENDING_SCORING
// @Tags         surveys
// @Accept       json
// @Produce      json
// @Param        id path string true "Survey ID"
// @Param        body body controllers.answersBody true "Answers"
// @Success      200
// @Failure      409  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /surveys/{id}/submit [post]
func SubmitSurvey(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	var body answersBody
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	status, requiresScoring, err := surveys.Submit(c.Context(), id, body.Answers)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":               "Survey submitted",
		"status":                status,
		"requiresManualScoring": requiresScoring,
	})
}

// RecordManualScores godoc
// @Summary      Record reviewer judgments on text answers
// @Tags         scoring
// @Accept       json
// @Produce      json
// @Param        id path string true "Survey ID"
// @Param        body body controllers.manualScoresBody true "Manual scores (0, 50, 100 or -1)"
// @Success      200
// @Failure      409  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /surveys/{id}/manual-scores [post]
func RecordManualScores(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	var body manualScoresBody
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if len(body.Scores) == 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "No scores provided")
	}

	scoredBy, _ := c.Locals("email").(string)
	updated, err := surveys.RecordManualScores(c.Context(), id, body.Scores, scoredBy)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Manual scores recorded", "updated": updated})
}

// CompleteAssessment godoc
// @Summary      Complete a pending assessment
// @Description  Requires every answered manually-scored question to carry a judgment
// @Tags         scoring
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200
// @Failure      409  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /surveys/{id}/complete [post]
func CompleteAssessment(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	score, rating, err := surveys.CompleteAssessment(c.Context(), id)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":    "Assessment completed",
		"riskScore":  score,
		"riskRating": rating,
	})
}

// RecalculateSurvey godoc
// @Summary      Recompute the aggregate of a completed survey
// @Tags         scoring
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200
// @Failure      409  {object}  models.ErrorResponse
// @Router       /surveys/{id}/recalculate [post]
func RecalculateSurvey(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	score, rating, err := surveys.Recalculate(c.Context(), id)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":    "Survey recalculated",
		"riskScore":  score,
		"riskRating": rating,
	})
}

// GetScoreBreakdown godoc
// @Summary      Per-question score breakdown
// @Description  Weight, raw score and Pass/Partial/Fail/N/A assessment for each scorable question
// @Tags         scoring
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200  {array}  scoring.BreakdownItem
// @Failure      404  {object}  models.ErrorResponse
// @Router       /surveys/{id}/breakdown [get]
func GetScoreBreakdown(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	items, err := surveys.GetBreakdown(c.Context(), id)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"data": items})
}
