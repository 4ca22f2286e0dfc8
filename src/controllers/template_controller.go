package controllers

import (
	"Backend-VendorRisk/src/models"
	templates "Backend-VendorRisk/src/services/templates"
	"Backend-VendorRisk/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// CreateTemplate godoc
// @Summary      Create a new survey template
// @Description  Create a template together with its ordered question set
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body body models.CreateTemplateRequest true "Template and questions"
// @Success      201  {object}  models.TemplateWithQuestions
// @Failure      400  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /templates [post]
func CreateTemplate(c *fiber.Ctx) error {
	var request models.CreateTemplateRequest

	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	result, err := templates.CreateTemplate(c.Context(), &request)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Template created successfully",
		"data":    result,
	})
}

// GetTemplates godoc
// @Summary      List templates
// @Tags         templates
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        search query string false "Search by name"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /templates [get]
func GetTemplates(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := templates.GetTemplates(c.Context(), params)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(result)
}

// GetTemplateByID godoc
// @Summary      Get a template with its questions
// @Tags         templates
// @Produce      json
// @Param        id path string true "Template ID"
// @Success      200  {object}  models.TemplateWithQuestions
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id} [get]
func GetTemplateByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	result, err := templates.GetTemplateByID(c.Context(), id)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(result)
}
