package controllers

import (
	"Backend-VendorRisk/src/models"
	surveys "Backend-VendorRisk/src/services/surveys"
	vendors "Backend-VendorRisk/src/services/vendors"
	"Backend-VendorRisk/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateVendor godoc
// @Summary      Register a vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body body models.Vendor true "Vendor"
// @Success      201  {object}  models.Vendor
// @Failure      400  {object}  models.ErrorResponse
// @Router       /vendors [post]
func CreateVendor(c *fiber.Ctx) error {
	var vendor models.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&vendor); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := vendors.CreateVendor(c.Context(), &vendor)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetVendors godoc
// @Summary      List vendors with their current risk scores
// @Tags         vendors
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        search query string false "Search by name"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /vendors [get]
func GetVendors(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := vendors.GetVendors(c.Context(), params)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(result)
}

// GetVendorByID godoc
// @Summary      Get a vendor
// @Tags         vendors
// @Produce      json
// @Param        id path string true "Vendor ID"
// @Success      200  {object}  models.Vendor
// @Failure      404  {object}  models.ErrorResponse
// @Router       /vendors/{id} [get]
func GetVendorByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid vendor ID")
	}

	vendor, err := vendors.GetVendorByID(c.Context(), id)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(vendor)
}

// GetVendorSurveys godoc
// @Summary      List a vendor's surveys
// @Tags         vendors
// @Produce      json
// @Param        id path string true "Vendor ID"
// @Success      200  {array}  models.Survey
// @Router       /vendors/{id}/surveys [get]
func GetVendorSurveys(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid vendor ID")
	}

	result, err := surveys.GetSurveysByVendor(c.Context(), id)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"data": result})
}

// RecalculateVendor godoc
// @Summary      Recompute a vendor's aggregate risk score
// @Description  Takes the most recently calculated score among the vendor's completed surveys
// @Tags         vendors
// @Produce      json
// @Param        id path string true "Vendor ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /vendors/{id}/recalculate [post]
func RecalculateVendor(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid vendor ID")
	}

	if _, err := vendors.GetVendorByID(c.Context(), id); err != nil {
		return utils.HandleDomainError(c, err)
	}

	score, rating, err := vendors.RecalculateVendor(c.Context(), id)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":    "Vendor recalculated",
		"riskScore":  score,
		"riskRating": rating,
	})
}
