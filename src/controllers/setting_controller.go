package controllers

import (
	"Backend-VendorRisk/src/models"
	ratings "Backend-VendorRisk/src/services/ratings"
	"Backend-VendorRisk/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRatingThresholds godoc
// @Summary      Get the rating threshold configuration
// @Tags         settings
// @Produce      json
// @Success      200  {object}  ratings.ScoringConfig
// @Router       /settings/thresholds [get]
func GetRatingThresholds(c *fiber.Ctx) error {
	return c.JSON(ratings.LoadConfig(c.Context()))
}

// UpdateRatingThresholds godoc
// @Summary      Update the rating threshold configuration
// @Description  Bounds must be strictly ascending within 0-100
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body body ratings.ScoringConfig true "Inclusive upper bounds"
// @Success      200  {object}  ratings.ScoringConfig
// @Failure      400  {object}  models.ErrorResponse
// @Router       /settings/thresholds [put]
func UpdateRatingThresholds(c *fiber.Ctx) error {
	var config ratings.ScoringConfig
	if err := c.BodyParser(&config); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if config.VeryLowMax < 0 || config.HighMax > 100 ||
		config.VeryLowMax >= config.LowMax ||
		config.LowMax >= config.MediumMax ||
		config.MediumMax >= config.HighMax {
		return utils.HandleError(c, fiber.StatusBadRequest, "Thresholds must be strictly ascending within 0-100")
	}

	pairs := map[string]int{
		models.SettingThresholdVeryLow: config.VeryLowMax,
		models.SettingThresholdLow:     config.LowMax,
		models.SettingThresholdMedium:  config.MediumMax,
		models.SettingThresholdHigh:    config.HighMax,
	}
	for key, value := range pairs {
		if err := utils.PutIntSetting(c.Context(), key, value); err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save setting: "+err.Error())
		}
	}

	return c.JSON(config)
}
