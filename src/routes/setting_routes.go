package routes

import (
	"Backend-VendorRisk/src/controllers"
	"Backend-VendorRisk/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func settingRoutes(router fiber.Router) {
	settings := router.Group("/settings")
	settings.Use(middleware.AuthJWT)

	settings.Get("/thresholds", controllers.GetRatingThresholds)
	settings.Put("/thresholds", middleware.RequireRole("Admin"), controllers.UpdateRatingThresholds)
}
