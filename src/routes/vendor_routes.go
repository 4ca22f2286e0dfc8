package routes

import (
	"Backend-VendorRisk/src/controllers"
	"Backend-VendorRisk/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func vendorRoutes(router fiber.Router) {
	vendors := router.Group("/vendors")
	vendors.Use(middleware.AuthJWT)

	vendors.Post("/", controllers.CreateVendor)
	vendors.Get("/", controllers.GetVendors)
	vendors.Get("/:id", controllers.GetVendorByID)
	vendors.Get("/:id/surveys", controllers.GetVendorSurveys)
	vendors.Post("/:id/recalculate", middleware.RequireRole("Assessor", "Admin"), controllers.RecalculateVendor)
}
