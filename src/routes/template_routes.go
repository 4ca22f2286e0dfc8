package routes

import (
	"Backend-VendorRisk/src/controllers"
	"Backend-VendorRisk/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// templateRoutes กำหนด route สำหรับ template management
func templateRoutes(router fiber.Router) {
	templates := router.Group("/templates")
	templates.Use(middleware.AuthJWT)

	templates.Post("/", controllers.CreateTemplate)
	templates.Get("/", controllers.GetTemplates)
	templates.Get("/:id", controllers.GetTemplateByID)
}
