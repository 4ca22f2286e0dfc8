package routes

import (
	"Backend-VendorRisk/src/controllers"
	"Backend-VendorRisk/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/login", controllers.LoginUser)
	auth.Get("/me", middleware.AuthJWT, controllers.GetMe)
}
