package controllers

import (
	users "Backend-VendorRisk/src/services/users"
	"Backend-VendorRisk/src/utils"

	"github.com/gofiber/fiber/v2"
)

// LoginUser godoc
// @Summary      Log in an assessor or admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := users.AuthenticateUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GetMe godoc
// @Summary      Current authenticated user
// @Tags         auth
// @Produce      json
// @Success      200
// @Router       /auth/me [get]
func GetMe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"userId": c.Locals("userId"),
		"email":  c.Locals("email"),
		"role":   c.Locals("role"),
	})
}
