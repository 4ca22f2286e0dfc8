package routes

import (
	"Backend-VendorRisk/src/controllers"
	"Backend-VendorRisk/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// surveyRoutes กำหนด route ฝั่ง backoffice. Scoring actions ต้องเป็น
// Assessor หรือ Admin เท่านั้น
func surveyRoutes(router fiber.Router) {
	surveys := router.Group("/surveys")
	surveys.Use(middleware.AuthJWT)

	surveys.Post("/", controllers.CreateSurvey)
	surveys.Get("/:id", controllers.GetSurveyByID)
	surveys.Put("/:id/answers", controllers.SaveAnswers)
	surveys.Post("/:id/submit", controllers.SubmitSurvey)
	surveys.Get("/:id/breakdown", controllers.GetScoreBreakdown)
	surveys.Get("/:id/attachments", controllers.GetSurveyAttachments)
	surveys.Post("/:id/attachments", controllers.UploadAttachment)

	assessor := middleware.RequireRole("Assessor", "Admin")
	surveys.Post("/:id/manual-scores", assessor, controllers.RecordManualScores)
	surveys.Post("/:id/complete", assessor, controllers.CompleteAssessment)
	surveys.Post("/:id/recalculate", assessor, controllers.RecalculateSurvey)

	attachments := router.Group("/attachments")
	attachments.Use(middleware.AuthJWT)
	attachments.Delete("/:attachmentId", controllers.DeleteAttachment)
}

// respondRoutes เส้นทางฝั่ง vendor respondent เข้าผ่าน link token, ไม่ใช้ JWT
func respondRoutes(router fiber.Router) {
	respond := router.Group("/respond")

	respond.Get("/:token", controllers.GetSurveyByLink)
	respond.Put("/:token/answers", controllers.SaveAnswersByLink)
	respond.Post("/:token/submit", controllers.SubmitByLink)
}
