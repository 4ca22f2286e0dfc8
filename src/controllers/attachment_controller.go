package controllers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"Backend-VendorRisk/src/models"
	attachments "Backend-VendorRisk/src/services/attachments"
	"Backend-VendorRisk/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var uploadRoot = "./uploads/"

// UploadAttachment godoc
// @Summary      Upload an evidence file for a FILE question
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Survey ID"
// @Param        questionId query string true "Question ID"
// @Param        file formData file true "Evidence file"
// @Success      201  {object}  models.Attachment
// @Failure      400  {object}  models.ErrorResponse
// @Router       /surveys/{id}/attachments [post]
func UploadAttachment(c *fiber.Ctx) error {
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}
	questionID, err := primitive.ObjectIDFromHex(c.Query("questionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Failed to upload file: "+err.Error())
	}

	uploadedBy, _ := c.Locals("email").(string)
	att := &models.Attachment{
		SurveyID:    surveyID,
		QuestionID:  questionID,
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		SizeBytes:   file.Size,
		UploadedBy:  uploadedBy,
	}

	created, err := attachments.SaveAttachment(c.Context(), att)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}

	filePath := uploadRoot + created.StoragePath
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		log.Println("Failed to create directory:", err)
	}
	if err := c.SaveFile(file, filePath); err != nil {
		// คืนค่า metadata ที่บันทึกไปแล้ว
		if delErr := attachments.DeleteAttachment(c.Context(), created.ID); delErr != nil {
			log.Println("Failed to roll back attachment metadata:", delErr)
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to store file: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetSurveyAttachments godoc
// @Summary      List a survey's attachments
// @Tags         attachments
// @Produce      json
// @Param        id path string true "Survey ID"
// @Success      200  {array}  models.Attachment
// @Router       /surveys/{id}/attachments [get]
func GetSurveyAttachments(c *fiber.Ctx) error {
	surveyID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid survey ID")
	}

	result, err := attachments.GetBySurvey(c.Context(), surveyID)
	if err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"data": result})
}

// DeleteAttachment godoc
// @Summary      Delete an attachment
// @Tags         attachments
// @Produce      json
// @Param        attachmentId path string true "Attachment ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /attachments/{attachmentId} [delete]
func DeleteAttachment(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("attachmentId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid attachment ID")
	}

	if err := attachments.DeleteAttachment(c.Context(), id); err != nil {
		return utils.HandleDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Attachment %s deleted", id.Hex())})
}
