package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerInput is one answer provided to Save / Submit, already resolved to
// object ids by the controller layer.
type AnswerInput struct {
	QuestionID primitive.ObjectID `json:"questionId"`
	Value      AnswerValue        `json:"value"`
	Comment    string             `json:"comment,omitempty"`
}

// ManualScoreInput is one human judgment provided to RecordManualScores.
type ManualScoreInput struct {
	QuestionID primitive.ObjectID `json:"questionId"`
	Score      int                `json:"score"`
}

// CreateSurveyRequest is the payload for dispatching a template to a vendor.
type CreateSurveyRequest struct {
	TemplateID     primitive.ObjectID `json:"templateId"`
	VendorID       primitive.ObjectID `json:"vendorId"`
	DueDate        *time.Time         `json:"dueDate,omitempty"`
	ExpirationDate *time.Time         `json:"expirationDate,omitempty"`
	SendNow        bool               `json:"sendNow"`
}
