package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template คือชุดคำถามที่ใช้ซ้ำได้หลาย survey
type Template struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// TemplateWithQuestions bundles a template with its ordered question set.
type TemplateWithQuestions struct {
	Template  Template   `json:"template"`
	Questions []Question `json:"questions"`
}

// CreateTemplateRequest is the payload for creating a template with questions.
type CreateTemplateRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions" validate:"required,min=1,dive"`
}
