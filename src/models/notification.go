package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification template keys fired by the survey lifecycle.
const (
	NotifySurveySent          = "survey_sent"
	NotifySurveySubmitted     = "survey_submitted"
	NotifyScoringPending      = "scoring_pending"
	NotifyAssessmentCompleted = "assessment_completed"
)

// Notification is the stored record of one dispatched notification.
// Dispatch is fire-and-forget: failures are logged, never surfaced to the
// lifecycle operation that triggered them.
type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TemplateKey string             `bson:"templateKey" json:"templateKey"`
	Payload     map[string]string  `bson:"payload,omitempty" json:"payload,omitempty"`
	Recipient   string             `bson:"recipient,omitempty" json:"recipient,omitempty"`
	SentAt      *time.Time         `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
