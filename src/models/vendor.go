package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vendor is the party under assessment. Its risk score is derived from the
// vendor's scored surveys by the aggregator, never written directly.
type Vendor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	ContactMail string             `bson:"contactMail,omitempty" json:"contactMail,omitempty" validate:"omitempty,email"`

	RiskScore             *int       `bson:"riskScore,omitempty" json:"riskScore,omitempty"`
	RiskRating            string     `bson:"riskRating,omitempty" json:"riskRating,omitempty"`
	RiskScoreCalculatedAt *time.Time `bson:"riskScoreCalculatedAt,omitempty" json:"riskScoreCalculatedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}
