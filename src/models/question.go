package models

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType กำหนดชนิดของคำถามใน template
type QuestionType string

const (
	QuestionText           QuestionType = "TEXT"
	QuestionLongText       QuestionType = "LONG_TEXT"
	QuestionBoolean        QuestionType = "BOOLEAN"
	QuestionSingleChoice   QuestionType = "SINGLE_CHOICE"
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionFile           QuestionType = "FILE"
)

// IsValid checks if the QuestionType is a known value
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionText, QuestionLongText, QuestionBoolean,
		QuestionSingleChoice, QuestionMultipleChoice, QuestionFile:
		return true
	}
	return false
}

// RiskImpact is the direction a "good" answer moves risk.
// POSITIVE = answering affirmatively reduces risk.
type RiskImpact string

const (
	ImpactPositive RiskImpact = "POSITIVE"
	ImpactNegative RiskImpact = "NEGATIVE"
)

// IsValid checks if the RiskImpact is a known value
func (r RiskImpact) IsValid() bool {
	return r == ImpactPositive || r == ImpactNegative
}

// QuestionOption is one selectable choice of a SINGLE_CHOICE / MULTIPLE_CHOICE
// question. Score is the explicit risk score (0-100) for the option; when nil
// the option order is used as a linear risk scale.
type QuestionOption struct {
	Label    string `bson:"label" json:"label"`
	Score    *int   `bson:"score,omitempty" json:"score,omitempty"`
	Sequence int    `bson:"sequence" json:"sequence"`
}

// Question is one immutable-per-template question definition.
type Question struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TemplateID    primitive.ObjectID `bson:"templateId" json:"templateId"`
	Type          QuestionType       `bson:"type" json:"type" validate:"required"`
	QuestionText  string             `bson:"questionText" json:"questionText" validate:"required"`
	IsRequired    bool               `bson:"isRequired" json:"isRequired"`
	RiskWeight    int                `bson:"riskWeight" json:"riskWeight" validate:"gte=0"`
	RiskImpact    RiskImpact         `bson:"riskImpact,omitempty" json:"riskImpact,omitempty"`
	Options       []QuestionOption   `bson:"options,omitempty" json:"options,omitempty"`
	AllowComments bool               `bson:"allowComments" json:"allowComments"`
	Order         int                `bson:"order" json:"order"`
}

// IsScorable reports whether the question contributes to the risk score.
// Weight 0 questions never appear in scoring or in the breakdown.
func (q *Question) IsScorable() bool {
	return q.RiskWeight > 0
}

// IsManuallyScored reports whether the question needs a human Pass/Partial/Fail
// judgment. Only scorable TEXT / LONG_TEXT questions are scored manually;
// every other scorable type is auto-scored from the submitted value.
func (q *Question) IsManuallyScored() bool {
	if !q.IsScorable() {
		return false
	}
	return q.Type == QuestionText || q.Type == QuestionLongText
}

// OptionScore returns the risk score (0-100) of the option with the given
// label. When the option has no explicit score the option order is treated as
// a linear risk scale: the first option carries no risk and the last carries
// full risk. A NEGATIVE impact question reverses the scale. The second return
// is false when the label is not one of the question's options.
func (q *Question) OptionScore(label string) (int, bool) {
	for i, opt := range q.Options {
		if opt.Label != label {
			continue
		}
		if opt.Score != nil {
			return *opt.Score, true
		}
		if len(q.Options) == 1 {
			return 0, true
		}
		raw := int(math.Round(float64(i) / float64(len(q.Options)-1) * 100))
		if q.RiskImpact == ImpactNegative {
			raw = 100 - raw
		}
		return raw, true
	}
	return 0, false
}
