package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Manual score values for TEXT / LONG_TEXT questions.
// -1 is the N/A sentinel: the question is excluded from the weighted average.
const (
	ManualScorePass    = 0
	ManualScorePartial = 50
	ManualScoreFail    = 100
	ManualScoreNA      = -1
)

// IsValidManualScore ตรวจสอบว่าคะแนน manual อยู่ในชุดค่าที่กำหนด
func IsValidManualScore(score int) bool {
	switch score {
	case ManualScorePass, ManualScorePartial, ManualScoreFail, ManualScoreNA:
		return true
	}
	return false
}

// AnswerValue is the polymorphic answer payload. Exactly one branch is set,
// matching the declared type of the question it answers.
type AnswerValue struct {
	BoolValue       *bool    `bson:"boolValue,omitempty" json:"boolValue,omitempty"`
	TextValue       *string  `bson:"textValue,omitempty" json:"textValue,omitempty"`
	SelectedOptions []string `bson:"selectedOptions,omitempty" json:"selectedOptions,omitempty"`
	FileRefs        []string `bson:"fileRefs,omitempty" json:"fileRefs,omitempty"`
}

// IsEmpty reports whether no branch of the value is set.
func (v AnswerValue) IsEmpty() bool {
	return v.BoolValue == nil &&
		(v.TextValue == nil || *v.TextValue == "") &&
		len(v.SelectedOptions) == 0 &&
		len(v.FileRefs) == 0
}

// ValidateFor checks the value shape against the question's declared type.
// The check happens once at the boundary where an answer is accepted; the
// scoring engine relies on it and never re-inspects the union.
func (v AnswerValue) ValidateFor(q *Question) error {
	switch q.Type {
	case QuestionText, QuestionLongText:
		if v.BoolValue != nil || len(v.SelectedOptions) > 0 || len(v.FileRefs) > 0 {
			return fmt.Errorf("question %s expects a text value", q.ID.Hex())
		}
	case QuestionBoolean:
		if v.BoolValue == nil {
			return fmt.Errorf("question %s expects a boolean value", q.ID.Hex())
		}
	case QuestionSingleChoice:
		if len(v.SelectedOptions) != 1 {
			return fmt.Errorf("question %s expects exactly one selected option", q.ID.Hex())
		}
		if _, ok := q.OptionScore(v.SelectedOptions[0]); !ok {
			return fmt.Errorf("question %s: invalid option %q", q.ID.Hex(), v.SelectedOptions[0])
		}
	case QuestionMultipleChoice:
		if len(v.SelectedOptions) == 0 {
			return fmt.Errorf("question %s expects at least one selected option", q.ID.Hex())
		}
		for _, label := range v.SelectedOptions {
			if _, ok := q.OptionScore(label); !ok {
				return fmt.Errorf("question %s: invalid option %q", q.ID.Hex(), label)
			}
		}
	case QuestionFile:
		if v.BoolValue != nil || v.TextValue != nil || len(v.SelectedOptions) > 0 {
			return fmt.Errorf("question %s expects file references only", q.ID.Hex())
		}
	}
	return nil
}

// Answer is one respondent answer. Identity is the (surveyId, questionId)
// pair; saves upsert on that pair so there is never more than one answer per
// question in a survey.
type Answer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID   primitive.ObjectID `bson:"surveyId" json:"surveyId"`
	QuestionID primitive.ObjectID `bson:"questionId" json:"questionId"`
	Value      AnswerValue        `bson:"value" json:"value"`
	Comment    string             `bson:"comment,omitempty" json:"comment,omitempty"`

	// Manual scoring (TEXT / LONG_TEXT questions with positive weight only)
	ManualScore *int       `bson:"manualScore,omitempty" json:"manualScore,omitempty"`
	ScoredBy    string     `bson:"scoredBy,omitempty" json:"scoredBy,omitempty"`
	ScoredAt    *time.Time `bson:"scoredAt,omitempty" json:"scoredAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// SetManualScore records a human judgment on the answer.
func (a *Answer) SetManualScore(score int, scoredBy string, now time.Time) error {
	if !IsValidManualScore(score) {
		return fmt.Errorf("manual score must be one of 0, 50, 100 or -1 (N/A), got %d", score)
	}
	a.ManualScore = &score
	a.ScoredBy = scoredBy
	a.ScoredAt = &now
	a.UpdatedAt = now
	return nil
}
