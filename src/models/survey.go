package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveyStatus สถานะของแบบประเมิน
type SurveyStatus string

const (
	SurveyDraft          SurveyStatus = "DRAFT"
	SurveySent           SurveyStatus = "SENT"
	SurveyInProgress     SurveyStatus = "IN_PROGRESS"
	SurveyPendingScoring SurveyStatus = "PENDING_SCORING"
	SurveyCompleted      SurveyStatus = "COMPLETED"
)

// IsValid checks if the SurveyStatus is a known value
func (s SurveyStatus) IsValid() bool {
	switch s {
	case SurveyDraft, SurveySent, SurveyInProgress, SurveyPendingScoring, SurveyCompleted:
		return true
	}
	return false
}

// Survey is one instance of a template sent to one vendor respondent.
type Survey struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TemplateID primitive.ObjectID `bson:"templateId" json:"templateId"`
	VendorID   primitive.ObjectID `bson:"vendorId" json:"vendorId"`
	Status     SurveyStatus       `bson:"status" json:"status"`

	// Respondent link. Expiration affects link validity only, never status.
	LinkToken      string     `bson:"linkToken,omitempty" json:"linkToken,omitempty"`
	DueDate        *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	ExpirationDate *time.Time `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`

	// Last computed aggregate. Written only by the scoring engine, as one
	// atomic update together with RiskScoreCalculatedAt.
	RiskScore             *int       `bson:"riskScore,omitempty" json:"riskScore,omitempty"`
	RiskRating            string     `bson:"riskRating,omitempty" json:"riskRating,omitempty"`
	RiskScoreCalculatedAt *time.Time `bson:"riskScoreCalculatedAt,omitempty" json:"riskScoreCalculatedAt,omitempty"`

	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`

	// Version guards concurrent submit/complete against the same survey.
	Version   int64     `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// CanSave reports whether answers may still be saved without submitting.
func (s *Survey) CanSave() bool {
	switch s.Status {
	case SurveyDraft, SurveySent, SurveyInProgress:
		return true
	}
	return false
}

// CanSubmit reports whether the survey may be submitted.
func (s *Survey) CanSubmit() bool {
	return s.CanSave()
}

// CanScore reports whether manual scores may be recorded.
func (s *Survey) CanScore() bool {
	return s.Status == SurveyPendingScoring || s.Status == SurveyCompleted
}

// CanComplete reports whether the assessment may be completed.
func (s *Survey) CanComplete() bool {
	return s.Status == SurveyPendingScoring
}

// CanRecalculate reports whether the aggregate may be recomputed.
func (s *Survey) CanRecalculate() bool {
	return s.Status == SurveyCompleted
}

// MarkInProgress moves DRAFT / SENT to IN_PROGRESS on the first answer save.
// Saving while already IN_PROGRESS keeps the status.
func (s *Survey) MarkInProgress(now time.Time) error {
	if !s.CanSave() {
		return &InvalidStateError{Status: s.Status, Action: "save answers on"}
	}
	if s.Status == SurveyDraft || s.Status == SurveySent {
		s.Status = SurveyInProgress
	}
	s.UpdatedAt = now
	return nil
}

// MarkSubmitted applies the submit transition. A template containing at least
// one manually-scored question parks the survey in PENDING_SCORING; otherwise
// it completes immediately and CompletedAt is stamped.
func (s *Survey) MarkSubmitted(requiresManualScoring bool, now time.Time) error {
	if !s.CanSubmit() {
		return &InvalidStateError{Status: s.Status, Action: "submit"}
	}
	if requiresManualScoring {
		s.Status = SurveyPendingScoring
		s.CompletedAt = nil
	} else {
		s.Status = SurveyCompleted
		s.CompletedAt = &now
	}
	s.UpdatedAt = now
	return nil
}

// MarkCompleted closes a PENDING_SCORING assessment after manual scoring.
func (s *Survey) MarkCompleted(now time.Time) error {
	if !s.CanComplete() {
		return &InvalidStateError{Status: s.Status, Action: "complete"}
	}
	s.Status = SurveyCompleted
	s.CompletedAt = &now
	s.UpdatedAt = now
	return nil
}

// SetRiskScore records the computed aggregate. Only the scoring flow calls
// this; the score is never hand-edited.
func (s *Survey) SetRiskScore(score int, rating string, now time.Time) {
	s.RiskScore = &score
	s.RiskRating = rating
	s.RiskScoreCalculatedAt = &now
	s.UpdatedAt = now
}

// IsLinkExpired reports whether the respondent link has lapsed. Expiration is
// a read-time derived flag checked when a link is accessed; it is not a
// stored status and no transition produces it.
func (s *Survey) IsLinkExpired(now time.Time) bool {
	return s.ExpirationDate != nil && now.After(*s.ExpirationDate)
}
