package models

import (
	"fmt"
	"strings"
)

// ValidationError is returned when submitted input fails a business rule,
// most importantly when required questions have no answer on Submit.
// Recoverable: the caller fixes the listed questions and resubmits. Nothing
// is mutated when it is returned.
type ValidationError struct {
	Message            string   `json:"message,omitempty"`
	MissingQuestionIDs []string `json:"missingQuestionIds,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("required questions not answered: %s", strings.Join(e.MissingQuestionIDs, ", "))
}

// InvalidStateError is returned when a lifecycle action is requested from a
// status that does not permit it. Recoverable: the caller re-checks status.
type InvalidStateError struct {
	Status SurveyStatus `json:"status"`
	Action string       `json:"action"`
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s a survey in status %s", e.Action, e.Status)
}

// NotFoundError is returned when a referenced survey / question / answer does
// not exist. Fatal to the current call.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ComputationError is returned when scoring was requested but the included
// question set was empty, so there is nothing to average. Surfaced instead of
// silently writing a zero score.
type ComputationError struct {
	Reason string `json:"reason"`
}

func (e *ComputationError) Error() string {
	return "risk score computation failed: " + e.Reason
}
