package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyStatusGuards(t *testing.T) {
	t.Run("SaveAllowedBeforeSubmit", func(t *testing.T) {
		for _, status := range []SurveyStatus{SurveyDraft, SurveySent, SurveyInProgress} {
			s := Survey{Status: status}
			assert.True(t, s.CanSave(), "status %s", status)
			assert.True(t, s.CanSubmit(), "status %s", status)
		}
	})

	t.Run("SaveRejectedAfterSubmit", func(t *testing.T) {
		for _, status := range []SurveyStatus{SurveyPendingScoring, SurveyCompleted} {
			s := Survey{Status: status}
			assert.False(t, s.CanSave(), "status %s", status)
			assert.False(t, s.CanSubmit(), "status %s", status)
		}
	})

	t.Run("ScoreOnlyPendingOrCompleted", func(t *testing.T) {
		assert.True(t, (&Survey{Status: SurveyPendingScoring}).CanScore())
		assert.True(t, (&Survey{Status: SurveyCompleted}).CanScore())
		assert.False(t, (&Survey{Status: SurveyInProgress}).CanScore())
	})

	t.Run("CompleteOnlyPending", func(t *testing.T) {
		assert.True(t, (&Survey{Status: SurveyPendingScoring}).CanComplete())
		assert.False(t, (&Survey{Status: SurveyCompleted}).CanComplete())
		assert.False(t, (&Survey{Status: SurveyDraft}).CanComplete())
	})

	t.Run("RecalculateOnlyCompleted", func(t *testing.T) {
		assert.True(t, (&Survey{Status: SurveyCompleted}).CanRecalculate())
		assert.False(t, (&Survey{Status: SurveyPendingScoring}).CanRecalculate())
	})
}

func TestMarkInProgress(t *testing.T) {
	now := time.Now()

	s := Survey{Status: SurveySent}
	require.NoError(t, s.MarkInProgress(now))
	assert.Equal(t, SurveyInProgress, s.Status)

	// Saving again keeps the status.
	require.NoError(t, s.MarkInProgress(now))
	assert.Equal(t, SurveyInProgress, s.Status)

	completed := Survey{Status: SurveyCompleted}
	err := completed.MarkInProgress(now)
	var stateErr *InvalidStateError
	assert.ErrorAs(t, err, &stateErr)
}

func TestMarkSubmitted(t *testing.T) {
	now := time.Now()

	t.Run("ManualScoringParksPending", func(t *testing.T) {
		s := Survey{Status: SurveyInProgress}
		require.NoError(t, s.MarkSubmitted(true, now))
		assert.Equal(t, SurveyPendingScoring, s.Status)
		assert.Nil(t, s.CompletedAt)
	})

	t.Run("AutoOnlyCompletesImmediately", func(t *testing.T) {
		s := Survey{Status: SurveyInProgress}
		require.NoError(t, s.MarkSubmitted(false, now))
		assert.Equal(t, SurveyCompleted, s.Status)
		require.NotNil(t, s.CompletedAt)
		assert.Equal(t, now, *s.CompletedAt)
	})

	t.Run("DoubleSubmitRejected", func(t *testing.T) {
		s := Survey{Status: SurveyCompleted}
		err := s.MarkSubmitted(false, now)
		var stateErr *InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, SurveyCompleted, stateErr.Status)
	})
}

func TestMarkCompleted(t *testing.T) {
	now := time.Now()

	s := Survey{Status: SurveyPendingScoring}
	require.NoError(t, s.MarkCompleted(now))
	assert.Equal(t, SurveyCompleted, s.Status)
	assert.NotNil(t, s.CompletedAt)

	var stateErr *InvalidStateError
	assert.ErrorAs(t, s.MarkCompleted(now), &stateErr)
}

func TestIsLinkExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&Survey{}).IsLinkExpired(now), "no expiration date never expires")
	assert.False(t, (&Survey{ExpirationDate: &future}).IsLinkExpired(now))
	assert.True(t, (&Survey{ExpirationDate: &past}).IsLinkExpired(now))
}

func TestSetRiskScore(t *testing.T) {
	now := time.Now()
	s := Survey{Status: SurveyCompleted}

	s.SetRiskScore(73, "High", now)
	require.NotNil(t, s.RiskScore)
	assert.Equal(t, 73, *s.RiskScore)
	assert.Equal(t, "High", s.RiskRating)
	require.NotNil(t, s.RiskScoreCalculatedAt)
	assert.Equal(t, now, *s.RiskScoreCalculatedAt)
}

func TestSubmitThenScoreStampsConsistently(t *testing.T) {
	// The auto-only submit path completes and scores in one step; every
	// timestamp it writes must come from the same instant.
	now := time.Now()
	s := Survey{Status: SurveyInProgress, Version: 3}

	require.NoError(t, s.MarkSubmitted(false, now))
	s.SetRiskScore(25, "Low", now)

	assert.Equal(t, SurveyCompleted, s.Status)
	require.NotNil(t, s.CompletedAt)
	assert.Equal(t, now, *s.CompletedAt)
	require.NotNil(t, s.RiskScoreCalculatedAt)
	assert.Equal(t, now, *s.RiskScoreCalculatedAt)
	assert.Equal(t, now, s.UpdatedAt)
}
