package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestQuestionIsScorable(t *testing.T) {
	assert.True(t, (&Question{RiskWeight: 1}).IsScorable())
	assert.False(t, (&Question{RiskWeight: 0}).IsScorable())
}

func TestQuestionIsManuallyScored(t *testing.T) {
	assert.True(t, (&Question{Type: QuestionText, RiskWeight: 1}).IsManuallyScored())
	assert.True(t, (&Question{Type: QuestionLongText, RiskWeight: 2}).IsManuallyScored())
	assert.False(t, (&Question{Type: QuestionText, RiskWeight: 0}).IsManuallyScored())
	assert.False(t, (&Question{Type: QuestionBoolean, RiskWeight: 1}).IsManuallyScored())
}

func TestOptionScoreLinearScale(t *testing.T) {
	q := Question{
		Type: QuestionSingleChoice,
		Options: []QuestionOption{
			{Label: "Always", Sequence: 1},
			{Label: "Often", Sequence: 2},
			{Label: "Rarely", Sequence: 3},
			{Label: "Never", Sequence: 4},
		},
	}

	score, ok := q.OptionScore("Always")
	assert.True(t, ok)
	assert.Equal(t, 0, score)

	score, _ = q.OptionScore("Often")
	assert.Equal(t, 33, score)

	score, _ = q.OptionScore("Rarely")
	assert.Equal(t, 67, score)

	score, _ = q.OptionScore("Never")
	assert.Equal(t, 100, score)
}

func TestOptionScoreNegativeImpactReversesScale(t *testing.T) {
	q := Question{
		Type:       QuestionSingleChoice,
		RiskImpact: ImpactNegative,
		Options: []QuestionOption{
			{Label: "Never", Sequence: 1},
			{Label: "Monthly", Sequence: 2},
			{Label: "Weekly", Sequence: 3},
		},
	}

	score, _ := q.OptionScore("Never")
	assert.Equal(t, 100, score)
	score, _ = q.OptionScore("Weekly")
	assert.Equal(t, 0, score)
}

func TestOptionScoreExplicitOverridesScale(t *testing.T) {
	q := Question{
		Type: QuestionSingleChoice,
		Options: []QuestionOption{
			{Label: "A", Score: intPtr(15), Sequence: 1},
			{Label: "B", Sequence: 2},
		},
	}

	score, ok := q.OptionScore("A")
	assert.True(t, ok)
	assert.Equal(t, 15, score)
}

func TestOptionScoreUnknownLabel(t *testing.T) {
	q := Question{Type: QuestionSingleChoice, Options: []QuestionOption{{Label: "A", Sequence: 1}}}

	_, ok := q.OptionScore("Z")
	assert.False(t, ok)
}
