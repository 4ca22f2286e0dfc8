package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestIsValidManualScore(t *testing.T) {
	for _, score := range []int{0, 50, 100, -1} {
		assert.True(t, IsValidManualScore(score), "score %d", score)
	}
	for _, score := range []int{1, 49, 75, 101, -2} {
		assert.False(t, IsValidManualScore(score), "score %d", score)
	}
}

func TestAnswerValueIsEmpty(t *testing.T) {
	assert.True(t, AnswerValue{}.IsEmpty())
	assert.True(t, AnswerValue{TextValue: strPtr("")}.IsEmpty())
	assert.False(t, AnswerValue{TextValue: strPtr("x")}.IsEmpty())
	assert.False(t, AnswerValue{BoolValue: boolPtr(false)}.IsEmpty())
	assert.False(t, AnswerValue{SelectedOptions: []string{"a"}}.IsEmpty())
	assert.False(t, AnswerValue{FileRefs: []string{"f"}}.IsEmpty())
}

func TestValidateFor(t *testing.T) {
	textQ := Question{ID: primitive.NewObjectID(), Type: QuestionText}
	boolQ := Question{ID: primitive.NewObjectID(), Type: QuestionBoolean}
	singleQ := Question{
		ID:   primitive.NewObjectID(),
		Type: QuestionSingleChoice,
		Options: []QuestionOption{
			{Label: "Yes", Sequence: 1},
			{Label: "No", Sequence: 2},
		},
	}
	multiQ := Question{
		ID:   primitive.NewObjectID(),
		Type: QuestionMultipleChoice,
		Options: []QuestionOption{
			{Label: "A", Sequence: 1},
			{Label: "B", Sequence: 2},
		},
	}
	fileQ := Question{ID: primitive.NewObjectID(), Type: QuestionFile}

	t.Run("TextAcceptsTextOnly", func(t *testing.T) {
		assert.NoError(t, AnswerValue{TextValue: strPtr("fine")}.ValidateFor(&textQ))
		assert.Error(t, AnswerValue{BoolValue: boolPtr(true)}.ValidateFor(&textQ))
		assert.Error(t, AnswerValue{SelectedOptions: []string{"Yes"}}.ValidateFor(&textQ))
	})

	t.Run("BooleanNeedsBool", func(t *testing.T) {
		assert.NoError(t, AnswerValue{BoolValue: boolPtr(false)}.ValidateFor(&boolQ))
		assert.Error(t, AnswerValue{TextValue: strPtr("yes")}.ValidateFor(&boolQ))
	})

	t.Run("SingleChoiceNeedsExactlyOneKnownOption", func(t *testing.T) {
		assert.NoError(t, AnswerValue{SelectedOptions: []string{"Yes"}}.ValidateFor(&singleQ))
		assert.Error(t, AnswerValue{SelectedOptions: []string{"Yes", "No"}}.ValidateFor(&singleQ))
		assert.Error(t, AnswerValue{SelectedOptions: []string{"Maybe"}}.ValidateFor(&singleQ))
		assert.Error(t, AnswerValue{}.ValidateFor(&singleQ))
	})

	t.Run("MultipleChoiceRejectsUnknownLabels", func(t *testing.T) {
		assert.NoError(t, AnswerValue{SelectedOptions: []string{"A", "B"}}.ValidateFor(&multiQ))
		assert.Error(t, AnswerValue{SelectedOptions: []string{"A", "C"}}.ValidateFor(&multiQ))
		assert.Error(t, AnswerValue{}.ValidateFor(&multiQ))
	})

	t.Run("FileRejectsInlineValues", func(t *testing.T) {
		assert.NoError(t, AnswerValue{FileRefs: []string{"soc2.pdf"}}.ValidateFor(&fileQ))
		assert.NoError(t, AnswerValue{}.ValidateFor(&fileQ))
		assert.Error(t, AnswerValue{TextValue: strPtr("see attached")}.ValidateFor(&fileQ))
	})
}

func TestSetManualScore(t *testing.T) {
	now := time.Now()
	a := Answer{}

	require.NoError(t, a.SetManualScore(ManualScorePartial, "assessor@example.com", now))
	require.NotNil(t, a.ManualScore)
	assert.Equal(t, 50, *a.ManualScore)
	assert.Equal(t, "assessor@example.com", a.ScoredBy)
	require.NotNil(t, a.ScoredAt)

	assert.Error(t, a.SetManualScore(42, "assessor@example.com", now))
	assert.Equal(t, 50, *a.ManualScore, "failed set must not clobber the judgment")
}
