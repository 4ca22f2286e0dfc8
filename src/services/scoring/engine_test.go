package scoring

import (
	"math"
	"testing"

	"Backend-VendorRisk/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(v bool) *bool   { return &v }
func intPtr(v int) *int      { return &v }
func strPtr(v string) *string { return &v }

func question(t models.QuestionType, weight int) models.Question {
	return models.Question{
		ID:           primitive.NewObjectID(),
		Type:         t,
		QuestionText: "q",
		IsRequired:   true,
		RiskWeight:   weight,
	}
}

func answerFor(q models.Question, value models.AnswerValue) *models.Answer {
	return &models.Answer{QuestionID: q.ID, Value: value}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, AssessmentNA, Label(-1))
	assert.Equal(t, AssessmentPass, Label(0))
	assert.Equal(t, AssessmentPartial, Label(1))
	assert.Equal(t, AssessmentPartial, Label(50))
	assert.Equal(t, AssessmentFail, Label(51))
	assert.Equal(t, AssessmentFail, Label(100))
}

func TestRawScoreBoolean(t *testing.T) {
	t.Run("PositiveImpactYesIsNoRisk", func(t *testing.T) {
		q := question(models.QuestionBoolean, 1)
		q.RiskImpact = models.ImpactPositive

		raw, na := RawScore(&q, answerFor(q, models.AnswerValue{BoolValue: boolPtr(true)}), false)
		assert.False(t, na)
		assert.Equal(t, 0, raw)

		raw, _ = RawScore(&q, answerFor(q, models.AnswerValue{BoolValue: boolPtr(false)}), false)
		assert.Equal(t, 100, raw)
	})

	t.Run("NegativeImpactInverts", func(t *testing.T) {
		q := question(models.QuestionBoolean, 1)
		q.RiskImpact = models.ImpactNegative

		raw, _ := RawScore(&q, answerFor(q, models.AnswerValue{BoolValue: boolPtr(true)}), false)
		assert.Equal(t, 100, raw)

		raw, _ = RawScore(&q, answerFor(q, models.AnswerValue{BoolValue: boolPtr(false)}), false)
		assert.Equal(t, 0, raw)
	})

	t.Run("MissingRequiredIsMaxRisk", func(t *testing.T) {
		q := question(models.QuestionBoolean, 1)
		q.RiskImpact = models.ImpactPositive

		raw, na := RawScore(&q, nil, false)
		assert.False(t, na)
		assert.Equal(t, 100, raw)
	})

	t.Run("MissingOptionalIsNA", func(t *testing.T) {
		q := question(models.QuestionBoolean, 1)
		q.IsRequired = false

		_, na := RawScore(&q, nil, false)
		assert.True(t, na)
	})
}

func TestRawScoreManual(t *testing.T) {
	q := question(models.QuestionLongText, 2)

	t.Run("UsesRecordedJudgment", func(t *testing.T) {
		a := answerFor(q, models.AnswerValue{TextValue: strPtr("we rotate keys")})
		a.ManualScore = intPtr(models.ManualScorePartial)

		raw, na := RawScore(&q, a, false)
		assert.False(t, na)
		assert.Equal(t, 50, raw)
	})

	t.Run("UnscoredAnswerIsNA", func(t *testing.T) {
		a := answerFor(q, models.AnswerValue{TextValue: strPtr("text")})
		_, na := RawScore(&q, a, false)
		assert.True(t, na)
	})

	t.Run("NASentinelIsNA", func(t *testing.T) {
		a := answerFor(q, models.AnswerValue{TextValue: strPtr("text")})
		a.ManualScore = intPtr(models.ManualScoreNA)
		_, na := RawScore(&q, a, false)
		assert.True(t, na)
	})
}

func TestRawScoreSingleChoice(t *testing.T) {
	q := question(models.QuestionSingleChoice, 1)
	q.Options = []models.QuestionOption{
		{Label: "Quarterly", Sequence: 1},
		{Label: "Yearly", Sequence: 2},
		{Label: "Never", Sequence: 3},
	}

	t.Run("LinearScaleByPosition", func(t *testing.T) {
		raw, _ := RawScore(&q, answerFor(q, models.AnswerValue{SelectedOptions: []string{"Quarterly"}}), false)
		assert.Equal(t, 0, raw)

		raw, _ = RawScore(&q, answerFor(q, models.AnswerValue{SelectedOptions: []string{"Yearly"}}), false)
		assert.Equal(t, 50, raw)

		raw, _ = RawScore(&q, answerFor(q, models.AnswerValue{SelectedOptions: []string{"Never"}}), false)
		assert.Equal(t, 100, raw)
	})

	t.Run("ExplicitScoreWins", func(t *testing.T) {
		scored := q
		scored.Options = []models.QuestionOption{
			{Label: "A", Score: intPtr(30), Sequence: 1},
			{Label: "B", Sequence: 2},
		}
		raw, _ := RawScore(&scored, answerFor(scored, models.AnswerValue{SelectedOptions: []string{"A"}}), false)
		assert.Equal(t, 30, raw)
	})

	t.Run("UnknownOptionIsMaxRisk", func(t *testing.T) {
		raw, na := RawScore(&q, answerFor(q, models.AnswerValue{SelectedOptions: []string{"Sometimes"}}), false)
		assert.False(t, na)
		assert.Equal(t, 100, raw)
	})
}

func TestRawScoreMultipleChoiceWorstCaseWins(t *testing.T) {
	q := question(models.QuestionMultipleChoice, 1)
	q.Options = []models.QuestionOption{
		{Label: "EU", Score: intPtr(0), Sequence: 1},
		{Label: "US", Score: intPtr(25), Sequence: 2},
		{Label: "Unknown", Score: intPtr(100), Sequence: 3},
	}

	raw, _ := RawScore(&q, answerFor(q, models.AnswerValue{SelectedOptions: []string{"EU", "US"}}), false)
	assert.Equal(t, 25, raw)

	raw, _ = RawScore(&q, answerFor(q, models.AnswerValue{SelectedOptions: []string{"EU", "Unknown"}}), false)
	assert.Equal(t, 100, raw)
}

func TestRawScoreFile(t *testing.T) {
	t.Run("PresenceOnly", func(t *testing.T) {
		q := question(models.QuestionFile, 1)

		raw, _ := RawScore(&q, nil, true)
		assert.Equal(t, 0, raw)

		raw, _ = RawScore(&q, nil, false)
		assert.Equal(t, 100, raw)
	})

	t.Run("ExplicitPresentAbsentScores", func(t *testing.T) {
		q := question(models.QuestionFile, 1)
		q.Options = []models.QuestionOption{
			{Label: "present", Score: intPtr(10), Sequence: 1},
			{Label: "absent", Score: intPtr(70), Sequence: 2},
		}

		raw, _ := RawScore(&q, nil, true)
		assert.Equal(t, 10, raw)

		raw, _ = RawScore(&q, nil, false)
		assert.Equal(t, 70, raw)
	})
}

func TestAggregateWeightedAverage(t *testing.T) {
	q1 := question(models.QuestionBoolean, 3)
	q1.RiskImpact = models.ImpactPositive
	q2 := question(models.QuestionBoolean, 1)
	q2.RiskImpact = models.ImpactPositive

	answers := map[primitive.ObjectID]*models.Answer{
		q1.ID: answerFor(q1, models.AnswerValue{BoolValue: boolPtr(false)}), // 100
		q2.ID: answerFor(q2, models.AnswerValue{BoolValue: boolPtr(true)}),  // 0
	}

	result, err := Aggregate([]models.Question{q1, q2}, answers, nil)
	require.NoError(t, err)
	// (100*3 + 0*1) / 4 = 75
	assert.Equal(t, 75, result.Score)
	assert.Len(t, result.Items, 2)
}

func TestAggregateMixedAutoAndManual(t *testing.T) {
	encrypted := question(models.QuestionBoolean, 50)
	encrypted.RiskImpact = models.ImpactPositive
	breaches := question(models.QuestionBoolean, 50)
	breaches.RiskImpact = models.ImpactNegative
	keyPolicy := question(models.QuestionLongText, 30)

	reviewed := answerFor(keyPolicy, models.AnswerValue{TextValue: strPtr("keys rotate quarterly")})
	reviewed.ManualScore = intPtr(models.ManualScorePartial)

	answers := map[primitive.ObjectID]*models.Answer{
		encrypted.ID: answerFor(encrypted, models.AnswerValue{BoolValue: boolPtr(true)}), // 0
		breaches.ID:  answerFor(breaches, models.AnswerValue{BoolValue: boolPtr(true)}),  // 100
		keyPolicy.ID: reviewed,                                                           // 50
	}

	result, err := Aggregate([]models.Question{encrypted, breaches, keyPolicy}, answers, nil)
	require.NoError(t, err)
	// (0*50 + 100*50 + 50*30) / 130 = 50
	assert.Equal(t, 50, result.Score)
	assert.Len(t, result.Items, 3)
}

func TestBreakdownReproducesAggregate(t *testing.T) {
	q1 := question(models.QuestionBoolean, 3)
	q1.RiskImpact = models.ImpactPositive
	q2 := question(models.QuestionSingleChoice, 2)
	q2.Options = []models.QuestionOption{
		{Label: "Quarterly", Sequence: 1},
		{Label: "Yearly", Sequence: 2},
		{Label: "Never", Sequence: 3},
	}
	q3 := question(models.QuestionLongText, 5) // unscored → N/A
	q4 := question(models.QuestionFile, 1)

	answers := map[primitive.ObjectID]*models.Answer{
		q1.ID: answerFor(q1, models.AnswerValue{BoolValue: boolPtr(false)}),            // 100
		q2.ID: answerFor(q2, models.AnswerValue{SelectedOptions: []string{"Yearly"}}),  // 50
		q3.ID: answerFor(q3, models.AnswerValue{TextValue: strPtr("see attached")}),
	}
	attachments := map[primitive.ObjectID]bool{q4.ID: true} // 0

	result, err := Aggregate([]models.Question{q1, q2, q3, q4}, answers, attachments)
	require.NoError(t, err)
	// (100*3 + 50*2 + 0*1) / 6 = 66.67 → 67
	assert.Equal(t, 67, result.Score)

	// Re-averaging the non-N/A breakdown rows by weight gives the score back.
	weightedSum, weightTotal := 0, 0
	for _, item := range result.Items {
		if item.IsNA {
			continue
		}
		weightedSum += item.RawScore * item.Weight
		weightTotal += item.Weight
	}
	require.NotZero(t, weightTotal)
	recomputed := Clamp(int(math.Round(float64(weightedSum) / float64(weightTotal))))
	assert.Equal(t, result.Score, recomputed)
}

func TestAggregateExcludesNAFromDenominator(t *testing.T) {
	q1 := question(models.QuestionBoolean, 2)
	q1.RiskImpact = models.ImpactPositive
	q2 := question(models.QuestionLongText, 5) // unscored → N/A

	answers := map[primitive.ObjectID]*models.Answer{
		q1.ID: answerFor(q1, models.AnswerValue{BoolValue: boolPtr(false)}), // 100
		q2.ID: answerFor(q2, models.AnswerValue{TextValue: strPtr("text")}),
	}

	result, err := Aggregate([]models.Question{q1, q2}, answers, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)

	naItem := result.Items[1]
	assert.True(t, naItem.IsNA)
	assert.Equal(t, -1, naItem.RawScore)
	assert.Equal(t, "-", naItem.WeightLabel)
	assert.Equal(t, AssessmentNA, naItem.Assessment)
}

func TestAggregateSkipsZeroWeightQuestions(t *testing.T) {
	scored := question(models.QuestionBoolean, 1)
	scored.RiskImpact = models.ImpactPositive
	informational := question(models.QuestionText, 0)

	answers := map[primitive.ObjectID]*models.Answer{
		scored.ID: answerFor(scored, models.AnswerValue{BoolValue: boolPtr(true)}),
	}

	result, err := Aggregate([]models.Question{scored, informational}, answers, nil)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 0, result.Score)
}

func TestAggregateAllNAFails(t *testing.T) {
	q := question(models.QuestionLongText, 3)

	_, err := Aggregate([]models.Question{q}, nil, nil)
	require.Error(t, err)

	var compErr *models.ComputationError
	assert.ErrorAs(t, err, &compErr)
}

func TestAggregateRounds(t *testing.T) {
	// Two weight-1 questions at 0 and 25 average to 12.5 → rounds to 13.
	q1 := question(models.QuestionSingleChoice, 1)
	q1.Options = []models.QuestionOption{{Label: "a", Score: intPtr(0), Sequence: 1}}
	q2 := question(models.QuestionSingleChoice, 1)
	q2.Options = []models.QuestionOption{{Label: "b", Score: intPtr(25), Sequence: 1}}

	answers := map[primitive.ObjectID]*models.Answer{
		q1.ID: answerFor(q1, models.AnswerValue{SelectedOptions: []string{"a"}}),
		q2.ID: answerFor(q2, models.AnswerValue{SelectedOptions: []string{"b"}}),
	}

	result, err := Aggregate([]models.Question{q1, q2}, answers, nil)
	require.NoError(t, err)
	assert.Equal(t, 13, result.Score)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 42, Clamp(42))
	assert.Equal(t, 100, Clamp(140))
}

func TestRequiresManualScoring(t *testing.T) {
	auto := question(models.QuestionBoolean, 1)
	manual := question(models.QuestionText, 1)
	unweightedText := question(models.QuestionLongText, 0)

	assert.False(t, RequiresManualScoring([]models.Question{auto}))
	assert.False(t, RequiresManualScoring([]models.Question{auto, unweightedText}))
	assert.True(t, RequiresManualScoring([]models.Question{auto, manual}))
}
