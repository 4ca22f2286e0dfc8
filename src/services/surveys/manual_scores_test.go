package surveys

import (
	"testing"
	"time"

	"Backend-VendorRisk/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApplyManualScores(t *testing.T) {
	manual := models.Question{ID: primitive.NewObjectID(), Type: models.QuestionLongText, QuestionText: "q1", RiskWeight: 2}
	manual2 := models.Question{ID: primitive.NewObjectID(), Type: models.QuestionText, QuestionText: "q2", RiskWeight: 1}
	auto := models.Question{ID: primitive.NewObjectID(), Type: models.QuestionBoolean, QuestionText: "q3", RiskWeight: 1, RiskImpact: models.ImpactPositive}
	questionMap := map[primitive.ObjectID]*models.Question{
		manual.ID:  &manual,
		manual2.ID: &manual2,
		auto.ID:    &auto,
	}

	answerMap := func() map[primitive.ObjectID]*models.Answer {
		return map[primitive.ObjectID]*models.Answer{
			manual.ID:  {QuestionID: manual.ID, Value: models.AnswerValue{TextValue: strPtr("we encrypt at rest")}},
			manual2.ID: {QuestionID: manual2.ID, Value: models.AnswerValue{TextValue: strPtr("annual pentest")}},
		}
	}

	now := time.Now()

	t.Run("ValidBatchStampsEveryJudgment", func(t *testing.T) {
		answers := answerMap()
		inputs := []models.ManualScoreInput{
			{QuestionID: manual.ID, Score: models.ManualScorePass},
			{QuestionID: manual2.ID, Score: models.ManualScorePartial},
		}

		scored, err := applyManualScores(inputs, questionMap, answers, "assessor@example.com", now)
		require.NoError(t, err)
		require.Len(t, scored, 2)
		assert.Equal(t, models.ManualScorePass, *scored[0].ManualScore)
		assert.Equal(t, models.ManualScorePartial, *scored[1].ManualScore)
		assert.Equal(t, "assessor@example.com", scored[0].ScoredBy)
		require.NotNil(t, scored[0].ScoredAt)
	})

	t.Run("InvalidLaterEntryRejectsWholeBatch", func(t *testing.T) {
		answers := answerMap()
		inputs := []models.ManualScoreInput{
			{QuestionID: manual.ID, Score: models.ManualScorePass},
			{QuestionID: manual2.ID, Score: 42},
		}

		scored, err := applyManualScores(inputs, questionMap, answers, "assessor@example.com", now)
		require.Error(t, err)
		assert.Nil(t, scored)

		var valErr *models.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("AutoScoredQuestionRejected", func(t *testing.T) {
		inputs := []models.ManualScoreInput{{QuestionID: auto.ID, Score: models.ManualScorePass}}

		_, err := applyManualScores(inputs, questionMap, answerMap(), "assessor@example.com", now)
		var valErr *models.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("UnknownQuestionRejected", func(t *testing.T) {
		inputs := []models.ManualScoreInput{{QuestionID: primitive.NewObjectID(), Score: models.ManualScorePass}}

		_, err := applyManualScores(inputs, questionMap, answerMap(), "assessor@example.com", now)
		var nfErr *models.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})

	t.Run("UnansweredQuestionRejected", func(t *testing.T) {
		answers := answerMap()
		delete(answers, manual2.ID)
		inputs := []models.ManualScoreInput{{QuestionID: manual2.ID, Score: models.ManualScoreNA}}

		_, err := applyManualScores(inputs, questionMap, answers, "assessor@example.com", now)
		var nfErr *models.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}
