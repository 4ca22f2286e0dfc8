package vendors

import (
	"testing"
	"time"

	"Backend-VendorRisk/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func scoredSurvey(score int, calculatedAt time.Time) models.Survey {
	return models.Survey{
		ID:                    primitive.NewObjectID(),
		Status:                models.SurveyCompleted,
		RiskScore:             &score,
		RiskScoreCalculatedAt: &calculatedAt,
	}
}

func TestLatestScored(t *testing.T) {
	now := time.Now()

	t.Run("MostRecentCalculationWins", func(t *testing.T) {
		older := scoredSurvey(90, now.Add(-2*time.Hour))
		newer := scoredSurvey(30, now.Add(-time.Minute))

		latest := LatestScored([]models.Survey{older, newer})
		require.NotNil(t, latest)
		assert.Equal(t, newer.ID, latest.ID)
		assert.Equal(t, 30, *latest.RiskScore)
	})

	t.Run("UnscoredSurveysIgnored", func(t *testing.T) {
		unscored := models.Survey{ID: primitive.NewObjectID(), Status: models.SurveyCompleted}
		scored := scoredSurvey(55, now)

		latest := LatestScored([]models.Survey{unscored, scored})
		require.NotNil(t, latest)
		assert.Equal(t, scored.ID, latest.ID)
	})

	t.Run("NoScoredSurveysYieldsNil", func(t *testing.T) {
		pending := models.Survey{ID: primitive.NewObjectID(), Status: models.SurveyPendingScoring}
		assert.Nil(t, LatestScored([]models.Survey{pending}))
		assert.Nil(t, LatestScored(nil))
	})
}
