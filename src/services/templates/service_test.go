package templates

import (
	"testing"

	"Backend-VendorRisk/src/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestValidateQuestion(t *testing.T) {
	t.Run("UnknownTypeRejected", func(t *testing.T) {
		q := models.Question{Type: "RATING_GRID", QuestionText: "q"}
		assert.Error(t, ValidateQuestion(&q))
	})

	t.Run("NegativeWeightRejected", func(t *testing.T) {
		q := models.Question{Type: models.QuestionText, QuestionText: "q", RiskWeight: -1}
		assert.Error(t, ValidateQuestion(&q))
	})

	t.Run("ChoiceNeedsOptions", func(t *testing.T) {
		q := models.Question{Type: models.QuestionSingleChoice, QuestionText: "q"}
		assert.Error(t, ValidateQuestion(&q))

		q.Options = []models.QuestionOption{{Label: "A", Sequence: 1}}
		assert.NoError(t, ValidateQuestion(&q))
	})

	t.Run("OptionScoreOutOfRangeRejected", func(t *testing.T) {
		q := models.Question{
			Type:         models.QuestionMultipleChoice,
			QuestionText: "q",
			Options:      []models.QuestionOption{{Label: "A", Score: intPtr(150), Sequence: 1}},
		}
		assert.Error(t, ValidateQuestion(&q))
	})

	t.Run("ScorableBooleanNeedsImpact", func(t *testing.T) {
		q := models.Question{Type: models.QuestionBoolean, QuestionText: "q", RiskWeight: 2}
		assert.Error(t, ValidateQuestion(&q))

		q.RiskImpact = models.ImpactPositive
		assert.NoError(t, ValidateQuestion(&q))
	})

	t.Run("UnweightedBooleanNeedsNoImpact", func(t *testing.T) {
		q := models.Question{Type: models.QuestionBoolean, QuestionText: "q"}
		assert.NoError(t, ValidateQuestion(&q))
	})

	t.Run("BogusImpactRejected", func(t *testing.T) {
		q := models.Question{Type: models.QuestionText, QuestionText: "q", RiskImpact: "SIDEWAYS"}
		assert.Error(t, ValidateQuestion(&q))
	})
}
