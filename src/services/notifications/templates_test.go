package notifications

import (
	"testing"

	"Backend-VendorRisk/src/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	payload := map[string]string{
		"vendorName": "Acme Corp",
		"surveyId":   "abc123",
		"link":       "http://localhost:8888/respond/tok",
		"score":      "73",
		"rating":     "High",
	}

	t.Run("SurveySentIncludesLink", func(t *testing.T) {
		subject, body := renderTemplate(models.NotifySurveySent, payload)
		assert.Contains(t, subject, "Acme Corp")
		assert.Contains(t, body, "http://localhost:8888/respond/tok")
	})

	t.Run("CompletedIncludesScoreAndRating", func(t *testing.T) {
		_, body := renderTemplate(models.NotifyAssessmentCompleted, payload)
		assert.Contains(t, body, "73")
		assert.Contains(t, body, "High")
	})

	t.Run("UnknownKeyFallsBack", func(t *testing.T) {
		subject, body := renderTemplate("survey:unknown", payload)
		assert.Equal(t, "Vendor risk notification", subject)
		assert.Contains(t, body, "survey:unknown")
	})
}
