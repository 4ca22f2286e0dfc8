package notifications

import (
	"fmt"

	"Backend-VendorRisk/src/models"
)

// renderTemplate builds the mail subject and body for a notification
// template key. Unknown keys fall back to a generic notice so dispatch never
// fails on content.
func renderTemplate(templateKey string, payload map[string]string) (subject, body string) {
	vendor := payload["vendorName"]
	survey := payload["surveyId"]

	switch templateKey {
	case models.NotifySurveySent:
		subject = fmt.Sprintf("Risk assessment requested for %s", vendor)
		body = fmt.Sprintf("<p>A new risk assessment survey has been sent.</p><p>Survey: %s</p><p>Link: %s</p>", survey, payload["link"])
	case models.NotifySurveySubmitted:
		subject = fmt.Sprintf("Survey submitted by %s", vendor)
		body = fmt.Sprintf("<p>The vendor submitted its answers.</p><p>Survey: %s</p>", survey)
	case models.NotifyScoringPending:
		subject = fmt.Sprintf("Manual scoring pending for %s", vendor)
		body = fmt.Sprintf("<p>Free-text answers are waiting for a reviewer judgment.</p><p>Survey: %s</p>", survey)
	case models.NotifyAssessmentCompleted:
		subject = fmt.Sprintf("Assessment completed for %s", vendor)
		body = fmt.Sprintf("<p>The assessment has been completed.</p><p>Survey: %s</p><p>Risk score: %s (%s)</p>", survey, payload["score"], payload["rating"])
	default:
		subject = "Vendor risk notification"
		body = fmt.Sprintf("<p>Event: %s</p>", templateKey)
	}
	return subject, body
}
