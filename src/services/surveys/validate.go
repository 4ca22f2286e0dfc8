package surveys

import (
	"Backend-VendorRisk/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MissingRequired returns the ids of required questions that have no usable
// answer, in template order. For FILE questions "answered" means at least one
// attachment exists for the (survey, question) pair, regardless of the values
// sent in the current call.
func MissingRequired(questions []models.Question, answers map[primitive.ObjectID]*models.Answer, attachments map[primitive.ObjectID]bool) []string {
	var missing []string
	for i := range questions {
		q := &questions[i]
		if !q.IsRequired {
			continue
		}

		if q.Type == models.QuestionFile {
			if !attachments[q.ID] {
				missing = append(missing, q.ID.Hex())
			}
			continue
		}

		answer := answers[q.ID]
		if answer == nil || answer.Value.IsEmpty() {
			missing = append(missing, q.ID.Hex())
		}
	}
	return missing
}

// MissingManualScores returns the ids of manually-scored questions whose
// answers still lack a human judgment. Unanswered optional text questions are
// skipped: there is nothing for a reviewer to judge and the engine excludes
// them as N/A.
func MissingManualScores(questions []models.Question, answers map[primitive.ObjectID]*models.Answer) []string {
	var missing []string
	for i := range questions {
		q := &questions[i]
		if !q.IsManuallyScored() {
			continue
		}
		answer := answers[q.ID]
		if answer == nil || answer.Value.IsEmpty() {
			continue
		}
		if answer.ManualScore == nil {
			missing = append(missing, q.ID.Hex())
		}
	}
	return missing
}
