package notifications

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeSurveyEvent = "survey:event"

type SurveyEventPayload struct {
	TemplateKey string            `json:"template_key"`
	Payload     map[string]string `json:"payload"`
	Recipient   string            `json:"recipient"`
}

func NewSurveyEventTask(templateKey string, payload map[string]string, recipient string) (*asynq.Task, error) {
	b, err := json.Marshal(SurveyEventPayload{
		TemplateKey: templateKey,
		Payload:     payload,
		Recipient:   recipient,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSurveyEvent, b), nil
}
