package notifications

import (
	"context"
	"encoding/json"
	"log"
	"time"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleSurveyEvent records the notification and sends the mail when a
// recipient and sender are available. A nil sender only skips the mail;
// the Notification document is always written.
func HandleSurveyEvent(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SurveyEventPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		now := time.Now()
		notification := models.Notification{
			ID:          primitive.NewObjectID(),
			TemplateKey: p.TemplateKey,
			Payload:     p.Payload,
			Recipient:   p.Recipient,
			CreatedAt:   now,
		}

		if sender != nil && p.Recipient != "" {
			subject, body := renderTemplate(p.TemplateKey, p.Payload)
			if err := sender.Send(p.Recipient, subject, body); err != nil {
				log.Printf("[notifications] ❌ send %s to %s: %v", p.TemplateKey, p.Recipient, err)
			} else {
				notification.SentAt = &now
			}
		}

		if _, err := DB.NotificationCollection.InsertOne(ctx, notification); err != nil {
			log.Printf("[notifications] ❌ record %s: %v", p.TemplateKey, err)
			return err
		}

		log.Printf("[notifications] ✅ dispatched %s recipient=%s", p.TemplateKey, p.Recipient)
		return nil
	}
}
