package notifications

import (
	"context"
	"log"

	DB "Backend-VendorRisk/src/database"

	"github.com/hibiken/asynq"
)

// Dispatch fires a notification for a lifecycle event. Fire-and-forget: with
// Redis the task is queued; without it the handler runs inline. Failures are
// logged and never propagated to the lifecycle operation that triggered them.
func Dispatch(templateKey string, payload map[string]string, recipient string) {
	task, err := NewSurveyEventTask(templateKey, payload, recipient)
	if err != nil {
		log.Println("❌ build survey-event task:", err)
		return
	}

	// มี Redis → เข้าคิว
	if DB.AsynqClient != nil {
		if _, err := DB.AsynqClient.Enqueue(task, asynq.MaxRetry(3)); err != nil {
			log.Println("❌ enqueue survey-event task:", err)
		} else {
			log.Println("✅ Enqueued survey-event task:", templateKey)
		}
		return
	}

	// ไม่มี Redis → ส่งทันที
	log.Println("⚠️ Redis not available → dispatching notification synchronously")
	var sender MailSender
	if smtp, err := NewSMTPSenderFromEnv(); err == nil {
		sender = smtp
	}

	handler := HandleSurveyEvent(sender)
	if err := handler(context.Background(), task); err != nil {
		log.Printf("❌ dispatch %s: %v", templateKey, err)
	}
}
