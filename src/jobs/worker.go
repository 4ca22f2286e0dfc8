package jobs

import (
	"log"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/services/notifications"

	"github.com/hibiken/asynq"
)

// RunWorker starts the asynq worker that delivers survey lifecycle
// notifications. Call from a goroutine; it blocks until the server stops.
// No-op when Redis is unavailable, the dispatcher falls back to synchronous
// delivery in that case.
func RunWorker() {
	if DB.RedisURI == "" || DB.RedisClient == nil {
		log.Println("⚠️ Redis not available. Notification worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	if err := RegisterNotificationHandlers(mux); err != nil {
		log.Println("❌ Failed to register notification handlers:", err)
		return
	}

	log.Println("✅ Notification worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Notification worker stopped:", err)
	}
}

// RegisterNotificationHandlers ลงทะเบียน handler ของ notification ทั้งหมด
func RegisterNotificationHandlers(mux *asynq.ServeMux) error {
	// SMTP ไม่ครบ → ยังส่ง notification ลง Mongo ได้ แค่ไม่ส่งเมล
	var sender notifications.MailSender
	if smtp, err := notifications.NewSMTPSenderFromEnv(); err == nil {
		sender = smtp
	} else {
		log.Println("⚠️ SMTP not configured, notifications will be recorded without mail:", err)
	}

	mux.HandleFunc(notifications.TypeSurveyEvent, notifications.HandleSurveyEvent(sender))
	return nil
}
