package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// AsynqClient enqueues notification tasks. Stays nil when Redis is not
// configured; the dispatcher then delivers notifications synchronously.
var AsynqClient *asynq.Client

// InitAsynq ตั้งค่า asynq client เมื่อ Redis พร้อมใช้งานเท่านั้น
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available, notifications will be delivered synchronously")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq client initialized")
}
