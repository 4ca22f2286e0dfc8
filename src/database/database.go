package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	TemplateCollection     *mongo.Collection
	QuestionCollection     *mongo.Collection
	SurveyCollection       *mongo.Collection
	AnswerCollection       *mongo.Collection
	VendorCollection       *mongo.Collection
	AttachmentCollection   *mongo.Collection
	SettingCollection      *mongo.Collection
	NotificationCollection *mongo.Collection
	UserCollection         *mongo.Collection
)

const dbName = "VendorRiskDB"

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		TemplateCollection = GetCollection(dbName, "templates")
		QuestionCollection = GetCollection(dbName, "questions")
		SurveyCollection = GetCollection(dbName, "surveys")
		AnswerCollection = GetCollection(dbName, "answers")
		VendorCollection = GetCollection(dbName, "vendors")
		AttachmentCollection = GetCollection(dbName, "attachments")
		SettingCollection = GetCollection(dbName, "settings")
		NotificationCollection = GetCollection(dbName, "notifications")
		UserCollection = GetCollection(dbName, "users")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

// WithTransaction runs fn in one MongoDB transaction. The survey lifecycle
// wraps answer upserts, score computation and the vendor aggregate in a
// single unit so a crash mid-sequence cannot leave a COMPLETED survey with a
// stale or missing score.
func WithTransaction(ctx context.Context, fn func(sessCtx mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	session, err := client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}
