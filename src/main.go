package main

import (
	_ "Backend-VendorRisk/docs"
	"Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/jobs"
	"Backend-VendorRisk/src/routes"
	"Backend-VendorRisk/src/seeder"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq (optional, notifications fall back to synchronous delivery)
	database.InitRedis()
	database.InitAsynq()
	go jobs.RunWorker()

	// seed ข้อมูลตั้งต้น
	if err := seeder.SeedDefaultSettings(); err != nil {
		log.Println("⚠️ Failed to seed settings:", err)
	}
	if err := seeder.SeedDefaultUsers(); err != nil {
		log.Println("⚠️ Failed to seed users:", err)
	}
	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := seeder.SeedSampleTemplates(); err != nil {
			log.Println("⚠️ Failed to seed sample templates:", err)
		}
	}

	// สร้าง app instance
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
