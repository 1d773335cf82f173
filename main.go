package main

import (
	"log"

	"vteam_ticket/database"
	"vteam_ticket/helper"
	"vteam_ticket/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // ✅ đủ cho ảnh chứng từ chuyển khoản
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartOnlineOrderScheduler()
	defer helper.StopOnlineOrderScheduler()
	helper.StartDailySummaryScheduler()
	defer helper.StopDailySummaryScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
