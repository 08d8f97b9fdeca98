package main

import (
	"log"

	"onboard/config"
	"onboard/database"
	authRoutes "onboard/routers/authRoutes"
	onboardingRoutes "onboard/routers/onboardingRoutes"
	pmRoutes "onboard/routers/pmRoutes"
	supportRoutes "onboard/routers/supportRoutes"
	"onboard/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve stored instructor uploads
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	pmRoutes.SetupPMRoutes(app)
	onboardingRoutes.SetupOnboardingRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	// Daily step-due reminders
	utils.StartReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
