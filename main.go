package main

import (
	"log"

	"certtrack/catalog"
	"certtrack/config"
	"certtrack/database"
	jobRoutes "certtrack/routers/jobRoutes"
	trainingRoutes "certtrack/routers/trainingRoutes"
	"certtrack/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	// A broken track definition should kill the process at boot, not a quiz.
	if err := catalog.ValidateAll(); err != nil {
		log.Fatalf("Invalid track catalog: %v", err)
	}

	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-Cron-Secret",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	trainingRoutes.SetupTrainingRoutes(app)
	jobRoutes.SetupJobRoutes(app)

	// In-process daily tick; the /jobs/cert-expiry endpoint runs the same job
	utils.InitializeCertScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
