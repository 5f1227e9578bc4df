package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/lightcapturers/wfdata/config"
	"github.com/lightcapturers/wfdata/dataset"
	"github.com/lightcapturers/wfdata/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	config.LoadFromEnv()

	// Load the sales dataset snapshot
	if err := dataset.Load(config.AppConfig.DataFile); err != nil {
		log.Fatalf("Unable to load dataset: %v", err)
	}

	app := fiber.New()

	// Add middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
