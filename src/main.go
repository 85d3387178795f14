package main

import (
	_ "formflow-backend/docs"
	"formflow-backend/src/database"
	"formflow-backend/src/jobs"
	"formflow-backend/src/routes"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        FormFlow API
// @version      1.0
// @description  Form builder, PDF templates, field mappings and submissions.
// @BasePath     /api
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and asynq are optional; without them file cleanup runs inline
	database.InitRedis()
	database.InitAsynq()
	go jobs.StartWorker()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // PDF template uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
