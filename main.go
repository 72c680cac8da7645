package main

import (
	"lms/config"
	"lms/database"
	authRoutes "lms/routers/authRoutes"
	bookmarkRoutes "lms/routers/bookmarkRoutes"
	dashboardRoutes "lms/routers/dashboardRoutes"
	glossaryRoutes "lms/routers/glossaryRoutes"
	lessonRoutes "lms/routers/lessonRoutes"
	progressRoutes "lms/routers/progressRoutes"
	quizRoutes "lms/routers/quizRoutes"

	"log"

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
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	glossaryRoutes.SetupGlossaryRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	bookmarkRoutes.SetupBookmarkRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
