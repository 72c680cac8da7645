package quizRoutes

import (
	quizControllers "lms/controllers/quiz"
	"lms/middleware"
	quizValidators "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz content and attempt routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	// Public quiz content (answers stripped)
	quizGroup.Get("/list", quizControllers.GetAllQuizzes)

	// Attempts (must be registered before the slug catch-all)
	quizGroup.Get("/attempts", middleware.JWTMiddleware, quizValidators.ListAttempts(), quizControllers.ListQuizAttempts)
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, quizValidators.SubmitAttempt(), quizControllers.SubmitQuizAttempt)

	quizGroup.Get("/:slug", quizControllers.GetQuizBySlug)
}
