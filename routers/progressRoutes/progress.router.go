package progressRoutes

import (
	progressControllers "lms/controllers/progress"
	"lms/middleware"
	progressValidators "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up lesson progress tracking routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Get("/list", middleware.JWTMiddleware, progressControllers.ListAllProgress)
	progressGroup.Post("/lesson/:id/complete", middleware.JWTMiddleware, progressValidators.MarkComplete(), progressControllers.MarkLessonComplete)
	progressGroup.Get("/lesson/:id", middleware.JWTMiddleware, progressValidators.GetProgress(), progressControllers.GetLessonProgress)
}
