package lessonRoutes

import (
	lessonControllers "lms/controllers/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up public content-serving routes for lessons
func SetupLessonRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")
	categoryGroup.Get("/list", lessonControllers.GetAllCategories)
	categoryGroup.Get("/:slug", lessonControllers.GetCategoryBySlug)
	categoryGroup.Get("/:id/lessons", lessonControllers.GetLessonsByCategory)

	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/list", lessonControllers.GetAllLessons)
	lessonGroup.Get("/:slug", lessonControllers.GetLessonBySlug)
}
