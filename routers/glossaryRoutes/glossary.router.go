package glossaryRoutes

import (
	glossaryControllers "lms/controllers/glossary"

	"github.com/gofiber/fiber/v2"
)

// SetupGlossaryRoutes sets up public glossary routes
func SetupGlossaryRoutes(app *fiber.App) {
	glossaryGroup := app.Group("/glossary")

	glossaryGroup.Get("/list", glossaryControllers.GetAllTerms)
	glossaryGroup.Get("/search", glossaryControllers.SearchTerms)
	glossaryGroup.Get("/category/:category", glossaryControllers.GetTermsByCategory)
	glossaryGroup.Get("/:slug", glossaryControllers.GetTermBySlug)
}
