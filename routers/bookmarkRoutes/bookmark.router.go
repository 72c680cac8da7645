package bookmarkRoutes

import (
	bookmarkControllers "lms/controllers/bookmark"
	"lms/middleware"
	bookmarkValidators "lms/validators/bookmark"

	"github.com/gofiber/fiber/v2"
)

// SetupBookmarkRoutes sets up bookmark routes
func SetupBookmarkRoutes(app *fiber.App) {
	bookmarkGroup := app.Group("/bookmarks")

	bookmarkGroup.Get("/list", middleware.JWTMiddleware, bookmarkControllers.ListBookmarks)
	bookmarkGroup.Get("/status", middleware.JWTMiddleware, bookmarkValidators.Status(), bookmarkControllers.GetBookmarkStatus)
	bookmarkGroup.Post("/", middleware.JWTMiddleware, bookmarkValidators.AddRemove(), bookmarkControllers.AddBookmark)
	bookmarkGroup.Delete("/", middleware.JWTMiddleware, bookmarkValidators.AddRemove(), bookmarkControllers.RemoveBookmark)
}
