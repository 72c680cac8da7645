package dashboardRoutes

import (
	dashboardControllers "lms/controllers/dashboard"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the user dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/dashboard")

	dashboardGroup.Get("/stats", middleware.JWTMiddleware, dashboardControllers.GetStats)
	dashboardGroup.Get("/achievements", middleware.JWTMiddleware, dashboardControllers.GetAchievements)
}
