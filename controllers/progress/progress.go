package progressController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// MarkLessonComplete records a lesson completion and runs the statistics /
// achievement pipeline before responding
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)
	reqData := c.Locals("validatedProgress").(*struct {
		TimeSpentMinutes *int `json:"timeSpentMinutes"`
	})

	// Lesson must exist in reference content
	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND is_published = ?", lessonID, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := utils.MarkLessonComplete(userID, lessonID, *reqData.TimeSpentMinutes); err != nil {
		if err == utils.ErrNegativeTime {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Time spent cannot be negative!", nil)
		}
		log.Printf("Error saving lesson progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	// The progress row is already durable; a pipeline failure is reported but
	// does not undo the write.
	if _, err := utils.RecordActivity(userID); err != nil {
		log.Printf("Error refreshing statistics after lesson completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Lesson completed, but statistics update failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked complete!", fiber.Map{
		"success": true,
	})
}

// GetLessonProgress returns the user's progress for one lesson (null if untouched)
func GetLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	progress, err := utils.GetLessonProgress(userID, lessonID)
	if err != nil {
		log.Printf("Error fetching lesson progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

// ListAllProgress returns every lesson the user has touched
func ListAllProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	progress, err := utils.ListLessonProgress(userID)
	if err != nil {
		log.Printf("Error listing lesson progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}
