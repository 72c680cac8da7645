package lessonController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllCategories lists lesson categories in curriculum order
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.LessonCategory
	if err := database.Database.Db.Order("order_index asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// GetCategoryBySlug fetches a single category
func GetCategoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var category models.LessonCategory
	if err := database.Database.Db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully!", category)
}

// GetAllLessons lists published lessons in curriculum order
func GetAllLessons(c *fiber.Ctx) error {
	var lessons []models.Lesson
	if err := database.Database.Db.Where("is_published = ?", true).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

// GetLessonsByCategory lists published lessons for one category
func GetLessonsByCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	var lessons []models.Lesson
	if err := database.Database.Db.Where("category_id = ? AND is_published = ?", categoryID, true).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

// GetLessonBySlug fetches a single lesson with its content body
func GetLessonBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var lesson models.Lesson
	if err := database.Database.Db.Where("slug = ? AND is_published = ?", slug, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}
