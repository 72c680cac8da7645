package glossaryController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllTerms lists glossary terms alphabetically
func GetAllTerms(c *fiber.Ctx) error {
	var terms []models.GlossaryTerm
	if err := database.Database.Db.Order("term asc").Find(&terms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch glossary terms!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Glossary terms fetched successfully!", terms)
}

// GetTermBySlug fetches a single term
func GetTermBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var term models.GlossaryTerm
	if err := database.Database.Db.Where("slug = ?", slug).First(&term).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Glossary term not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Glossary term fetched successfully!", term)
}

// SearchTerms searches term names and definitions
func SearchTerms(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search query is required!", nil)
	}

	pattern := "%" + query + "%"
	var terms []models.GlossaryTerm
	if err := database.Database.Db.
		Where("term LIKE ? OR definition LIKE ?", pattern, pattern).
		Order("term asc").Find(&terms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search glossary terms!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Glossary terms fetched successfully!", terms)
}

// GetTermsByCategory lists terms in one category
func GetTermsByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	var terms []models.GlossaryTerm
	if err := database.Database.Db.Where("category = ?", category).
		Order("term asc").Find(&terms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch glossary terms!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Glossary terms fetched successfully!", terms)
}
