package bookmarkValidator

import (
	"lms/middleware"
	"lms/models"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func isValidItemType(itemType string) bool {
	return itemType == models.BookmarkItemLesson || itemType == models.BookmarkItemGlossary
}

// AddRemove validates the bookmark body shared by add and remove
func AddRemove() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ItemType string `json:"itemType"`
			ItemID   *int   `json:"itemId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate ItemType
		if !isValidItemType(reqData.ItemType) {
			errors["itemType"] = "Item type must be 'lesson' or 'glossary'!"
		}

		// Validate ItemID
		if reqData.ItemID == nil || *reqData.ItemID < 1 {
			errors["itemId"] = "Item id must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookmark", reqData)
		return c.Next()
	}
}

// Status validates the bookmark lookup query params
func Status() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemType := c.Query("itemType")
		rawItemID := c.Query("itemId")

		errors := make(map[string]string)

		if !isValidItemType(itemType) {
			errors["itemType"] = "Item type must be 'lesson' or 'glossary'!"
		}

		itemID, err := strconv.Atoi(rawItemID)
		if err != nil || itemID < 1 {
			errors["itemId"] = "Item id must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData := &struct {
			ItemType string `json:"itemType"`
			ItemID   *int   `json:"itemId"`
		}{ItemType: itemType, ItemID: &itemID}

		c.Locals("validatedBookmark", reqData)
		return c.Next()
	}
}
