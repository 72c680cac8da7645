package bookmarkController

import (
	"lms/middleware"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AddBookmark saves a lesson or glossary reference for the user (idempotent)
func AddBookmark(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedBookmark").(*struct {
		ItemType string `json:"itemType"`
		ItemID   *int   `json:"itemId"`
	})

	bookmark, err := utils.AddBookmark(userID, reqData.ItemType, uint(*reqData.ItemID))
	if err != nil {
		if err == utils.ErrUnknownItemType {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown item type!", nil)
		}
		log.Printf("Error adding bookmark: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add bookmark!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookmark added!", bookmark)
}

// RemoveBookmark deletes the reference if present (idempotent)
func RemoveBookmark(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedBookmark").(*struct {
		ItemType string `json:"itemType"`
		ItemID   *int   `json:"itemId"`
	})

	if err := utils.RemoveBookmark(userID, reqData.ItemType, uint(*reqData.ItemID)); err != nil {
		if err == utils.ErrUnknownItemType {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown item type!", nil)
		}
		log.Printf("Error removing bookmark: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove bookmark!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookmark removed!", fiber.Map{
		"success": true,
	})
}

// ListBookmarks returns the user's bookmarks resolved against content
func ListBookmarks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	list, err := utils.ListBookmarks(userID)
	if err != nil {
		log.Printf("Error listing bookmarks: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookmarks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookmarks fetched successfully!", list)
}

// GetBookmarkStatus reports whether an item is bookmarked
func GetBookmarkStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedBookmark").(*struct {
		ItemType string `json:"itemType"`
		ItemID   *int   `json:"itemId"`
	})

	bookmarked, err := utils.IsBookmarked(userID, reqData.ItemType, uint(*reqData.ItemID))
	if err != nil {
		log.Printf("Error checking bookmark: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check bookmark!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookmark status fetched!", fiber.Map{
		"is_bookmarked": bookmarked,
	})
}
