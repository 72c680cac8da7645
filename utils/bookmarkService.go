package utils

import (
	"errors"
	"lms/database"
	"lms/models"

	"gorm.io/gorm"
)

// ErrUnknownItemType is returned for bookmark types other than lesson/glossary
var ErrUnknownItemType = errors.New("unknown bookmark item type")

// BookmarkList is the resolved listing, split by item type
type BookmarkList struct {
	Lessons  []models.Lesson       `json:"lessons"`
	Glossary []models.GlossaryTerm `json:"glossary"`
}

// AddBookmark saves an item for the user. If the triple already exists the
// existing row is returned unchanged; the unique index backstops the race
// between two concurrent adds.
func AddBookmark(userID uint, itemType string, itemID uint) (*models.Bookmark, error) {
	if itemType != models.BookmarkItemLesson && itemType != models.BookmarkItemGlossary {
		return nil, ErrUnknownItemType
	}

	db := database.Database.Db

	var existing models.Bookmark
	err := db.Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bookmark := models.Bookmark{
		UserID:   userID,
		ItemType: itemType,
		ItemID:   itemID,
	}
	if err := db.Create(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// RemoveBookmark deletes the triple if present; removing a missing bookmark
// is a no-op. The delete is a hard delete: a soft-deleted row would keep its
// slot in the unique index and block re-adding the same item later.
func RemoveBookmark(userID uint, itemType string, itemID uint) error {
	if itemType != models.BookmarkItemLesson && itemType != models.BookmarkItemGlossary {
		return ErrUnknownItemType
	}
	return database.Database.Db.Unscoped().
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Delete(&models.Bookmark{}).Error
}

// ListBookmarks resolves the user's bookmarks against the content tables.
// Items deleted from content since they were saved are silently omitted.
func ListBookmarks(userID uint) (BookmarkList, error) {
	list := BookmarkList{
		Lessons:  []models.Lesson{},
		Glossary: []models.GlossaryTerm{},
	}

	db := database.Database.Db

	var bookmarks []models.Bookmark
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&bookmarks).Error; err != nil {
		return list, err
	}

	var lessonIDs, glossaryIDs []uint
	for _, b := range bookmarks {
		switch b.ItemType {
		case models.BookmarkItemLesson:
			lessonIDs = append(lessonIDs, b.ItemID)
		case models.BookmarkItemGlossary:
			glossaryIDs = append(glossaryIDs, b.ItemID)
		}
	}

	if len(lessonIDs) > 0 {
		if err := db.Where("id IN ?", lessonIDs).Find(&list.Lessons).Error; err != nil {
			return list, err
		}
	}
	if len(glossaryIDs) > 0 {
		if err := db.Where("id IN ?", glossaryIDs).Find(&list.Glossary).Error; err != nil {
			return list, err
		}
	}

	return list, nil
}

// IsBookmarked reports whether the triple exists
func IsBookmarked(userID uint, itemType string, itemID uint) (bool, error) {
	var count int64
	err := database.Database.Db.Model(&models.Bookmark{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Count(&count).Error
	return count > 0, err
}
