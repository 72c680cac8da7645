package models

import "gorm.io/gorm"

// Bookmark item types
const (
	BookmarkItemLesson   = "lesson"
	BookmarkItemGlossary = "glossary"
)

// Bookmark is a saved reference to a lesson or glossary term. Unique per
// (user, item type, item id); adding twice is a no-op.
type Bookmark struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex:idx_user_item;not null"`
	ItemType string `json:"item_type" gorm:"uniqueIndex:idx_user_item;not null"` // lesson, glossary
	ItemID   uint   `json:"item_id" gorm:"uniqueIndex:idx_user_item;not null"`
}
