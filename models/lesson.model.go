package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonCategory groups lessons into a curriculum section
type LessonCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"` // Icon name for UI
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
}

// Lesson is a single piece of learning content (markdown body)
type Lesson struct {
	gorm.Model
	CategoryID       uint           `json:"category_id" gorm:"index;not null"`
	Title            string         `json:"title" gorm:"not null"`
	Slug             string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description      string         `json:"description"`
	Content          string         `json:"content"`
	Difficulty       string         `json:"difficulty" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	EstimatedMinutes int            `json:"estimated_minutes" gorm:"default:0"`
	OrderIndex       int            `json:"order_index" gorm:"default:0"`
	IsPublished      bool           `json:"is_published" gorm:"default:true"`
	Tags             datatypes.JSON `json:"tags"`
}
