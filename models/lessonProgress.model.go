package models

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress records lesson completion per user. At most one row exists
// per (user, lesson); TimeSpentMinutes only ever grows.
type LessonProgress struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID         uint       `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	Completed        bool       `json:"completed" gorm:"default:false"`
	CompletedAt      *time.Time `json:"completed_at"`
	TimeSpentMinutes int        `json:"time_spent_minutes" gorm:"default:0"`
}
