package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement categories. Each category is checked against a different
// statistic (see utils.EvaluateAchievements).
const (
	AchievementCategoryLessons    = "lessons"
	AchievementCategoryQuizzes    = "quizzes"
	AchievementCategoryEngagement = "engagement"
	AchievementCategoryMastery    = "mastery"
)

// Achievement is an externally seeded badge definition
type Achievement struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category" gorm:"not null"`
	Requirement int    `json:"requirement" gorm:"not null"`
}

// UserAchievement is a permanent unlock record. Never updated or revoked.
type UserAchievement struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"uniqueIndex:idx_user_achievement;not null"`
	AchievementID uint      `json:"achievement_id" gorm:"uniqueIndex:idx_user_achievement;not null"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
