package models

import (
	"time"

	"gorm.io/gorm"
)

// UserStatistics is a derived summary, one row per user. It is a cache over
// LessonProgress and QuizAttempt history and can be rebuilt from scratch at
// any time; LongestStreak is the only field that carries state forward.
type UserStatistics struct {
	gorm.Model
	UserID                uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	TotalLessonsCompleted int       `json:"total_lessons_completed" gorm:"default:0"`
	TotalQuizzesTaken     int       `json:"total_quizzes_taken" gorm:"default:0"`
	TotalQuizzesPassed    int       `json:"total_quizzes_passed" gorm:"default:0"`
	AverageQuizScore      int       `json:"average_quiz_score" gorm:"default:0"` // Rounded percentage
	CurrentStreak         int       `json:"current_streak" gorm:"default:0"`
	LongestStreak         int       `json:"longest_streak" gorm:"default:0"`
	LastActivityDate      time.Time `json:"last_activity_date"`
}
