package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt is one immutable graded submission. Retakes append new rows.
type QuizAttempt struct {
	gorm.Model
	UserID           uint              `json:"user_id" gorm:"index;not null"`
	QuizID           uint              `json:"quiz_id" gorm:"index;not null"`
	Score            int               `json:"score"` // Percentage 0-100
	TotalQuestions   int               `json:"total_questions"`
	CorrectAnswers   int               `json:"correct_answers"`
	TimeSpentSeconds *int              `json:"time_spent_seconds"`
	IsPassed         bool              `json:"is_passed" gorm:"default:false"`
	Answers          datatypes.JSONMap `json:"answers"` // Question ID -> submitted answer
}
