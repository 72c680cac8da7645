package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is an assessment, optionally attached to a lesson
type Quiz struct {
	gorm.Model
	LessonID     *uint  `json:"lesson_id" gorm:"index"` // nil for standalone quizzes
	Title        string `json:"title" gorm:"not null"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string `json:"description"`
	Difficulty   string `json:"difficulty" gorm:"default:'beginner'"`
	PassingScore int    `json:"passing_score" gorm:"default:70"` // Percentage, inclusive
	TimeLimit    *int   `json:"time_limit"`                      // Minutes, nil for untimed
	IsPublished  bool   `json:"is_published" gorm:"default:true"`
}

// QuizQuestion carries the correct answer token used for grading
type QuizQuestion struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	QuestionType  string         `json:"question_type" gorm:"default:'multiple_choice'"` // multiple_choice, true_false, scenario
	Question      string         `json:"question" gorm:"not null"`
	Options       datatypes.JSON `json:"options"` // For multiple choice
	CorrectAnswer string         `json:"-" gorm:"not null"`
	Explanation   string         `json:"-"`
	Points        int            `json:"points" gorm:"default:1"`
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
}
