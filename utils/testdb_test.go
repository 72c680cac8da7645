package utils

import (
	"fmt"
	"lms/database"
	"lms/models"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global database handle at a fresh in-memory sqlite
// database for the duration of one test. Tests share the global handle, so
// none of them may run in parallel.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.LessonCategory{},
		&models.Lesson{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.GlossaryTerm{},
		&models.LessonProgress{},
		&models.QuizAttempt{},
		&models.Bookmark{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.UserStatistics{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestLesson(t *testing.T, db *gorm.DB, slug string) models.Lesson {
	t.Helper()
	lesson := models.Lesson{
		CategoryID:  1,
		Title:       "Lesson " + slug,
		Slug:        slug,
		IsPublished: true,
	}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("failed to create test lesson: %v", err)
	}
	return lesson
}

func createTestQuiz(t *testing.T, db *gorm.DB, slug string, passingScore int, correctAnswers []string) (models.Quiz, []models.QuizQuestion) {
	t.Helper()
	quiz := models.Quiz{
		Title:        "Quiz " + slug,
		Slug:         slug,
		PassingScore: passingScore,
		IsPublished:  true,
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to create test quiz: %v", err)
	}

	questions := make([]models.QuizQuestion, len(correctAnswers))
	for i, answer := range correctAnswers {
		questions[i] = models.QuizQuestion{
			QuizID:        quiz.ID,
			Question:      fmt.Sprintf("Question %d", i+1),
			CorrectAnswer: answer,
			OrderIndex:    i,
		}
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("failed to create test question: %v", err)
		}
	}

	return quiz, questions
}
