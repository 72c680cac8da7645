package utils

import (
	"lms/models"
	"testing"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

func seedCompletedLesson(t *testing.T, db *gorm.DB, userID, lessonID uint, completedAt time.Time) {
	t.Helper()
	progress := models.LessonProgress{
		UserID:           userID,
		LessonID:         lessonID,
		Completed:        true,
		CompletedAt:      &completedAt,
		TimeSpentMinutes: 10,
	}
	if err := db.Create(&progress).Error; err != nil {
		t.Fatalf("failed to seed lesson progress: %v", err)
	}
}

func seedAttempt(t *testing.T, db *gorm.DB, userID uint, score int, isPassed bool, createdAt time.Time) {
	t.Helper()
	attempt := models.QuizAttempt{
		Model:          gorm.Model{CreatedAt: createdAt},
		UserID:         userID,
		QuizID:         1,
		Score:          score,
		TotalQuestions: 10,
		CorrectAnswers: score / 10,
		IsPassed:       isPassed,
	}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatalf("failed to seed quiz attempt: %v", err)
	}
}

func TestRefreshUserStatisticsCounts(t *testing.T) {
	db := setupTestDB(t)
	today := time.Now()

	seedCompletedLesson(t, db, 1, 1, today)
	seedCompletedLesson(t, db, 1, 2, today)
	seedAttempt(t, db, 1, 80, true, today)
	seedAttempt(t, db, 1, 60, false, today)

	stats, err := RefreshUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalLessonsCompleted != 2 {
		t.Errorf("expected 2 lessons completed, got %d", stats.TotalLessonsCompleted)
	}
	if stats.TotalQuizzesTaken != 2 {
		t.Errorf("expected 2 quizzes taken, got %d", stats.TotalQuizzesTaken)
	}
	if stats.TotalQuizzesPassed != 1 {
		t.Errorf("expected 1 quiz passed, got %d", stats.TotalQuizzesPassed)
	}
	if stats.AverageQuizScore != 70 {
		t.Errorf("expected average score 70, got %d", stats.AverageQuizScore)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", stats.CurrentStreak)
	}
}

func TestRefreshUserStatisticsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	today := time.Now()

	seedCompletedLesson(t, db, 1, 1, today)
	seedAttempt(t, db, 1, 85, true, today)

	first, err := RefreshUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := RefreshUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Everything but LastActivityDate must be identical between back-to-back
	// refreshes with no new history.
	if first.TotalLessonsCompleted != second.TotalLessonsCompleted ||
		first.TotalQuizzesTaken != second.TotalQuizzesTaken ||
		first.TotalQuizzesPassed != second.TotalQuizzesPassed ||
		first.AverageQuizScore != second.AverageQuizScore ||
		first.CurrentStreak != second.CurrentStreak ||
		first.LongestStreak != second.LongestStreak {
		t.Errorf("expected identical statistics, got %+v then %+v", first, second)
	}

	var count int64
	db.Model(&models.UserStatistics{}).Where("user_id = ?", 1).Count(&count)
	if count != 1 {
		t.Errorf("expected a single statistics row, got %d", count)
	}
}

func TestAverageScoreRoundsHalfUp(t *testing.T) {
	db := setupTestDB(t)
	today := time.Now()

	seedAttempt(t, db, 1, 70, true, today)
	seedAttempt(t, db, 1, 75, true, today)

	stats, err := RefreshUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.AverageQuizScore != 73 {
		t.Errorf("expected mean 72.5 to round to 73, got %d", stats.AverageQuizScore)
	}
}

func TestStreakCountsConsecutiveDays(t *testing.T) {
	db := setupTestDB(t)
	today := now.BeginningOfDay().Add(12 * time.Hour)

	seedCompletedLesson(t, db, 1, 1, today.AddDate(0, 0, -2))
	seedCompletedLesson(t, db, 1, 2, today.AddDate(0, 0, -1))
	seedAttempt(t, db, 1, 90, true, today)

	stats, err := RefreshUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.CurrentStreak != 3 {
		t.Errorf("expected 3-day streak, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("expected longest streak 3, got %d", stats.LongestStreak)
	}
}

func TestStreakSurvivesQuietToday(t *testing.T) {
	db := setupTestDB(t)
	today := now.BeginningOfDay().Add(12 * time.Hour)

	// Activity yesterday and the day before, nothing yet today: the streak is
	// not broken until a full day passes.
	seedCompletedLesson(t, db, 1, 1, today.AddDate(0, 0, -2))
	seedCompletedLesson(t, db, 1, 2, today.AddDate(0, 0, -1))

	stats, err := RefreshUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("expected 2-day streak ending yesterday, got %d", stats.CurrentStreak)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	db := setupTestDB(t)
	today := now.BeginningOfDay().Add(12 * time.Hour)

	seedCompletedLesson(t, db, 1, 1, today.AddDate(0, 0, -3))

	stats, err := RefreshUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("expected broken streak, got %d", stats.CurrentStreak)
	}
}

func TestLongestStreakNeverShrinks(t *testing.T) {
	db := setupTestDB(t)

	// A previous refresh recorded a 5-day longest streak; the history behind
	// it is gone, so the fresh current streak is 0.
	stats := models.UserStatistics{
		UserID:        1,
		LongestStreak: 5,
	}
	if err := db.Create(&stats).Error; err != nil {
		t.Fatalf("failed to seed statistics: %v", err)
	}

	refreshed, err := RefreshUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.CurrentStreak != 0 {
		t.Errorf("expected current streak 0, got %d", refreshed.CurrentStreak)
	}
	if refreshed.LongestStreak != 5 {
		t.Errorf("expected longest streak to stay at 5, got %d", refreshed.LongestStreak)
	}
}

func TestGetUserStatisticsLazilyCreates(t *testing.T) {
	db := setupTestDB(t)

	stats, err := GetUserStatistics(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.UserID != 7 {
		t.Errorf("expected stats for user 7, got user %d", stats.UserID)
	}

	var count int64
	db.Model(&models.UserStatistics{}).Where("user_id = ?", 7).Count(&count)
	if count != 1 {
		t.Errorf("expected lazily created statistics row, got %d rows", count)
	}
}
