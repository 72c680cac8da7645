package utils

import (
	"database/sql"
	"errors"
	"lms/database"
	"lms/models"
	"math"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

const dayLayout = "2006-01-02"

// RefreshUserStatistics rebuilds the user's statistics row from the raw
// LessonProgress and QuizAttempt history. Everything except LongestStreak is
// recomputed from scratch, so the row stays consistent no matter how stale it
// was; LongestStreak only ratchets upward.
func RefreshUserStatistics(userID uint) (*models.UserStatistics, error) {
	db := database.Database.Db

	var lessonsCompleted int64
	if err := db.Model(&models.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&lessonsCompleted).Error; err != nil {
		return nil, err
	}

	var quizzesTaken int64
	if err := db.Model(&models.QuizAttempt{}).
		Where("user_id = ?", userID).
		Count(&quizzesTaken).Error; err != nil {
		return nil, err
	}

	var quizzesPassed int64
	if err := db.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND is_passed = ?", userID, true).
		Count(&quizzesPassed).Error; err != nil {
		return nil, err
	}

	averageScore := 0
	if quizzesTaken > 0 {
		var avg sql.NullFloat64
		row := db.Model(&models.QuizAttempt{}).
			Where("user_id = ?", userID).
			Select("AVG(score)").Row()
		if err := row.Scan(&avg); err != nil {
			return nil, err
		}
		if avg.Valid {
			averageScore = int(math.Round(avg.Float64))
		}
	}

	activeDays, err := activityDays(db, userID)
	if err != nil {
		return nil, err
	}
	currentStreak := calculateCurrentStreak(activeDays)

	var stats models.UserStatistics
	err = db.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = models.UserStatistics{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	stats.TotalLessonsCompleted = int(lessonsCompleted)
	stats.TotalQuizzesTaken = int(quizzesTaken)
	stats.TotalQuizzesPassed = int(quizzesPassed)
	stats.AverageQuizScore = averageScore
	stats.CurrentStreak = currentStreak
	if currentStreak > stats.LongestStreak {
		stats.LongestStreak = currentStreak
	}
	stats.LastActivityDate = time.Now()

	if err := db.Save(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetUserStatistics returns the cached statistics row, computing it lazily on
// first access. Callers needing guaranteed freshness call
// RefreshUserStatistics themselves.
func GetUserStatistics(userID uint) (*models.UserStatistics, error) {
	var stats models.UserStatistics
	err := database.Database.Db.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return RefreshUserStatistics(userID)
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// activityDays collects the set of calendar days with at least one lesson
// completion or quiz attempt, keyed by local date.
func activityDays(db *gorm.DB, userID uint) (map[string]bool, error) {
	days := make(map[string]bool)

	var progress []models.LessonProgress
	if err := db.Where("user_id = ? AND completed_at IS NOT NULL", userID).Find(&progress).Error; err != nil {
		return nil, err
	}
	for _, p := range progress {
		days[p.CompletedAt.Local().Format(dayLayout)] = true
	}

	var attempts []models.QuizAttempt
	if err := db.Where("user_id = ?", userID).Find(&attempts).Error; err != nil {
		return nil, err
	}
	for _, a := range attempts {
		days[a.CreatedAt.Local().Format(dayLayout)] = true
	}

	return days, nil
}

// calculateCurrentStreak counts consecutive active days ending today. A quiet
// today doesn't break the streak yet; it falls back to a streak ending
// yesterday, and only a full missed day resets to zero.
func calculateCurrentStreak(activeDays map[string]bool) int {
	day := now.BeginningOfDay()
	if !activeDays[day.Format(dayLayout)] {
		day = day.AddDate(0, 0, -1)
		if !activeDays[day.Format(dayLayout)] {
			return 0
		}
	}

	streak := 0
	for activeDays[day.Format(dayLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
