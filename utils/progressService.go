package utils

import (
	"errors"
	"lms/database"
	"lms/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNegativeTime is returned when a completion reports negative study time
var ErrNegativeTime = errors.New("time spent cannot be negative")

// MarkLessonComplete records a lesson completion for the user. The row is
// upserted in a single statement so two concurrent completions cannot lose a
// time increment: on conflict the minutes are added to the stored value and
// completed_at is refreshed.
func MarkLessonComplete(userID, lessonID uint, timeSpentMinutes int) error {
	if timeSpentMinutes < 0 {
		return ErrNegativeTime
	}

	now := time.Now()
	progress := models.LessonProgress{
		UserID:           userID,
		LessonID:         lessonID,
		Completed:        true,
		CompletedAt:      &now,
		TimeSpentMinutes: timeSpentMinutes,
	}

	return database.Database.Db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":          true,
			"completed_at":       now,
			"time_spent_minutes": gorm.Expr("time_spent_minutes + ?", timeSpentMinutes),
			"updated_at":         now,
		}),
	}).Create(&progress).Error
}

// GetLessonProgress returns the user's progress row for a lesson, or nil if
// the lesson has never been touched.
func GetLessonProgress(userID, lessonID uint) (*models.LessonProgress, error) {
	var progress models.LessonProgress
	err := database.Database.Db.
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListLessonProgress returns every progress row for the user
func ListLessonProgress(userID uint) ([]models.LessonProgress, error) {
	progress := []models.LessonProgress{}
	err := database.Database.Db.Where("user_id = ?", userID).Find(&progress).Error
	return progress, err
}

// RecordActivity runs the post-write pipeline: the statistics snapshot is
// rebuilt from history first, then the achievement pass runs against it.
// Ordering matters; the achievement engine only ever reads the snapshot.
func RecordActivity(userID uint) ([]models.Achievement, error) {
	if _, err := RefreshUserStatistics(userID); err != nil {
		return nil, err
	}
	return EvaluateAchievements(userID)
}
