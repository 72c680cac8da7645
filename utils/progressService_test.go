package utils

import (
	"lms/models"
	"testing"
)

func TestMarkLessonCompleteAccumulatesTime(t *testing.T) {
	db := setupTestDB(t)

	if err := MarkLessonComplete(1, 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var first models.LessonProgress
	if err := db.Where("user_id = ? AND lesson_id = ?", 1, 1).First(&first).Error; err != nil {
		t.Fatalf("expected progress row to exist: %v", err)
	}
	if first.TimeSpentMinutes != 10 {
		t.Errorf("expected 10 minutes, got %d", first.TimeSpentMinutes)
	}
	if !first.Completed || first.CompletedAt == nil {
		t.Error("expected lesson to be marked completed with a timestamp")
	}

	// A repeat completion adds time instead of overwriting it.
	if err := MarkLessonComplete(1, 1, 15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var second models.LessonProgress
	if err := db.Where("user_id = ? AND lesson_id = ?", 1, 1).First(&second).Error; err != nil {
		t.Fatalf("expected progress row to exist: %v", err)
	}
	if second.TimeSpentMinutes != 25 {
		t.Errorf("expected 25 cumulative minutes, got %d", second.TimeSpentMinutes)
	}
	if !second.Completed {
		t.Error("expected lesson to stay completed")
	}
	if second.CompletedAt == nil || second.CompletedAt.Before(*first.CompletedAt) {
		t.Error("expected completedAt to be refreshed on repeat completion")
	}

	var count int64
	db.Model(&models.LessonProgress{}).Where("user_id = ? AND lesson_id = ?", 1, 1).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one row per (user, lesson), got %d", count)
	}
}

func TestMarkLessonCompleteRejectsNegativeTime(t *testing.T) {
	setupTestDB(t)

	if err := MarkLessonComplete(1, 1, -5); err != ErrNegativeTime {
		t.Fatalf("expected ErrNegativeTime, got %v", err)
	}
}

func TestGetLessonProgressAbsent(t *testing.T) {
	setupTestDB(t)

	progress, err := GetLessonProgress(1, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress != nil {
		t.Errorf("expected nil progress for an untouched lesson, got %+v", progress)
	}
}

func TestListLessonProgress(t *testing.T) {
	setupTestDB(t)

	if err := MarkLessonComplete(1, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := MarkLessonComplete(1, 2, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := MarkLessonComplete(2, 3, 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	progress, err := ListLessonProgress(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("expected 2 rows for user 1, got %d", len(progress))
	}
	for _, p := range progress {
		if p.UserID != 1 {
			t.Errorf("expected only user 1 rows, got user %d", p.UserID)
		}
	}
}
