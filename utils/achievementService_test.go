package utils

import (
	"lms/database"
	"lms/models"
	"strconv"
	"testing"
	"time"

	"gorm.io/gorm"
)

func seedAchievementDefs(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := database.SeedAchievements(db); err != nil {
		t.Fatalf("failed to seed achievements: %v", err)
	}
}

func achievementByName(t *testing.T, db *gorm.DB, name string) models.Achievement {
	t.Helper()
	var achievement models.Achievement
	if err := db.Where("name = ?", name).First(&achievement).Error; err != nil {
		t.Fatalf("achievement %q not found: %v", name, err)
	}
	return achievement
}

func TestEvaluateUnlocksAtThreshold(t *testing.T) {
	db := setupTestDB(t)
	seedAchievementDefs(t, db)

	if err := MarkLessonComplete(1, 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unlocked, err := RecordActivity(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, a := range unlocked {
		if a.Name == "First Steps" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'First Steps' to unlock after first lesson, got %+v", unlocked)
	}

	var count int64
	db.Model(&models.UserAchievement{}).Where("user_id = ?", 1).Count(&count)
	if count != int64(len(unlocked)) {
		t.Errorf("expected %d unlock rows, got %d", len(unlocked), count)
	}
}

func TestEvaluateDoesNotDoubleUnlock(t *testing.T) {
	db := setupTestDB(t)
	seedAchievementDefs(t, db)

	if err := MarkLessonComplete(1, 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := RecordActivity(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected at least one unlock on first evaluation")
	}

	second, err := RecordActivity(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("expected no new unlocks on re-evaluation, got %+v", second)
	}

	firstSteps := achievementByName(t, db, "First Steps")
	var count int64
	db.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", 1, firstSteps.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one unlock row, got %d", count)
	}
}

func TestUnlocksAreNeverRevoked(t *testing.T) {
	db := setupTestDB(t)
	seedAchievementDefs(t, db)

	if err := MarkLessonComplete(1, 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := RecordActivity(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The qualifying history disappears and statistics regress to zero.
	db.Unscoped().Where("user_id = ?", 1).Delete(&models.LessonProgress{})
	if _, err := RecordActivity(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := GetUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalLessonsCompleted != 0 {
		t.Fatalf("expected regressed statistics, got %d lessons", stats.TotalLessonsCompleted)
	}

	achievements, err := GetUserAchievements(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, a := range achievements {
		if a.Name == "First Steps" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'First Steps' to remain unlocked after the statistic regressed")
	}
}

func TestGetUserAchievementsOrderedByUnlock(t *testing.T) {
	db := setupTestDB(t)
	seedAchievementDefs(t, db)

	firstSteps := achievementByName(t, db, "First Steps")
	quizRookie := achievementByName(t, db, "Quiz Rookie")

	older := models.UserAchievement{UserID: 1, AchievementID: firstSteps.ID, UnlockedAt: time.Now().Add(-time.Hour)}
	newer := models.UserAchievement{UserID: 1, AchievementID: quizRookie.ID, UnlockedAt: time.Now()}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("failed to seed unlock: %v", err)
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("failed to seed unlock: %v", err)
	}

	achievements, err := GetUserAchievements(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(achievements) != 2 {
		t.Fatalf("expected 2 achievements, got %d", len(achievements))
	}
	if achievements[0].Name != "Quiz Rookie" {
		t.Errorf("expected most recent unlock first, got %q", achievements[0].Name)
	}
}

func TestEndToEndProgressUnlocksAchievements(t *testing.T) {
	db := setupTestDB(t)
	seedAchievementDefs(t, db)

	// Fresh user completes 3 lessons (10 minutes each) and passes 1 quiz at 80%.
	for lessonID := uint(1); lessonID <= 3; lessonID++ {
		if err := MarkLessonComplete(1, lessonID, 10); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := RecordActivity(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	quiz, questions := createTestQuiz(t, db, "strategy-basics", 70, []string{"A", "B", "C", "D", "A"})
	answers := map[string]string{}
	for i, q := range questions {
		if i == 4 {
			answers[strconv.FormatUint(uint64(q.ID), 10)] = "X"
			continue
		}
		answers[strconv.FormatUint(uint64(q.ID), 10)] = q.CorrectAnswer
	}

	result, err := SubmitQuizAttempt(1, &quiz, answers, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 80 || !result.IsPassed {
		t.Fatalf("expected passing score 80, got score=%d passed=%v", result.Score, result.IsPassed)
	}
	if _, err := RecordActivity(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := GetUserStatistics(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalLessonsCompleted != 3 {
		t.Errorf("expected 3 lessons completed, got %d", stats.TotalLessonsCompleted)
	}
	if stats.TotalQuizzesPassed != 1 {
		t.Errorf("expected 1 quiz passed, got %d", stats.TotalQuizzesPassed)
	}
	if stats.AverageQuizScore != 80 {
		t.Errorf("expected average score 80, got %d", stats.AverageQuizScore)
	}

	achievements, err := GetUserAchievements(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		names[a.Name] = true
	}
	if !names["First Steps"] || !names["Getting Started"] {
		t.Errorf("expected lesson achievements unlocked, got %v", names)
	}
	if !names["Quiz Rookie"] {
		t.Errorf("expected 'Quiz Rookie' unlocked, got %v", names)
	}
	if !names["Consistent Performer"] {
		t.Errorf("expected mastery achievement at 80%% average, got %v", names)
	}
}
