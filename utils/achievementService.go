package utils

import (
	"lms/database"
	"lms/models"
	"time"
)

// UnlockedAchievement is an achievement definition joined with its unlock time
type UnlockedAchievement struct {
	models.Achievement
	UnlockedAt time.Time `json:"unlocked_at"`
}

// statByCategory maps each achievement category to the statistic its
// requirement is compared against. New categories are added here, not in the
// evaluation loop.
var statByCategory = map[string]func(models.UserStatistics) int{
	models.AchievementCategoryLessons:    func(s models.UserStatistics) int { return s.TotalLessonsCompleted },
	models.AchievementCategoryQuizzes:    func(s models.UserStatistics) int { return s.TotalQuizzesPassed },
	models.AchievementCategoryEngagement: func(s models.UserStatistics) int { return s.CurrentStreak },
	models.AchievementCategoryMastery:    func(s models.UserStatistics) int { return s.AverageQuizScore },
}

// EvaluateAchievements checks every not-yet-unlocked achievement against the
// current statistics snapshot and persists any that now qualify. Unlocks are
// permanent: already-unlocked achievements are skipped, never re-inserted,
// and never revoked when a statistic later regresses.
func EvaluateAchievements(userID uint) ([]models.Achievement, error) {
	stats, err := GetUserStatistics(userID)
	if err != nil {
		return nil, err
	}

	db := database.Database.Db

	var definitions []models.Achievement
	if err := db.Find(&definitions).Error; err != nil {
		return nil, err
	}

	var unlockedRows []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Find(&unlockedRows).Error; err != nil {
		return nil, err
	}
	alreadyUnlocked := make(map[uint]bool, len(unlockedRows))
	for _, row := range unlockedRows {
		alreadyUnlocked[row.AchievementID] = true
	}

	newlyUnlocked := []models.Achievement{}
	for _, achievement := range definitions {
		if alreadyUnlocked[achievement.ID] {
			continue
		}

		statOf, known := statByCategory[achievement.Category]
		if !known {
			continue
		}
		if statOf(*stats) < achievement.Requirement {
			continue
		}

		unlock := models.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
			UnlockedAt:    time.Now(),
		}
		if err := db.Create(&unlock).Error; err != nil {
			return newlyUnlocked, err
		}
		newlyUnlocked = append(newlyUnlocked, achievement)
	}

	return newlyUnlocked, nil
}

// GetUserAchievements returns the user's unlocked achievements joined with
// their definitions, most recent unlock first.
func GetUserAchievements(userID uint) ([]UnlockedAchievement, error) {
	db := database.Database.Db

	var unlockedRows []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Order("unlocked_at desc").Find(&unlockedRows).Error; err != nil {
		return nil, err
	}

	result := []UnlockedAchievement{}
	if len(unlockedRows) == 0 {
		return result, nil
	}

	ids := make([]uint, len(unlockedRows))
	for i, row := range unlockedRows {
		ids[i] = row.AchievementID
	}

	var definitions []models.Achievement
	if err := db.Where("id IN ?", ids).Find(&definitions).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Achievement, len(definitions))
	for _, def := range definitions {
		byID[def.ID] = def
	}

	for _, row := range unlockedRows {
		def, ok := byID[row.AchievementID]
		if !ok {
			continue
		}
		result = append(result, UnlockedAchievement{
			Achievement: def,
			UnlockedAt:  row.UnlockedAt,
		})
	}

	return result, nil
}
