package database

import (
	"lms/models"
	"log"

	"gorm.io/gorm"
)

// defaultAchievements is the built-in badge catalogue. Requirements are counts
// for lessons/quizzes, consecutive days for engagement, and an average score
// percentage for mastery.
var defaultAchievements = []models.Achievement{
	{Name: "First Steps", Description: "Complete your first lesson", Icon: "🎯", Category: models.AchievementCategoryLessons, Requirement: 1},
	{Name: "Getting Started", Description: "Complete 3 lessons", Icon: "📚", Category: models.AchievementCategoryLessons, Requirement: 3},
	{Name: "Knowledge Seeker", Description: "Complete 5 lessons", Icon: "🔍", Category: models.AchievementCategoryLessons, Requirement: 5},
	{Name: "Dedicated Learner", Description: "Complete 10 lessons", Icon: "📖", Category: models.AchievementCategoryLessons, Requirement: 10},
	{Name: "Master Student", Description: "Complete 15 lessons", Icon: "🎓", Category: models.AchievementCategoryLessons, Requirement: 15},
	{Name: "Strategy Expert", Description: "Complete all 20+ lessons", Icon: "👑", Category: models.AchievementCategoryLessons, Requirement: 20},

	{Name: "Quiz Rookie", Description: "Pass your first quiz", Icon: "✅", Category: models.AchievementCategoryQuizzes, Requirement: 1},
	{Name: "Quiz Enthusiast", Description: "Pass 3 quizzes", Icon: "📝", Category: models.AchievementCategoryQuizzes, Requirement: 3},
	{Name: "Quiz Master", Description: "Pass 5 quizzes", Icon: "🏅", Category: models.AchievementCategoryQuizzes, Requirement: 5},

	{Name: "Perfect Score", Description: "Achieve 100% on any quiz", Icon: "💯", Category: models.AchievementCategoryMastery, Requirement: 100},
	{Name: "High Achiever", Description: "Maintain 90%+ average quiz score", Icon: "⭐", Category: models.AchievementCategoryMastery, Requirement: 90},
	{Name: "Consistent Performer", Description: "Maintain 80%+ average quiz score", Icon: "🌟", Category: models.AchievementCategoryMastery, Requirement: 80},

	{Name: "Daily Dedication", Description: "Maintain a 3-day learning streak", Icon: "🔥", Category: models.AchievementCategoryEngagement, Requirement: 3},
	{Name: "Week Warrior", Description: "Maintain a 7-day learning streak", Icon: "💪", Category: models.AchievementCategoryEngagement, Requirement: 7},
	{Name: "Unstoppable", Description: "Maintain a 30-day learning streak", Icon: "🚀", Category: models.AchievementCategoryEngagement, Requirement: 30},
}

// SeedAchievements inserts the default achievement definitions on first boot.
// An already-populated table is left untouched.
func SeedAchievements(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Achievement{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding achievement definitions...")
	rows := make([]models.Achievement, len(defaultAchievements))
	copy(rows, defaultAchievements)
	if err := db.Create(&rows).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d achievements.", len(defaultAchievements))
	return nil
}
