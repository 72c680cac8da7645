package utils

import (
	"errors"
	"lms/database"
	"lms/models"
	"math"
	"strconv"

	"gorm.io/datatypes"
)

// ErrNoQuestions is returned when a quiz without questions is submitted
var ErrNoQuestions = errors.New("quiz has no questions to grade")

// QuizResult is the outcome of grading one submission
type QuizResult struct {
	Score          int  `json:"score"`
	CorrectAnswers int  `json:"correctAnswers"`
	TotalQuestions int  `json:"totalQuestions"`
	IsPassed       bool `json:"isPassed"`
}

// GradeQuiz scores a submission against the quiz's question set. Answers are
// keyed by question id and compared to the correct-answer token by exact
// string equality; keys that don't match any question are ignored. Passing is
// inclusive of the threshold.
func GradeQuiz(questions []models.QuizQuestion, passingScore int, answers map[string]string) (QuizResult, error) {
	if len(questions) == 0 {
		return QuizResult{}, ErrNoQuestions
	}

	correct := 0
	for _, q := range questions {
		if answers[strconv.FormatUint(uint64(q.ID), 10)] == q.CorrectAnswer {
			correct++
		}
	}

	score := int(math.Round(float64(correct) / float64(len(questions)) * 100))

	return QuizResult{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(questions),
		IsPassed:       score >= passingScore,
	}, nil
}

// SubmitQuizAttempt grades the submission and persists it as a new immutable
// attempt row, raw answers included for later review.
func SubmitQuizAttempt(userID uint, quiz *models.Quiz, answers map[string]string, timeSpentSeconds *int) (QuizResult, error) {
	db := database.Database.Db

	var questions []models.QuizQuestion
	if err := db.Where("quiz_id = ?", quiz.ID).Order("order_index asc").Find(&questions).Error; err != nil {
		return QuizResult{}, err
	}

	result, err := GradeQuiz(questions, quiz.PassingScore, answers)
	if err != nil {
		return result, err
	}

	raw := datatypes.JSONMap{}
	for questionID, answer := range answers {
		raw[questionID] = answer
	}

	attempt := models.QuizAttempt{
		UserID:           userID,
		QuizID:           quiz.ID,
		Score:            result.Score,
		TotalQuestions:   result.TotalQuestions,
		CorrectAnswers:   result.CorrectAnswers,
		TimeSpentSeconds: timeSpentSeconds,
		IsPassed:         result.IsPassed,
		Answers:          raw,
	}

	if err := db.Create(&attempt).Error; err != nil {
		return result, err
	}

	return result, nil
}

// ListQuizAttempts returns the user's attempts, most recent first. A nil
// quizID returns attempts across all quizzes.
func ListQuizAttempts(userID uint, quizID *uint) ([]models.QuizAttempt, error) {
	query := database.Database.Db.Where("user_id = ?", userID)
	if quizID != nil {
		query = query.Where("quiz_id = ?", *quizID)
	}

	attempts := []models.QuizAttempt{}
	err := query.Order("created_at desc").Find(&attempts).Error
	return attempts, err
}
