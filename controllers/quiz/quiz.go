package quizController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// questionView hides the correct answer and explanation from quiz payloads
type questionView struct {
	ID           uint           `json:"id"`
	QuestionType string         `json:"question_type"`
	Question     string         `json:"question"`
	Options      datatypes.JSON `json:"options"`
	Points       int            `json:"points"`
	OrderIndex   int            `json:"order_index"`
}

// GetAllQuizzes lists published quizzes
func GetAllQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	if err := database.Database.Db.Where("is_published = ?", true).
		Order("created_at desc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// GetQuizBySlug returns a quiz with its question list (answers stripped)
func GetQuizBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var quiz models.Quiz
	if err := database.Database.Db.Where("slug = ? AND is_published = ?", slug, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.QuizQuestion
	if err := database.Database.Db.Where("quiz_id = ?", quiz.ID).
		Order("order_index asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}

	views := make([]questionView, len(questions))
	for i, q := range questions {
		views[i] = questionView{
			ID:           q.ID,
			QuestionType: q.QuestionType,
			Question:     q.Question,
			Options:      q.Options,
			Points:       q.Points,
			OrderIndex:   q.OrderIndex,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": views,
	})
}

// SubmitQuizAttempt grades a submission, stores the attempt, and runs the
// statistics / achievement pipeline before responding
func SubmitQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(uint)
	reqData := c.Locals("validatedAttempt").(*struct {
		Answers          map[string]string `json:"answers"`
		TimeSpentSeconds *int              `json:"timeSpentSeconds"`
	})

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_published = ?", quizID, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	result, err := utils.SubmitQuizAttempt(userID, &quiz, reqData.Answers, reqData.TimeSpentSeconds)
	if err != nil {
		if err == utils.ErrNoQuestions {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz has no questions to grade!", nil)
		}
		log.Printf("Error saving quiz attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit attempt!", nil)
	}

	// The attempt row is already durable; a pipeline failure is reported but
	// does not undo the write.
	if _, err := utils.RecordActivity(userID); err != nil {
		log.Printf("Error refreshing statistics after quiz attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Attempt saved, but statistics update failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt submitted!", result)
}

// ListQuizAttempts returns the user's attempts, optionally scoped to one quiz
func ListQuizAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var quizID *uint
	if filter, ok := c.Locals("attemptsQuizID").(uint); ok {
		quizID = &filter
	}

	attempts, err := utils.ListQuizAttempts(userID, quizID)
	if err != nil {
		log.Printf("Error listing quiz attempts: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}
