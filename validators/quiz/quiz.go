package quizValidator

import (
	"lms/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SubmitAttempt validates the quiz id param and the submission body
func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := c.ParamsInt("id")
		if err != nil || quizID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		reqData := new(struct {
			Answers          map[string]string `json:"answers"`
			TimeSpentSeconds *int              `json:"timeSpentSeconds"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Answers
		if reqData.Answers == nil {
			errors["answers"] = "Answers map is required!"
		}

		// Validate TimeSpentSeconds
		if reqData.TimeSpentSeconds != nil && *reqData.TimeSpentSeconds < 0 {
			errors["timeSpentSeconds"] = "Time spent cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", uint(quizID))
		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}

// ListAttempts validates the optional quizId query filter
func ListAttempts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rawQuizID := c.Query("quizId")
		if rawQuizID == "" {
			return c.Next()
		}

		quizID, err := strconv.Atoi(rawQuizID)
		if err != nil || quizID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		c.Locals("attemptsQuizID", uint(quizID))
		return c.Next()
	}
}
