package progressValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// MarkComplete validates the lesson id param and the completion body
func MarkComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, err := c.ParamsInt("id")
		if err != nil || lessonID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
		}

		reqData := new(struct {
			TimeSpentMinutes *int `json:"timeSpentMinutes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate TimeSpentMinutes
		if reqData.TimeSpentMinutes == nil {
			errors["timeSpentMinutes"] = "Time spent is required!"
		} else if *reqData.TimeSpentMinutes < 0 {
			errors["timeSpentMinutes"] = "Time spent cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", uint(lessonID))
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// GetProgress validates the lesson id param
func GetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, err := c.ParamsInt("id")
		if err != nil || lessonID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
		}

		c.Locals("lessonID", uint(lessonID))
		return c.Next()
	}
}
