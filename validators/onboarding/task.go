package onboardingValidator

import (
	"strconv"
	"strings"

	"onboard/middleware"

	"github.com/gofiber/fiber/v2"
)

// TaskID validates the :id path parameter for task operations
func TaskID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskIDStr := strings.TrimSpace(c.Params("id"))
		if taskIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Task ID is required!", nil)
		}

		taskID, err := strconv.Atoi(taskIDStr)
		if err != nil || taskID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Task ID!", nil)
		}

		c.Locals("taskID", taskID)
		return c.Next()
	}
}

// QuizSubmission validates a quiz answer submission
func QuizSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []struct {
				QuestionID    uint `json:"question_id"`
				SelectedIndex int  `json:"selected_index"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Answers) == 0 {
			errors["answers"] = "Please answer at least one question!"
		}

		for i, answer := range reqData.Answers {
			key := "answers[" + strconv.Itoa(i) + "]"
			if answer.QuestionID == 0 {
				errors[key+".question_id"] = "Question ID is required!"
			}
			if answer.SelectedIndex < 0 {
				errors[key+".selected_index"] = "Selected index must not be negative!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizSubmission", reqData)
		return c.Next()
	}
}

// ChecklistItem validates the checklist item toggle request
func ChecklistItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemIDStr := strings.TrimSpace(c.Params("itemId"))
		itemID, err := strconv.Atoi(itemIDStr)
		if err != nil || itemID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid checklist item ID!", nil)
		}

		reqData := new(struct {
			Checked *bool `json:"checked"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Checked == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"checked": "Checked flag is required!"})
		}

		c.Locals("checklistItemID", itemID)
		c.Locals("checklistChecked", *reqData.Checked)
		return c.Next()
	}
}
