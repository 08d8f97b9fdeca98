package controllers

import (
	"errors"
	"log"

	"onboard/config"
	"onboard/database"
	"onboard/engine"
	"onboard/middleware"
	"onboard/models"
	"onboard/models/plan"
	"onboard/utils"

	"github.com/gofiber/fiber/v2"
)

// loadOwnTask fetches a task and verifies it belongs to the authenticated
// instructor's plan. Disabled tasks are not actionable.
func loadOwnTask(c *fiber.Ctx) (*plan.Task, *models.Instructor, error) {
	instructor, ok := instructorForUser(c)
	if !ok {
		return nil, nil, errors.New("no instructor for user")
	}

	taskID := c.Locals("taskID").(int)

	var task plan.Task
	if err := database.Database.Db.Where("id = ? AND enabled = ? AND is_deleted = ?", taskID, true, false).First(&task).Error; err != nil {
		return nil, nil, err
	}

	var step plan.OnboardingStep
	if err := database.Database.Db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", task.StepID, instructor.ID, false).First(&step).Error; err != nil {
		return nil, nil, err
	}

	return &task, instructor, nil
}

// notifyIfStepCompleted fires the PM webhook and the completion email when a
// task completion finished its step or the whole plan
func notifyIfStepCompleted(task *plan.Task, instructor *models.Instructor) {
	var step plan.OnboardingStep
	if err := database.Database.Db.First(&step, task.StepID).Error; err != nil {
		return
	}
	if step.Status != plan.StatusCompleted {
		return
	}

	var refreshed models.Instructor
	if err := database.Database.Db.First(&refreshed, instructor.ID).Error; err != nil {
		refreshed = *instructor
	}

	go utils.NotifyStepCompleted(refreshed.Name, refreshed.Email, step.Title, refreshed.OverallProgress)

	if refreshed.OverallProgress >= 100 {
		go func(email, name string) {
			if err := utils.SendPlanCompletedEmail(email, name); err != nil {
				log.Printf("Failed to send completion email to %s: %v", email, err)
			}
		}(refreshed.Email, refreshed.Name)
	}
}

// SubmitQuizAnswers evaluates a quiz submission for a quiz-bearing task
func SubmitQuizAnswers(c *fiber.Ctx) error {
	task, instructor, err := loadOwnTask(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizSubmission").(*struct {
		Answers []struct {
			QuestionID    uint `json:"question_id"`
			SelectedIndex int  `json:"selected_index"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	answers := make([]engine.QuizAnswerInput, len(reqData.Answers))
	for i, a := range reqData.Answers {
		answers[i] = engine.QuizAnswerInput{
			QuestionID:    a.QuestionID,
			SelectedIndex: a.SelectedIndex,
		}
	}

	result, err := engine.SubmitQuiz(database.Database.Db, task, answers)
	if err != nil {
		if errors.Is(err, engine.ErrWrongTaskKind) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Task does not have a quiz!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answers!", nil)
	}

	if result.TaskCompleted {
		notifyIfStepCompleted(task, instructor)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers submitted!", result)
}

// UploadTaskFile stores one file against a FILE_UPLOAD task
func UploadTaskFile(c *fiber.Ctx) error {
	task, instructor, err := loadOwnTask(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A file is required!", nil)
	}

	storedPath, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	result, err := engine.RecordFileUpload(database.Database.Db, task, fileHeader.Filename, storedPath, fileHeader.Size)
	if err != nil {
		if errors.Is(err, engine.ErrWrongTaskKind) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Task does not accept file uploads!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record upload!", nil)
	}

	if result.TaskCompleted {
		notifyIfStepCompleted(task, instructor)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded!", fiber.Map{
		"result":   result,
		"file_url": utils.GetFileURL(storedPath),
	})
}

// ToggleChecklistItem records one checklist item check/uncheck
func ToggleChecklistItem(c *fiber.Ctx) error {
	task, _, err := loadOwnTask(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	itemID := c.Locals("checklistItemID").(int)
	checked := c.Locals("checklistChecked").(bool)

	if err := engine.SetChecklistItem(database.Database.Db, task, uint(itemID), checked); err != nil {
		if errors.Is(err, engine.ErrWrongTaskKind) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Task is not a checklist!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Checklist item not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checklist item updated!", nil)
}

// CompleteTask accepts a completion status write for document and checklist tasks
func CompleteTask(c *fiber.Ctx) error {
	task, instructor, err := loadOwnTask(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	if err := engine.MarkTaskComplete(database.Database.Db, task); err != nil {
		if errors.Is(err, engine.ErrWrongTaskKind) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This task completes through its quiz or file uploads!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete task!", nil)
	}

	notifyIfStepCompleted(task, instructor)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task completed!", fiber.Map{
		"task_id": task.ID,
		"status":  task.Status,
	})
}
