package controllers

import (
	"onboard/database"
	"onboard/middleware"
	"onboard/models"
	"onboard/models/plan"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// instructorForUser resolves the Instructor record belonging to the
// authenticated user
func instructorForUser(c *fiber.Ctx) (*models.Instructor, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, false
	}

	var instructor models.Instructor
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&instructor).Error; err != nil {
		return nil, false
	}
	return &instructor, true
}

// GetMyPlan returns the authenticated instructor's plan. Disabled tasks are
// hidden from the instructor view.
func GetMyPlan(c *fiber.Ctx) error {
	instructor, ok := instructorForUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No onboarding plan found for this account!", nil)
	}

	var steps []plan.OnboardingStep
	if err := database.Database.Db.
		Where("instructor_id = ? AND is_deleted = ?", instructor.ID, false).
		Order("position asc").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Where("enabled = ? AND is_deleted = ?", true, false).Order("order_index asc")
		}).
		Preload("Tasks.QuizQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Preload("Tasks.ChecklistItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Preload("Tasks.FileRequirements", "is_deleted = ?", false).
		Find(&steps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan fetched successfully!", fiber.Map{
		"instructor": instructor,
		"steps":      steps,
	})
}

// GetMyDashboard returns the instructor's progress summary and current step
func GetMyDashboard(c *fiber.Ctx) error {
	instructor, ok := instructorForUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No onboarding plan found for this account!", nil)
	}

	var currentStep plan.OnboardingStep
	hasCurrent := database.Database.Db.
		Where("instructor_id = ? AND position = ? AND is_deleted = ?", instructor.ID, instructor.CurrentStep, false).
		First(&currentStep).Error == nil

	var totalSteps int64
	var completedSteps int64
	database.Database.Db.Model(&plan.OnboardingStep{}).
		Where("instructor_id = ? AND is_deleted = ?", instructor.ID, false).
		Count(&totalSteps)
	database.Database.Db.Model(&plan.OnboardingStep{}).
		Where("instructor_id = ? AND is_deleted = ? AND status = ?", instructor.ID, false, plan.StatusCompleted).
		Count(&completedSteps)

	response := fiber.Map{
		"instructor":       instructor,
		"overall_progress": instructor.OverallProgress,
		"total_steps":      totalSteps,
		"completed_steps":  completedSteps,
	}
	if hasCurrent {
		response["current_step"] = currentStep
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", response)
}
