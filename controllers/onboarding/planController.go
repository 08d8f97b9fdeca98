package controllers

import (
	"errors"

	"onboard/database"
	"onboard/engine"
	"onboard/middleware"
	"onboard/models"
	"onboard/models/plan"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// planConfigRequest mirrors the payload shape stashed by the PlanConfig validator
type planConfigRequest = struct {
	Configs []struct {
		StepTemplateID uint   `json:"step_template_id"`
		ModuleIDs      []uint `json:"module_ids"`
	} `json:"configs"`
}

func toStepConfigs(reqData *planConfigRequest) []engine.StepConfig {
	configs := make([]engine.StepConfig, len(reqData.Configs))
	for i, cfg := range reqData.Configs {
		configs[i] = engine.StepConfig{
			StepTemplateID: cfg.StepTemplateID,
			ModuleIDs:      cfg.ModuleIDs,
		}
	}
	return configs
}

// engineErrorResponse maps engine errors onto HTTP responses
func engineErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, engine.ErrStepTemplateNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Step template not found!", nil)
	case errors.Is(err, engine.ErrInstructorNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	case errors.Is(err, engine.ErrPlanExists):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Instructor already has a plan. Use reconcile instead!", nil)
	case errors.Is(err, engine.ErrInvalidConfig):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan configuration!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Plan operation failed!", nil)
	}
}

func loadInstructor(c *fiber.Ctx) (*models.Instructor, error) {
	instructorID := c.Locals("instructorID").(int)

	var instructor models.Instructor
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", instructorID, false).First(&instructor).Error; err != nil {
		return nil, err
	}
	return &instructor, nil
}

// ApplyPlanConfig materializes a brand-new plan from an ordered configuration
func ApplyPlanConfig(c *fiber.Ctx) error {
	instructor, err := loadInstructor(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	reqData, ok := c.Locals("validatedPlanConfig").(*planConfigRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	report, err := engine.MaterializePlan(database.Database.Db, instructor, toStepConfigs(reqData))
	if err != nil {
		return engineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan materialized successfully!", report)
}

// ReconcilePlanConfig applies a changed configuration to an existing plan,
// preserving completion state for surviving steps and tasks
func ReconcilePlanConfig(c *fiber.Ctx) error {
	instructor, err := loadInstructor(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	reqData, ok := c.Locals("validatedPlanConfig").(*planConfigRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	report, err := engine.ReconcilePlan(database.Database.Db, instructor, toStepConfigs(reqData))
	if err != nil {
		return engineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan reconciled successfully!", report)
}

// GetInstructorPlan returns an instructor's full plan for PM review, disabled
// tasks included
func GetInstructorPlan(c *fiber.Ctx) error {
	instructor, err := loadInstructor(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	var steps []plan.OnboardingStep
	if err := database.Database.Db.
		Where("instructor_id = ? AND is_deleted = ?", instructor.ID, false).
		Order("position asc").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Find(&steps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan fetched successfully!", fiber.Map{
		"instructor": instructor,
		"steps":      steps,
	})
}
