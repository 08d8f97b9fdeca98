package controllers

import (
	"onboard/database"
	"onboard/middleware"
	"onboard/models/catalog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListStepTemplates returns the step template catalog for PMs building a
// configuration
func ListStepTemplates(c *fiber.Ctx) error {
	var templates []catalog.StepTemplate
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("order_index asc, id asc").
		Find(&templates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch step templates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Step templates fetched successfully!", fiber.Map{
		"templates": templates,
		"total":     len(templates),
	})
}

// ListContentModules returns the content module catalog with embedded quiz
// questions, checklist items and file requirements
func ListContentModules(c *fiber.Ctx) error {
	var modules []catalog.ContentModule
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("id asc").
		Preload("QuizQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Preload("ChecklistItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Preload("FileRequirements", "is_deleted = ?", false).
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content modules fetched successfully!", fiber.Map{
		"modules": modules,
		"total":   len(modules),
	})
}
