package controllers

import (
	"log"
	"time"

	"onboard/database"
	"onboard/engine"
	"onboard/middleware"
	"onboard/models"
	"onboard/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateInstructor registers a new instructor for onboarding, optionally
// materializing the default plan right away
func CreateInstructor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstructor").(*struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Classification  string `json:"classification"`
		StartDate       string `json:"start_date"` // YYYY-MM-DD
		WithDefaultPlan bool   `json:"with_default_plan"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.Instructor
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Instructor with this email already exists!", nil)
	}

	startDate, _ := time.Parse("2006-01-02", reqData.StartDate)

	instructor := models.Instructor{
		Name:           reqData.Name,
		Email:          reqData.Email,
		Classification: reqData.Classification,
		StartDate:      startDate,
		CurrentStep:    1,
	}

	// Link to an existing user account when one matches the email
	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err == nil {
		instructor.UserID = user.ID
	}

	if err := database.Database.Db.Create(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create instructor!", nil)
	}

	var report *engine.Report
	if reqData.WithDefaultPlan {
		var err error
		report, err = engine.MaterializeDefaultPlan(database.Database.Db, &instructor)
		if err != nil {
			log.Printf("CreateInstructor: default plan failed for instructor %d: %v", instructor.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Instructor created but default plan failed!", instructor)
		}

		go func(email, name string, steps int) {
			if err := utils.SendWelcomeEmail(email, name, steps); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", email, err)
			}
		}(instructor.Email, instructor.Name, report.CreatedSteps)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor created successfully!", fiber.Map{
		"instructor": instructor,
		"report":     report,
	})
}

// GetInstructorsOverview lists all instructors with their progress for PM review
func GetInstructorsOverview(c *fiber.Ctx) error {
	var instructors []models.Instructor
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("start_date asc").
		Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", fiber.Map{
		"instructors": instructors,
		"total":       len(instructors),
	})
}
