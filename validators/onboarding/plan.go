package onboardingValidator

import (
	"strconv"
	"strings"
	"time"

	"onboard/middleware"

	"github.com/gofiber/fiber/v2"
)

// InstructorID validates the :id path parameter
func InstructorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		instructorIDStr := strings.TrimSpace(c.Params("id"))
		if instructorIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor ID is required!", nil)
		}

		instructorID, err := strconv.Atoi(instructorIDStr)
		if err != nil || instructorID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Instructor ID!", nil)
		}

		c.Locals("instructorID", instructorID)
		return c.Next()
	}
}

// CreateInstructor validates the instructor creation request
func CreateInstructor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name            string `json:"name"`
			Email           string `json:"email"`
			Classification  string `json:"classification"`
			StartDate       string `json:"start_date"` // YYYY-MM-DD
			WithDefaultPlan bool   `json:"with_default_plan"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.Classification = strings.TrimSpace(strings.ToUpper(reqData.Classification))

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}

		validClassifications := map[string]bool{"NEW_GRAD": true, "EXPERIENCED": true, "RETURNING": true}
		if !validClassifications[reqData.Classification] {
			errors["classification"] = "Classification must be NEW_GRAD, EXPERIENCED, or RETURNING!"
		}

		if reqData.StartDate == "" {
			errors["start_date"] = "Start date is required!"
		} else if _, err := time.Parse("2006-01-02", reqData.StartDate); err != nil {
			errors["start_date"] = "Start date must be in YYYY-MM-DD format!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInstructor", reqData)
		return c.Next()
	}
}

// PlanConfig validates the ordered plan configuration body used by both the
// materialize and reconcile endpoints
func PlanConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Configs []struct {
				StepTemplateID uint   `json:"step_template_id"`
				ModuleIDs      []uint `json:"module_ids"`
			} `json:"configs"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Configs) == 0 {
			errors["configs"] = "At least one step configuration is required!"
		}

		seen := make(map[uint]bool)
		for i, cfg := range reqData.Configs {
			key := "configs[" + strconv.Itoa(i) + "]"
			if cfg.StepTemplateID == 0 {
				errors[key+".step_template_id"] = "Step template ID is required!"
			}
			if len(cfg.ModuleIDs) == 0 {
				errors[key+".module_ids"] = "At least one module is required!"
			}
			if seen[cfg.StepTemplateID] {
				errors[key+".step_template_id"] = "Step template listed more than once!"
			}
			seen[cfg.StepTemplateID] = true
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlanConfig", reqData)
		return c.Next()
	}
}
