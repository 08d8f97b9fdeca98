package pmRoutes

import (
	controllers "onboard/controllers/onboarding"
	"onboard/middleware"
	validators "onboard/validators/onboarding"

	"github.com/gofiber/fiber/v2"
)

// SetupPMRoutes sets up the program-manager surface: instructor management,
// plan configuration and catalog browsing
func SetupPMRoutes(app *fiber.App) {
	pmGroup := app.Group("/pm", middleware.JWTMiddleware, middleware.RequireRole("PM", "ADMIN"))

	// Instructor management
	pmGroup.Post("/instructors", validators.CreateInstructor(), controllers.CreateInstructor)
	pmGroup.Get("/instructors", controllers.GetInstructorsOverview)
	pmGroup.Get("/instructors/:id/plan", validators.InstructorID(), controllers.GetInstructorPlan)

	// Plan configuration
	pmGroup.Post("/instructors/:id/plan", validators.InstructorID(), validators.PlanConfig(), controllers.ApplyPlanConfig)
	pmGroup.Put("/instructors/:id/plan", validators.InstructorID(), validators.PlanConfig(), controllers.ReconcilePlanConfig)

	// Catalog browsing (read only; template CRUD lives elsewhere)
	pmGroup.Get("/catalog/steps", controllers.ListStepTemplates)
	pmGroup.Get("/catalog/modules", controllers.ListContentModules)
}
