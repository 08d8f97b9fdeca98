package onboardingRoutes

import (
	controllers "onboard/controllers/onboarding"
	"onboard/middleware"
	validators "onboard/validators/onboarding"

	"github.com/gofiber/fiber/v2"
)

// SetupOnboardingRoutes sets up the instructor-facing onboarding surface
func SetupOnboardingRoutes(app *fiber.App) {
	group := app.Group("/onboarding", middleware.JWTMiddleware)

	// Plan and progress views
	group.Get("/plan", controllers.GetMyPlan)
	group.Get("/dashboard", controllers.GetMyDashboard)

	// Task completion operations
	group.Post("/tasks/:id/quiz/submit", validators.TaskID(), validators.QuizSubmission(), controllers.SubmitQuizAnswers)
	group.Post("/tasks/:id/files", validators.TaskID(), controllers.UploadTaskFile)
	group.Patch("/tasks/:id/checklist/:itemId", validators.TaskID(), validators.ChecklistItem(), controllers.ToggleChecklistItem)
	group.Post("/tasks/:id/complete", validators.TaskID(), controllers.CompleteTask)
}
