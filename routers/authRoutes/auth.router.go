package authRoutes

import (
	controllers "onboard/controllers/auth"
	"onboard/middleware"
	validators "onboard/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", validators.Register(), controllers.Register)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/change-password", middleware.JWTMiddleware, validators.ChangePassword(), controllers.ChangePassword)
}
