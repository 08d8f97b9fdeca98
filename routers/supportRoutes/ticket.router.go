package supportRoutes

import (
	controllers "onboard/controllers/support"
	"onboard/middleware"
	validators "onboard/validators/support"

	"github.com/gofiber/fiber/v2"
)

// SetupSupportRoutes sets up help ticket routes
func SetupSupportRoutes(app *fiber.App) {
	supportGroup := app.Group("/support", middleware.JWTMiddleware)

	supportGroup.Post("/ticket", validators.CreateTicket(), controllers.CreateTicket)
	supportGroup.Get("/tickets", controllers.GetMyTickets)

	supportGroup.Get("/tickets/all", middleware.RequireRole("PM", "ADMIN"), controllers.GetAllTickets)
	supportGroup.Post("/tickets/:id/reply", middleware.RequireRole("PM", "ADMIN"), validators.ReplyTicket(), controllers.ReplyTicket)
}
