package supportValidator

import (
	"strconv"
	"strings"

	"onboard/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket validates a new help request
func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject string `json:"subject"`
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Subject = strings.TrimSpace(reqData.Subject)
		reqData.Message = strings.TrimSpace(reqData.Message)

		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		} else if len(reqData.Subject) < 5 {
			errors["subject"] = "Subject must be at least 5 characters long!"
		}

		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

// ReplyTicket validates a PM reply to a ticket
func ReplyTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ticketIDStr := strings.TrimSpace(c.Params("id"))
		ticketID, err := strconv.Atoi(ticketIDStr)
		if err != nil || ticketID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Ticket ID!", nil)
		}

		reqData := new(struct {
			Reply string `json:"reply"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Reply) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"reply": "Reply is required!"})
		}

		c.Locals("ticketID", ticketID)
		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}
