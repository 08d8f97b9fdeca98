package utils

import (
	"fmt"
	"log"

	"onboard/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers one HTML email through SendGrid
func sendEmail(toEmail, toName, subject, htmlBody string) error {
	from := mail.NewEmail("Onboarding Team", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("Failed to send email to %s, response code: %d", toEmail, response.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", response.StatusCode)
	}
	return nil
}

// SendWelcomeEmail notifies an instructor that their onboarding plan is ready
func SendWelcomeEmail(email, name string, stepCount int) error {
	subject := "Your Onboarding Plan Is Ready"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">🎉 Welcome Aboard!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your onboarding plan has been prepared. It has <b>%d steps</b> waiting for you.</p>
					<p style="font-size: 14px; color: #666666;">Log in to your dashboard to see what is due first. Your program manager will guide you through the PM-led steps.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Onboarding Team</p>
				</div>
			</body>
		</html>
	`, name, stepCount)

	return sendEmail(email, name, subject, body)
}

// SendStepReminderEmail reminds an instructor that a step is due today
func SendStepReminderEmail(email, name, stepTitle string, dayOffset int) error {
	subject := fmt.Sprintf("Reminder: %s is due", stepTitle)
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">⏰ Step Due Today</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your onboarding step is scheduled for today (D%+d):</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Head to your dashboard to work through its tasks.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Onboarding Team</p>
				</div>
			</body>
		</html>
	`, name, dayOffset, stepTitle)

	return sendEmail(email, name, subject, body)
}

// SendPlanCompletedEmail congratulates an instructor on finishing every step
func SendPlanCompletedEmail(email, name string) error {
	subject := "Onboarding Complete - Congratulations!"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">🏆 You Did It!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You have completed every step of your onboarding plan. Great work!</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Onboarding Team</p>
				</div>
			</body>
		</html>
	`, name)

	return sendEmail(email, name, subject, body)
}
