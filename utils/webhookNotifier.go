package utils

import (
	"log"

	"onboard/config"

	"github.com/go-resty/resty/v2"
)

// NotifyStepCompleted posts a step-completion event to the configured PM
// webhook. Failures are logged only; completion never depends on delivery.
func NotifyStepCompleted(instructorName, instructorEmail, stepTitle string, overallProgress int) {
	if config.AppConfig.PMWebhookURL == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":            "step_completed",
			"instructor_name":  instructorName,
			"instructor_email": instructorEmail,
			"step_title":       stepTitle,
			"overall_progress": overallProgress,
		}).
		Post(config.AppConfig.PMWebhookURL)

	if err != nil {
		log.Printf("Error notifying PM webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("PM webhook returned status %d", resp.StatusCode())
	}
}
