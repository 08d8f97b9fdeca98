package utils

import (
	"log"
	"time"

	"onboard/config"
	"onboard/database"
	"onboard/models"
	"onboard/models/plan"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartReminderScheduler runs the daily step reminder job. A step is due when
// the instructor's start date plus the step's day offset lands on today and
// the step is not yet completed.
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.ReminderCron, sendDueStepReminders)
	if err != nil {
		logScheduler("Failed to schedule reminder job: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Reminder scheduler started with spec " + config.AppConfig.ReminderCron)
	return c
}

// sendDueStepReminders emails every instructor whose plan has a step due today
func sendDueStepReminders() {
	db := database.Database.Db
	today := time.Now().Truncate(24 * time.Hour)

	var instructors []models.Instructor
	if err := db.Where("is_deleted = ?", false).Find(&instructors).Error; err != nil {
		logScheduler("Error fetching instructors: " + err.Error())
		return
	}

	for _, instructor := range instructors {
		startDate := instructor.StartDate.Truncate(24 * time.Hour)
		if startDate.IsZero() {
			continue
		}

		var steps []plan.OnboardingStep
		if err := db.Where("instructor_id = ? AND is_deleted = ? AND status != ?",
			instructor.ID, false, plan.StatusCompleted).
			Order("position asc").
			Find(&steps).Error; err != nil {
			logScheduler("Error fetching steps: " + err.Error())
			continue
		}

		for _, step := range steps {
			dueDate := startDate.AddDate(0, 0, step.DayOffset)
			if !dueDate.Equal(today) {
				continue
			}

			// Reminders must not block the scheduler tick
			go func(email, name, title string, offset int) {
				if err := SendStepReminderEmail(email, name, title, offset); err != nil {
					logScheduler("Failed to send reminder to " + email + ": " + err.Error())
				}
			}(instructor.Email, instructor.Name, step.Title, step.DayOffset)

			logScheduler("Reminder queued for instructor " + instructor.Email + " step: " + step.Title)
		}
	}
}
