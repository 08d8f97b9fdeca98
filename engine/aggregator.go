package engine

import (
	"errors"
	"math"

	"onboard/models"
	"onboard/models/plan"

	"gorm.io/gorm"
)

// RecomputeProgress recomputes every denormalized progress cache for one
// instructor: per-step task counters and status, and the instructor's current
// step and overall progress. It is the only writer of those fields and runs at
// the end of every mutation path.
func RecomputeProgress(db *gorm.DB, instructorID uint) error {
	return recomputeProgress(db, instructorID)
}

func recomputeProgress(tx *gorm.DB, instructorID uint) error {
	var instructor models.Instructor
	if err := tx.Where("id = ? AND is_deleted = ?", instructorID, false).First(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInstructorNotFound
		}
		return err
	}

	var steps []plan.OnboardingStep
	if err := tx.Where("instructor_id = ? AND is_deleted = ?", instructorID, false).
		Order("position asc").
		Find(&steps).Error; err != nil {
		return err
	}

	totalTasks := 0
	completedTasks := 0
	currentStep := 0
	lastPosition := 0

	for i := range steps {
		step := &steps[i]

		var total int64
		var completed int64
		tx.Model(&plan.Task{}).
			Where("step_id = ? AND enabled = ? AND is_deleted = ?", step.ID, true, false).
			Count(&total)
		tx.Model(&plan.Task{}).
			Where("step_id = ? AND enabled = ? AND is_deleted = ? AND status = ?", step.ID, true, false, plan.StatusCompleted).
			Count(&completed)

		step.TotalTasks = int(total)
		step.CompletedTasks = int(completed)
		step.Status = deriveStepStatus(int(completed), int(total))
		if err := tx.Save(step).Error; err != nil {
			return err
		}

		totalTasks += step.TotalTasks
		completedTasks += step.CompletedTasks
		lastPosition = step.Position

		if currentStep == 0 && step.Status != plan.StatusCompleted {
			currentStep = step.Position
		}
	}

	// Every step complete (or no steps at all): point at the last step, or 1
	// for an empty plan.
	if currentStep == 0 {
		if lastPosition > 0 {
			currentStep = lastPosition
		} else {
			currentStep = 1
		}
	}

	progress := 0
	if totalTasks > 0 {
		progress = int(math.Round(100 * float64(completedTasks) / float64(totalTasks)))
	}

	instructor.CurrentStep = currentStep
	instructor.OverallProgress = progress
	return tx.Save(&instructor).Error
}

// deriveStepStatus maps a step's completion ratio onto its status.
func deriveStepStatus(completed, total int) string {
	switch {
	case total > 0 && completed >= total:
		return plan.StatusCompleted
	case completed > 0:
		return plan.StatusInProgress
	default:
		return plan.StatusPending
	}
}
