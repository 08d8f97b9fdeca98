package engine

import (
	"errors"

	"onboard/models/catalog"
	"onboard/models/plan"

	"gorm.io/gorm"
)

// MarkTaskComplete accepts a completion status write for a document or
// checklist task. The transition is one-way; completing an already completed
// task is a no-op. Quiz and file-upload tasks complete through their own
// operations only.
func MarkTaskComplete(db *gorm.DB, task *plan.Task) error {
	if task.Kind != catalog.KindDocument && task.Kind != catalog.KindChecklist {
		return ErrWrongTaskKind
	}
	if task.Status == plan.StatusCompleted {
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	task.Status = plan.StatusCompleted
	if err := tx.Save(task).Error; err != nil {
		tx.Rollback()
		return err
	}

	var step plan.OnboardingStep
	if err := tx.First(&step, task.StepID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := recomputeProgress(tx, step.InstructorID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// SetChecklistItem records one checklist item toggle on a checklist task.
// Toggling items does not complete the task by itself; completion stays a
// separate status write from the owning surface.
func SetChecklistItem(db *gorm.DB, task *plan.Task, itemID uint, checked bool) error {
	if task.Kind != catalog.KindChecklist {
		return ErrWrongTaskKind
	}

	var item plan.TaskChecklistItem
	err := db.Where("id = ? AND task_id = ? AND is_deleted = ?", itemID, task.ID, false).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gorm.ErrRecordNotFound
	}
	if err != nil {
		return err
	}

	item.IsChecked = checked
	return db.Save(&item).Error
}
