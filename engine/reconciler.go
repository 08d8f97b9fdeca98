package engine

import (
	"log"

	"onboard/models"
	"onboard/models/plan"

	"gorm.io/gorm"
)

// ReconcilePlan applies a new configuration to the instructor's existing plan
// while preserving completion state wherever the logical step or task still
// exists. Steps are matched by originating step template id and updated in
// place; tasks inside a matched step are matched by origin module id and left
// untouched when they survive. Tasks whose module left the configuration are
// disabled, not deleted. Steps whose template id is absent from the new
// configuration are deleted with their tasks. That is the one place progress
// is irrecoverably lost.
func ReconcilePlan(db *gorm.DB, instructor *models.Instructor, configs []StepConfig) (*Report, error) {
	if err := validateConfigs(configs); err != nil {
		return nil, err
	}

	report := &Report{}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var existingSteps []plan.OnboardingStep
	if err := tx.Where("instructor_id = ? AND is_deleted = ?", instructor.ID, false).
		Find(&existingSteps).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Steps without a template reference cannot be matched and are always
	// replaced; they fall through to the deletion pass below.
	byTemplate := make(map[uint]*plan.OnboardingStep, len(existingSteps))
	for i := range existingSteps {
		if existingSteps[i].StepTemplateID != nil {
			byTemplate[*existingSteps[i].StepTemplateID] = &existingSteps[i]
		}
	}

	kept := make(map[uint]bool, len(configs))

	for i, cfg := range configs {
		position := i + 1

		tmpl, err := loadStepTemplate(tx, cfg.StepTemplateID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		if step, ok := byTemplate[cfg.StepTemplateID]; ok {
			// Refresh the step snapshot and position; tasks are diffed, never
			// rebuilt wholesale.
			step.Position = position
			step.Title = tmpl.Title
			step.Emoji = tmpl.Emoji
			step.Description = tmpl.Description
			step.DayOffset = resolveDayOffset(tmpl, position)
			step.Classification = ClassifyStep(instructor.Classification, position)
			if err := tx.Save(step).Error; err != nil {
				tx.Rollback()
				return nil, err
			}

			skipped, err := reconcileTasks(tx, step, cfg.ModuleIDs)
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			for _, moduleID := range skipped {
				log.Printf("ReconcilePlan: content module %d not found, task skipped (instructor %d, step %d)", moduleID, instructor.ID, step.ID)
			}
			report.SkippedModuleIDs = append(report.SkippedModuleIDs, skipped...)
			report.UpdatedSteps++
			kept[cfg.StepTemplateID] = true
			continue
		}

		_, skipped, err := buildStep(tx, instructor, tmpl, position, cfg.ModuleIDs)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		for _, moduleID := range skipped {
			log.Printf("ReconcilePlan: content module %d not found, task skipped (instructor %d)", moduleID, instructor.ID)
		}
		report.SkippedModuleIDs = append(report.SkippedModuleIDs, skipped...)
		report.CreatedSteps++
		kept[cfg.StepTemplateID] = true
	}

	// Deletion pass: any existing step not claimed by the new configuration
	// goes away with all of its tasks, completed or not.
	for i := range existingSteps {
		step := &existingSteps[i]
		if step.StepTemplateID != nil && kept[*step.StepTemplateID] {
			continue
		}
		if err := deleteStep(tx, step); err != nil {
			tx.Rollback()
			return nil, err
		}
		report.DeletedSteps++
		report.DeletedStepTitles = append(report.DeletedStepTitles, step.Title)
	}

	if err := recomputeProgress(tx, instructor.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return report, nil
}

// reconcileTasks diffs a matched step's tasks against the new module list.
// Surviving tasks keep their status, quiz answers and uploads untouched;
// previously disabled tasks whose module returned are re-enabled with status
// intact; new modules are appended after the current tasks; tasks whose module
// left the configuration are disabled.
func reconcileTasks(tx *gorm.DB, step *plan.OnboardingStep, moduleIDs []uint) ([]uint, error) {
	var tasks []plan.Task
	if err := tx.Where("step_id = ? AND is_deleted = ?", step.ID, false).
		Order("order_index asc").
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	byOrigin := make(map[uint]*plan.Task, len(tasks))
	maxOrder := 0
	for i := range tasks {
		byOrigin[tasks[i].OriginModuleID] = &tasks[i]
		if tasks[i].OrderIndex > maxOrder {
			maxOrder = tasks[i].OrderIndex
		}
	}

	wanted := make(map[uint]bool, len(moduleIDs))
	var skipped []uint

	for _, moduleID := range moduleIDs {
		wanted[moduleID] = true

		if task, ok := byOrigin[moduleID]; ok {
			if !task.Enabled {
				task.Enabled = true
				if err := tx.Save(task).Error; err != nil {
					return nil, err
				}
			}
			continue
		}

		module, err := loadModule(tx, moduleID)
		if err != nil {
			skipped = append(skipped, moduleID)
			continue
		}
		maxOrder++
		if err := copyModuleToTask(tx, step.ID, module, maxOrder); err != nil {
			return nil, err
		}
	}

	for i := range tasks {
		task := &tasks[i]
		if task.Enabled && !wanted[task.OriginModuleID] {
			task.Enabled = false
			if err := tx.Save(task).Error; err != nil {
				return nil, err
			}
		}
	}

	return skipped, nil
}

// deleteStep soft-deletes a step and everything under it.
func deleteStep(tx *gorm.DB, step *plan.OnboardingStep) error {
	if err := tx.Model(&plan.Task{}).
		Where("step_id = ? AND is_deleted = ?", step.ID, false).
		Update("is_deleted", true).Error; err != nil {
		return err
	}
	step.IsDeleted = true
	return tx.Save(step).Error
}
