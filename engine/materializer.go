package engine

import (
	"errors"
	"fmt"
	"log"

	"onboard/models"
	"onboard/models/catalog"
	"onboard/models/plan"

	"gorm.io/gorm"
)

// MaterializePlan builds a brand-new ordered plan for an instructor from the
// given configuration. Positions are assigned densely starting at 1 in list
// order. A missing step template aborts the whole call with nothing written; a
// missing content module only skips that module's task and is reported.
func MaterializePlan(db *gorm.DB, instructor *models.Instructor, configs []StepConfig) (*Report, error) {
	if err := validateConfigs(configs); err != nil {
		return nil, err
	}

	var existing int64
	db.Model(&plan.OnboardingStep{}).
		Where("instructor_id = ? AND is_deleted = ?", instructor.ID, false).
		Count(&existing)
	if existing > 0 {
		return nil, ErrPlanExists
	}

	report := &Report{}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	for i, cfg := range configs {
		position := i + 1

		tmpl, err := loadStepTemplate(tx, cfg.StepTemplateID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		_, skipped, err := buildStep(tx, instructor, tmpl, position, cfg.ModuleIDs)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		for _, moduleID := range skipped {
			log.Printf("MaterializePlan: content module %d not found, task skipped (instructor %d, step position %d)", moduleID, instructor.ID, position)
		}
		report.SkippedModuleIDs = append(report.SkippedModuleIDs, skipped...)
		report.CreatedSteps++
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

// MaterializeDefaultPlan is the legacy initialization path: it walks the active
// step templates in catalog order with their default module links and omits any
// step whose classification resolves to SKIP for this instructor. Skipped steps
// do not consume a position, so the remaining steps stay dense from 1.
func MaterializeDefaultPlan(db *gorm.DB, instructor *models.Instructor) (*Report, error) {
	var existing int64
	db.Model(&plan.OnboardingStep{}).
		Where("instructor_id = ? AND is_deleted = ?", instructor.ID, false).
		Count(&existing)
	if existing > 0 {
		return nil, ErrPlanExists
	}

	var templates []catalog.StepTemplate
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("order_index asc, id asc").
		Find(&templates).Error; err != nil {
		return nil, err
	}

	report := &Report{}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	position := 1
	for i := range templates {
		tmpl := &templates[i]

		if ClassifyStep(instructor.Classification, position) == catalog.StepSkip {
			log.Printf("MaterializeDefaultPlan: step template %d skipped by classification (instructor %d)", tmpl.ID, instructor.ID)
			continue
		}

		moduleIDs, err := defaultModuleIDs(tx, tmpl.ID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		_, skipped, err := buildStep(tx, instructor, tmpl, position, moduleIDs)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		for _, moduleID := range skipped {
			log.Printf("MaterializeDefaultPlan: content module %d not found, task skipped (instructor %d)", moduleID, instructor.ID)
		}
		report.SkippedModuleIDs = append(report.SkippedModuleIDs, skipped...)
		report.CreatedSteps++
		position++
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

// loadStepTemplate resolves a step template id or fails the call.
func loadStepTemplate(tx *gorm.DB, templateID uint) (*catalog.StepTemplate, error) {
	var tmpl catalog.StepTemplate
	err := tx.Where("id = ? AND is_deleted = ?", templateID, false).First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrStepTemplateNotFound, templateID)
		}
		return nil, err
	}
	return &tmpl, nil
}

// defaultModuleIDs returns the module ids linked to a step template for the
// legacy path, in link order.
func defaultModuleIDs(tx *gorm.DB, templateID uint) ([]uint, error) {
	var links []catalog.StepTemplateModule
	if err := tx.Where("step_template_id = ? AND is_deleted = ?", templateID, false).
		Order("order_index asc, id asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	moduleIDs := make([]uint, len(links))
	for i, link := range links {
		moduleIDs[i] = link.ContentModuleID
	}
	return moduleIDs, nil
}
