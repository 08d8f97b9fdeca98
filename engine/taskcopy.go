package engine

import (
	"fmt"

	"onboard/models"
	"onboard/models/catalog"
	"onboard/models/plan"

	"gorm.io/gorm"
)

// defaultDayOffsets is the fallback schedule used when a step template carries
// no default day offset. Positions beyond the table get -14.
var defaultDayOffsets = map[int]int{
	1: -14,
	2: -12,
	3: -9,
	4: -7,
	5: -5,
	6: -3,
	7: -1,
}

func dayOffsetForPosition(position int) int {
	if offset, ok := defaultDayOffsets[position]; ok {
		return offset
	}
	return -14
}

// resolveDayOffset prefers the template's own default over the position table.
func resolveDayOffset(tmpl *catalog.StepTemplate, position int) int {
	if tmpl.DefaultDayOffset != nil {
		return *tmpl.DefaultDayOffset
	}
	return dayOffsetForPosition(position)
}

// buildStep constructs one OnboardingStep at the given position from a step
// template snapshot and creates a task for every resolvable module id, in list
// order. Missing module ids are skipped and returned; they never fail the step.
func buildStep(tx *gorm.DB, instructor *models.Instructor, tmpl *catalog.StepTemplate, position int, moduleIDs []uint) (*plan.OnboardingStep, []uint, error) {
	step := plan.OnboardingStep{
		InstructorID:   instructor.ID,
		StepTemplateID: &tmpl.ID,
		Position:       position,
		Title:          tmpl.Title,
		Emoji:          tmpl.Emoji,
		Description:    tmpl.Description,
		DayOffset:      resolveDayOffset(tmpl, position),
		Classification: ClassifyStep(instructor.Classification, position),
		Status:         plan.StatusPending,
	}
	if err := tx.Create(&step).Error; err != nil {
		return nil, nil, err
	}

	var skipped []uint
	created := 0
	for i, moduleID := range moduleIDs {
		module, err := loadModule(tx, moduleID)
		if err != nil {
			skipped = append(skipped, moduleID)
			continue
		}
		if err := copyModuleToTask(tx, step.ID, module, i+1); err != nil {
			return nil, nil, err
		}
		created++
	}

	step.TotalTasks = created
	step.CompletedTasks = 0
	if err := tx.Save(&step).Error; err != nil {
		return nil, nil, err
	}
	return &step, skipped, nil
}

// loadModule fetches a content module with its embedded template lists.
func loadModule(tx *gorm.DB, moduleID uint) (*catalog.ContentModule, error) {
	var module catalog.ContentModule
	err := tx.Where("id = ? AND is_deleted = ?", moduleID, false).
		Preload("QuizQuestions", "is_deleted = ?", false).
		Preload("ChecklistItems", "is_deleted = ?", false).
		Preload("FileRequirements", "is_deleted = ?", false).
		First(&module).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

// copyModuleToTask snapshots a content module into a new task. This is the one
// place that branches on content kind; every kind must be handled here.
func copyModuleToTask(tx *gorm.DB, stepID uint, module *catalog.ContentModule, orderIndex int) error {
	task := plan.Task{
		StepID:         stepID,
		OriginModuleID: module.ID,
		Title:          module.Name,
		Description:    module.Description,
		Kind:           module.Kind,
		Enabled:        true,
		OrderIndex:     orderIndex,
		Status:         plan.StatusPending,
	}

	switch module.Kind {
	case catalog.KindDocument:
		task.BodyContent = module.BodyContent
	case catalog.KindVideo:
		task.VideoURL = module.VideoURL
		task.VideoLength = module.VideoLength
	case catalog.KindFileUpload, catalog.KindChecklist:
		// content lives entirely in the child rows copied below
	default:
		return fmt.Errorf("unknown content kind %q for module %d", module.Kind, module.ID)
	}

	if err := tx.Create(&task).Error; err != nil {
		return err
	}

	switch module.Kind {
	case catalog.KindDocument, catalog.KindVideo:
		for _, q := range module.QuizQuestions {
			question := plan.TaskQuizQuestion{
				TaskID:      task.ID,
				Prompt:      q.Prompt,
				Choices:     q.Choices,
				AnswerIndex: q.AnswerIndex,
				OrderIndex:  q.OrderIndex,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
	case catalog.KindChecklist:
		for _, item := range module.ChecklistItems {
			checklistItem := plan.TaskChecklistItem{
				TaskID:     task.ID,
				Label:      item.Label,
				OrderIndex: item.OrderIndex,
			}
			if err := tx.Create(&checklistItem).Error; err != nil {
				return err
			}
		}
	case catalog.KindFileUpload:
		for _, req := range module.FileRequirements {
			requirement := plan.TaskFileRequirement{
				TaskID:        task.ID,
				Label:         req.Label,
				AcceptedTypes: req.AcceptedTypes,
			}
			if err := tx.Create(&requirement).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
