package engine

import (
	"testing"

	"onboard/models"
	"onboard/models/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkTaskCompleteForDocumentAndChecklist(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	doc := createDocumentModule(t, db, "Read Me", 0)
	checklist := createChecklistModule(t, db, "Room Checklist", "Projector", "Seating")

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{doc.ID, checklist.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	require.Len(t, steps[0].Tasks, 2)

	for i := range steps[0].Tasks {
		task := steps[0].Tasks[i]
		require.NoError(t, MarkTaskComplete(db, &task))

		var reloaded plan.Task
		require.NoError(t, db.First(&reloaded, task.ID).Error)
		assert.Equal(t, plan.StatusCompleted, reloaded.Status)
	}

	refreshed := reloadInstructor(t, db, instructor.ID)
	assert.Equal(t, 100, refreshed.OverallProgress)

	// Completing again is a no-op
	task := steps[0].Tasks[0]
	task.Status = plan.StatusCompleted
	require.NoError(t, MarkTaskComplete(db, &task))
}

func TestMarkTaskCompleteRejectsQuizAndFileKinds(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	video := createVideoModule(t, db, "Watch Me")
	files := createFileModule(t, db, "Upload Contract", "Contract")

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{video.ID, files.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	for i := range steps[0].Tasks {
		task := steps[0].Tasks[i]
		assert.ErrorIs(t, MarkTaskComplete(db, &task), ErrWrongTaskKind)
	}
}

func TestSetChecklistItem(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	checklist := createChecklistModule(t, db, "Room Checklist", "Projector", "Seating")

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{checklist.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	task := steps[0].Tasks[0]

	var items []plan.TaskChecklistItem
	require.NoError(t, db.Where("task_id = ?", task.ID).Order("order_index asc").Find(&items).Error)
	require.Len(t, items, 2)

	require.NoError(t, SetChecklistItem(db, &task, items[0].ID, true))

	var reloaded plan.TaskChecklistItem
	require.NoError(t, db.First(&reloaded, items[0].ID).Error)
	assert.True(t, reloaded.IsChecked)

	// Checking items alone does not complete the task
	var reloadedTask plan.Task
	require.NoError(t, db.First(&reloadedTask, task.ID).Error)
	assert.Equal(t, plan.StatusPending, reloadedTask.Status)

	// Unknown item id
	err = SetChecklistItem(db, &task, 9999, true)
	assert.Error(t, err)
}
