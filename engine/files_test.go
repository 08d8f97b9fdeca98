package engine

import (
	"testing"

	"onboard/models"
	"onboard/models/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFileUploadCompletesAtRequiredCount(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createFileModule(t, db, "Upload Contract", "Signed contract", "Banking form")

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	task := steps[0].Tasks[0]

	// File requirements were snapshot into the task
	var requirements []plan.TaskFileRequirement
	require.NoError(t, db.Where("task_id = ?", task.ID).Find(&requirements).Error)
	require.Len(t, requirements, 2)

	result, err := RecordFileUpload(db, &task, "contract.pdf", "/uploads/abc.pdf", 1024)
	require.NoError(t, err)
	assert.Equal(t, 1, result.StoredFiles)
	assert.Equal(t, 2, result.RequiredFiles)
	assert.False(t, result.TaskCompleted)

	result, err = RecordFileUpload(db, &task, "bank.pdf", "/uploads/def.pdf", 2048)
	require.NoError(t, err)
	assert.Equal(t, 2, result.StoredFiles)
	assert.True(t, result.TaskCompleted)

	var reloaded plan.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, plan.StatusCompleted, reloaded.Status)

	assert.Equal(t, 100, reloadInstructor(t, db, instructor.ID).OverallProgress)
}

func TestRecordFileUploadRejectsOtherKinds(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Doc", 0)

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	task := steps[0].Tasks[0]

	_, err = RecordFileUpload(db, &task, "x.pdf", "/uploads/x.pdf", 1)
	assert.ErrorIs(t, err, ErrWrongTaskKind)
}
