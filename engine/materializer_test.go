package engine

import (
	"testing"

	"onboard/models"
	"onboard/models/catalog"
	"onboard/models/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializePlanOrdering(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmplA := createTemplate(t, db, "Paperwork", nil)
	tmplB := createTemplate(t, db, "Organization", nil)
	m1 := createDocumentModule(t, db, "Read the Handbook", 1)
	m2 := createVideoModule(t, db, "Watch Setup Video")
	m3 := createChecklistModule(t, db, "Desk Checklist", "Chair", "Monitor")

	report, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmplA.ID, ModuleIDs: []uint{m1.ID, m2.ID}},
		{StepTemplateID: tmplB.ID, ModuleIDs: []uint{m3.ID}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.CreatedSteps)
	assert.Empty(t, report.SkippedModuleIDs)

	steps := loadSteps(t, db, instructor.ID)
	require.Len(t, steps, 2)

	assert.Equal(t, 1, steps[0].Position)
	assert.Equal(t, "Paperwork", steps[0].Title)
	require.Len(t, steps[0].Tasks, 2)
	assert.Equal(t, "Read the Handbook", steps[0].Tasks[0].Title)
	assert.Equal(t, "Watch Setup Video", steps[0].Tasks[1].Title)
	assert.Equal(t, 2, steps[0].TotalTasks)
	assert.Equal(t, 0, steps[0].CompletedTasks)

	assert.Equal(t, 2, steps[1].Position)
	require.Len(t, steps[1].Tasks, 1)
	assert.Equal(t, "Desk Checklist", steps[1].Tasks[0].Title)

	for _, task := range steps[0].Tasks {
		assert.True(t, task.Enabled)
		assert.Equal(t, plan.StatusPending, task.Status)
	}
}

func TestMaterializePlanIsDeterministic(t *testing.T) {
	db := newTestDB(t)

	tmplA := createTemplate(t, db, "Paperwork", nil)
	tmplB := createTemplate(t, db, "Organization", nil)
	m1 := createDocumentModule(t, db, "Read the Handbook", 2)
	m2 := createVideoModule(t, db, "Watch Setup Video")

	configs := []StepConfig{
		{StepTemplateID: tmplA.ID, ModuleIDs: []uint{m1.ID, m2.ID}},
		{StepTemplateID: tmplB.ID, ModuleIDs: []uint{m2.ID}},
	}

	first := createInstructor(t, db, models.ClassificationNewGrad)
	second := createInstructor(t, db, models.ClassificationNewGrad)

	_, err := MaterializePlan(db, first, configs)
	require.NoError(t, err)
	_, err = MaterializePlan(db, second, configs)
	require.NoError(t, err)

	firstSteps := loadSteps(t, db, first.ID)
	secondSteps := loadSteps(t, db, second.ID)
	require.Len(t, secondSteps, len(firstSteps))

	for i := range firstSteps {
		assert.Equal(t, firstSteps[i].Position, secondSteps[i].Position)
		assert.Equal(t, firstSteps[i].Title, secondSteps[i].Title)
		assert.Equal(t, firstSteps[i].TotalTasks, secondSteps[i].TotalTasks)
		require.Len(t, secondSteps[i].Tasks, len(firstSteps[i].Tasks))
		for j := range firstSteps[i].Tasks {
			assert.Equal(t, firstSteps[i].Tasks[j].Title, secondSteps[i].Tasks[j].Title)
			assert.Equal(t, firstSteps[i].Tasks[j].OrderIndex, secondSteps[i].Tasks[j].OrderIndex)
		}
	}
}

func TestMaterializeMissingStepTemplateIsAtomic(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Read the Handbook", 1)

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}},
		{StepTemplateID: 9999, ModuleIDs: []uint{module.ID}},
	})
	require.ErrorIs(t, err, ErrStepTemplateNotFound)

	// Nothing may survive from the first entry
	var stepCount int64
	db.Model(&plan.OnboardingStep{}).Where("instructor_id = ?", instructor.ID).Count(&stepCount)
	assert.Zero(t, stepCount)
	var taskCount int64
	db.Model(&plan.Task{}).Count(&taskCount)
	assert.Zero(t, taskCount)
}

func TestMaterializeMissingModuleIsSkippedAndReported(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Read the Handbook", 1)

	report, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID, 4242}},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{4242}, report.SkippedModuleIDs)

	steps := loadSteps(t, db, instructor.ID)
	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].TotalTasks)
	require.Len(t, steps[0].Tasks, 1)
	assert.Equal(t, "Read the Handbook", steps[0].Tasks[0].Title)
}

func TestMaterializeDayOffsets(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)
	module := createDocumentModule(t, db, "Filler", 0)

	custom := -20
	var configs []StepConfig
	withDefault := createTemplate(t, db, "Custom Offset", &custom)
	configs = append(configs, StepConfig{StepTemplateID: withDefault.ID, ModuleIDs: []uint{module.ID}})
	for i := 2; i <= 8; i++ {
		tmpl := createTemplate(t, db, "Step", nil)
		configs = append(configs, StepConfig{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}})
	}

	_, err := MaterializePlan(db, instructor, configs)
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	require.Len(t, steps, 8)

	assert.Equal(t, -20, steps[0].DayOffset) // template default wins over the table
	assert.Equal(t, -12, steps[1].DayOffset)
	assert.Equal(t, -9, steps[2].DayOffset)
	assert.Equal(t, -7, steps[3].DayOffset)
	assert.Equal(t, -5, steps[4].DayOffset)
	assert.Equal(t, -3, steps[5].DayOffset)
	assert.Equal(t, -1, steps[6].DayOffset)
	assert.Equal(t, -14, steps[7].DayOffset) // beyond the table
}

func TestMaterializeRejectsExistingPlan(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Read the Handbook", 1)
	configs := []StepConfig{{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}}}

	_, err := MaterializePlan(db, instructor, configs)
	require.NoError(t, err)

	_, err = MaterializePlan(db, instructor, configs)
	assert.ErrorIs(t, err, ErrPlanExists)
}

func TestMaterializeRejectsInvalidConfigs(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)
	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Read the Handbook", 1)

	cases := map[string][]StepConfig{
		"empty":              {},
		"no modules":         {{StepTemplateID: tmpl.ID, ModuleIDs: nil}},
		"zero template":      {{StepTemplateID: 0, ModuleIDs: []uint{module.ID}}},
		"duplicate template": {{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}}, {StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}}},
	}

	for name, configs := range cases {
		_, err := MaterializePlan(db, instructor, configs)
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}
}

func TestMaterializeDefaultPlanSkipsByClassification(t *testing.T) {
	db := newTestDB(t)

	module := createDocumentModule(t, db, "Read the Handbook", 1)
	var templates []*catalog.StepTemplate
	for i := 1; i <= 4; i++ {
		tmpl := createTemplate(t, db, "Default Step", nil)
		tmpl.OrderIndex = i
		require.NoError(t, db.Save(tmpl).Error)
		require.NoError(t, db.Create(&catalog.StepTemplateModule{
			StepTemplateID:  tmpl.ID,
			ContentModuleID: module.ID,
			OrderIndex:      1,
		}).Error)
		templates = append(templates, tmpl)
	}

	// For RETURNING, position 1 is SELF_CHECK and position 2 is SKIP. The
	// first template takes position 1; every later template is evaluated at
	// position 2, skips, and consumes no position.
	instructor := createInstructor(t, db, models.ClassificationReturning)

	report, err := MaterializeDefaultPlan(db, instructor)
	require.NoError(t, err)
	assert.Equal(t, 1, report.CreatedSteps)

	steps := loadSteps(t, db, instructor.ID)
	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].Position)
	assert.Equal(t, catalog.StepSelfCheck, steps[0].Classification)
	require.NotNil(t, steps[0].StepTemplateID)
	assert.Equal(t, templates[0].ID, *steps[0].StepTemplateID)
}

func TestTaskContentIsASnapshot(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Read the Handbook", 1)

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}},
	})
	require.NoError(t, err)

	// Edit the template after materialization
	module.Name = "Renamed Handbook"
	module.BodyContent = "Entirely new body"
	require.NoError(t, db.Save(module).Error)

	steps := loadSteps(t, db, instructor.ID)
	require.Len(t, steps[0].Tasks, 1)
	task := steps[0].Tasks[0]
	assert.Equal(t, "Read the Handbook", task.Title)
	assert.Equal(t, "Read this carefully.", task.BodyContent)
	assert.Equal(t, module.ID, task.OriginModuleID)

	var questions []plan.TaskQuizQuestion
	require.NoError(t, db.Where("task_id = ?", task.ID).Find(&questions).Error)
	assert.Len(t, questions, 1)
}
