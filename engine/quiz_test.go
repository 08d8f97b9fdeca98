package engine

import (
	"testing"

	"onboard/models"
	"onboard/models/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuizPartialThenFull(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Read the Handbook", 2)

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	task := steps[0].Tasks[0]

	var questions []plan.TaskQuizQuestion
	require.NoError(t, db.Where("task_id = ?", task.ID).Order("order_index asc").Find(&questions).Error)
	require.Len(t, questions, 2)

	// One right, one wrong: the task stays PENDING
	result, err := SubmitQuiz(db, &task, []QuizAnswerInput{
		{QuestionID: questions[0].ID, SelectedIndex: 0},
		{QuestionID: questions[1].ID, SelectedIndex: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.False(t, result.TaskCompleted)

	var reloaded plan.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, plan.StatusPending, reloaded.Status)

	// A later submission answering everything correctly still completes it
	result, err = SubmitQuiz(db, &task, []QuizAnswerInput{
		{QuestionID: questions[0].ID, SelectedIndex: 0},
		{QuestionID: questions[1].ID, SelectedIndex: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.True(t, result.TaskCompleted)

	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, plan.StatusCompleted, reloaded.Status)

	// Step and instructor caches followed the completion
	steps = loadSteps(t, db, instructor.ID)
	assert.Equal(t, 1, steps[0].CompletedTasks)
	assert.Equal(t, plan.StatusCompleted, steps[0].Status)
	assert.Equal(t, 100, reloadInstructor(t, db, instructor.ID).OverallProgress)
}

func TestSubmitQuizUpsertsAnswersPerQuestion(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Read the Handbook", 2)

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	task := steps[0].Tasks[0]

	var questions []plan.TaskQuizQuestion
	require.NoError(t, db.Where("task_id = ?", task.ID).Order("order_index asc").Find(&questions).Error)

	_, err = SubmitQuiz(db, &task, []QuizAnswerInput{
		{QuestionID: questions[0].ID, SelectedIndex: 1},
	})
	require.NoError(t, err)

	_, err = SubmitQuiz(db, &task, []QuizAnswerInput{
		{QuestionID: questions[0].ID, SelectedIndex: 0},
		{QuestionID: questions[1].ID, SelectedIndex: 1},
	})
	require.NoError(t, err)

	// One row per question, holding the latest answer
	var answers []plan.QuizAnswer
	require.NoError(t, db.Where("task_id = ?", task.ID).Order("quiz_question_id asc").Find(&answers).Error)
	require.Len(t, answers, 2)
	assert.Equal(t, 0, answers[0].SelectedIndex)
	assert.True(t, answers[0].IsCorrect)
	assert.Equal(t, 1, answers[1].SelectedIndex)
	assert.False(t, answers[1].IsCorrect)
}

func TestSubmitQuizPartialSubmissionNeverCompletes(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createDocumentModule(t, db, "Read the Handbook", 2)

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	task := steps[0].Tasks[0]

	var questions []plan.TaskQuizQuestion
	require.NoError(t, db.Where("task_id = ?", task.ID).Order("order_index asc").Find(&questions).Error)

	// Both answers across two submissions are correct, but never within one
	// submission, so the task stays PENDING
	result, err := SubmitQuiz(db, &task, []QuizAnswerInput{
		{QuestionID: questions[0].ID, SelectedIndex: 0},
	})
	require.NoError(t, err)
	assert.False(t, result.TaskCompleted)

	result, err = SubmitQuiz(db, &task, []QuizAnswerInput{
		{QuestionID: questions[1].ID, SelectedIndex: 0},
	})
	require.NoError(t, err)
	assert.False(t, result.TaskCompleted)

	var reloaded plan.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, plan.StatusPending, reloaded.Status)
}

func TestSubmitQuizRejectsNonQuizTasks(t *testing.T) {
	db := newTestDB(t)
	instructor := createInstructor(t, db, models.ClassificationNewGrad)

	tmpl := createTemplate(t, db, "Paperwork", nil)
	module := createChecklistModule(t, db, "Checklist", "One")

	_, err := MaterializePlan(db, instructor, []StepConfig{
		{StepTemplateID: tmpl.ID, ModuleIDs: []uint{module.ID}},
	})
	require.NoError(t, err)

	steps := loadSteps(t, db, instructor.ID)
	task := steps[0].Tasks[0]

	_, err = SubmitQuiz(db, &task, []QuizAnswerInput{{QuestionID: 1, SelectedIndex: 0}})
	assert.ErrorIs(t, err, ErrWrongTaskKind)
}
