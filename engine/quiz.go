package engine

import (
	"errors"

	"onboard/models/catalog"
	"onboard/models/plan"

	"gorm.io/gorm"
)

// QuizAnswerInput is one answered question in a quiz submission.
type QuizAnswerInput struct {
	QuestionID    uint `json:"question_id"`
	SelectedIndex int  `json:"selected_index"`
}

// QuizResult reports the outcome of one submission.
type QuizResult struct {
	CorrectAnswers int  `json:"correct_answers"`
	TotalQuestions int  `json:"total_questions"`
	TaskCompleted  bool `json:"task_completed"`
}

// SubmitQuiz evaluates one quiz submission against a task's private question
// copies. Answers are upserted per question, so a resubmission overwrites the
// previous answer rather than accumulating. The task transitions to COMPLETED
// only when this submission answers every question correctly; the transition is
// one-way.
func SubmitQuiz(db *gorm.DB, task *plan.Task, answers []QuizAnswerInput) (*QuizResult, error) {
	if task.Kind != catalog.KindDocument && task.Kind != catalog.KindVideo {
		return nil, ErrWrongTaskKind
	}

	var questions []plan.TaskQuizQuestion
	if err := db.Where("task_id = ? AND is_deleted = ?", task.ID, false).
		Order("order_index asc").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrWrongTaskKind
	}

	selected := make(map[uint]int, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedIndex
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	result := &QuizResult{TotalQuestions: len(questions)}
	answeredAll := true

	for _, q := range questions {
		selectedIndex, answered := selected[q.ID]
		if !answered {
			answeredAll = false
			continue
		}

		isCorrect := selectedIndex == q.AnswerIndex
		if isCorrect {
			result.CorrectAnswers++
		}

		if err := upsertAnswer(tx, task.ID, q.ID, selectedIndex, isCorrect); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if answeredAll && result.CorrectAnswers == len(questions) && task.Status != plan.StatusCompleted {
		task.Status = plan.StatusCompleted
		if err := tx.Save(task).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		var step plan.OnboardingStep
		if err := tx.First(&step, task.StepID).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := recomputeProgress(tx, step.InstructorID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	result.TaskCompleted = task.Status == plan.StatusCompleted

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return result, nil
}

// upsertAnswer stores the latest answer for one question of one task.
func upsertAnswer(tx *gorm.DB, taskID, questionID uint, selectedIndex int, isCorrect bool) error {
	var answer plan.QuizAnswer
	err := tx.Where("task_id = ? AND quiz_question_id = ?", taskID, questionID).First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		answer = plan.QuizAnswer{
			TaskID:         taskID,
			QuizQuestionID: questionID,
			SelectedIndex:  selectedIndex,
			IsCorrect:      isCorrect,
		}
		return tx.Create(&answer).Error
	}
	if err != nil {
		return err
	}
	answer.SelectedIndex = selectedIndex
	answer.IsCorrect = isCorrect
	return tx.Save(&answer).Error
}
