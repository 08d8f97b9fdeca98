package engine

import (
	"onboard/models/catalog"
	"onboard/models/plan"

	"gorm.io/gorm"
)

// FileUploadResult reports the state of a file-upload task after one stored
// upload.
type FileUploadResult struct {
	StoredFiles   int  `json:"stored_files"`
	RequiredFiles int  `json:"required_files"`
	TaskCompleted bool `json:"task_completed"`
}

// RecordFileUpload registers one successfully stored file against a
// FILE_UPLOAD task. The task completes once the count of stored files meets
// the count of its file requirements.
func RecordFileUpload(db *gorm.DB, task *plan.Task, fileName, filePath string, fileSize int64) (*FileUploadResult, error) {
	if task.Kind != catalog.KindFileUpload {
		return nil, ErrWrongTaskKind
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	upload := plan.TaskFileUpload{
		TaskID:   task.ID,
		FileName: fileName,
		FilePath: filePath,
		FileSize: fileSize,
	}
	if err := tx.Create(&upload).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var stored int64
	var required int64
	tx.Model(&plan.TaskFileUpload{}).
		Where("task_id = ? AND is_deleted = ?", task.ID, false).
		Count(&stored)
	tx.Model(&plan.TaskFileRequirement{}).
		Where("task_id = ? AND is_deleted = ?", task.ID, false).
		Count(&required)

	result := &FileUploadResult{
		StoredFiles:   int(stored),
		RequiredFiles: int(required),
	}

	if required > 0 && stored >= required && task.Status != plan.StatusCompleted {
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
