package plan

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Task is a per-instructor work item owned by an OnboardingStep. All content
// fields are snapshot copies of the originating module at creation time.
// OriginModuleID records which catalog module produced the task and never
// changes after creation; the reconciler matches tasks on it.
type Task struct {
	gorm.Model
	StepID         uint   `json:"step_id" gorm:"index;not null"`
	OriginModuleID uint   `json:"origin_module_id" gorm:"index;not null"`
	Title          string `json:"title"`
	Description    string `json:"description" gorm:"type:text"`
	Kind           string `json:"kind"`                          // DOCUMENT, VIDEO, FILE_UPLOAD, CHECKLIST
	BodyContent    string `json:"body_content" gorm:"type:text"` // For DOCUMENT kind
	VideoURL       string `json:"video_url"`                     // For VIDEO kind
	VideoLength    int    `json:"video_length"`                  // seconds, for VIDEO kind
	Enabled        bool   `json:"enabled" gorm:"default:true"`   // disabled tasks are hidden but retained
	OrderIndex     int    `json:"order_index" gorm:"default:0"`
	Status         string `json:"status" gorm:"default:'PENDING'"` // PENDING, COMPLETED
	IsDeleted      bool   `gorm:"default:false"`

	QuizQuestions    []TaskQuizQuestion    `json:"quiz_questions" gorm:"foreignKey:TaskID"`
	ChecklistItems   []TaskChecklistItem   `json:"checklist_items" gorm:"foreignKey:TaskID"`
	FileRequirements []TaskFileRequirement `json:"file_requirements" gorm:"foreignKey:TaskID"`
}

// TaskQuizQuestion is a task's private copy of a module quiz question
type TaskQuizQuestion struct {
	gorm.Model
	TaskID      uint           `json:"task_id" gorm:"index;not null"`
	Prompt      string         `json:"prompt" gorm:"type:text"`
	Choices     datatypes.JSON `json:"choices"` // JSON array of choice strings
	AnswerIndex int            `json:"-"`       // never serialized to the instructor
	OrderIndex  int            `json:"order_index" gorm:"default:0"`
	IsDeleted   bool           `gorm:"default:false"`
}

// TaskChecklistItem is a task's private copy of a module checklist item
type TaskChecklistItem struct {
	gorm.Model
	TaskID     uint   `json:"task_id" gorm:"index;not null"`
	Label      string `json:"label"`
	IsChecked  bool   `json:"is_checked" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// TaskFileRequirement is a task's private copy of a module file requirement
type TaskFileRequirement struct {
	gorm.Model
	TaskID        uint   `json:"task_id" gorm:"index;not null"`
	Label         string `json:"label"`
	AcceptedTypes string `json:"accepted_types"`
	IsDeleted     bool   `gorm:"default:false"`
}

// QuizAnswer stores an instructor's latest answer to one quiz question.
// Answers are upserted per question; a resubmission overwrites the previous row.
type QuizAnswer struct {
	gorm.Model
	TaskID         uint `json:"task_id" gorm:"index;not null;uniqueIndex:idx_task_question"`
	QuizQuestionID uint `json:"quiz_question_id" gorm:"not null;uniqueIndex:idx_task_question"`
	SelectedIndex  int  `json:"selected_index"`
	IsCorrect      bool `json:"is_correct" gorm:"default:false"`
}

// TaskFileUpload records one successfully stored file for a FILE_UPLOAD task
type TaskFileUpload struct {
	gorm.Model
	TaskID    uint   `json:"task_id" gorm:"index;not null"`
	FileName  string `json:"file_name"`
	FilePath  string `json:"file_path"`
	FileSize  int64  `json:"file_size"`
	IsDeleted bool   `gorm:"default:false"`
}
