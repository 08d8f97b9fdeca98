package catalog

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Content kinds
const (
	KindDocument   = "DOCUMENT"  // document with an embedded quiz
	KindVideo      = "VIDEO"     // video with an embedded quiz
	KindFileUpload = "FILE_UPLOAD"
	KindChecklist  = "CHECKLIST"
)

// ContentModule is a reusable content definition owned by the catalog
type ContentModule struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description" gorm:"type:text"`
	Kind        string `json:"kind" gorm:"default:'DOCUMENT'"` // DOCUMENT, VIDEO, FILE_UPLOAD, CHECKLIST
	BodyContent string `json:"body_content" gorm:"type:text"`  // For DOCUMENT kind
	VideoURL    string `json:"video_url"`                      // For VIDEO kind
	VideoLength int    `json:"video_length"`                   // seconds, for VIDEO kind
	IsDeleted   bool   `gorm:"default:false"`

	QuizQuestions    []ModuleQuizQuestion    `json:"quiz_questions" gorm:"foreignKey:ContentModuleID"`
	ChecklistItems   []ModuleChecklistItem   `json:"checklist_items" gorm:"foreignKey:ContentModuleID"`
	FileRequirements []ModuleFileRequirement `json:"file_requirements" gorm:"foreignKey:ContentModuleID"`
}

// ModuleQuizQuestion is a quiz question embedded in a content module template
type ModuleQuizQuestion struct {
	gorm.Model
	ContentModuleID uint           `json:"content_module_id" gorm:"index;not null"`
	Prompt          string         `json:"prompt" gorm:"type:text"`
	Choices         datatypes.JSON `json:"choices"` // JSON array of choice strings
	AnswerIndex     int            `json:"answer_index"`
	OrderIndex      int            `json:"order_index" gorm:"default:0"`
	IsDeleted       bool           `gorm:"default:false"`
}

// ModuleChecklistItem is a checklist label embedded in a content module template
type ModuleChecklistItem struct {
	gorm.Model
	ContentModuleID uint   `json:"content_module_id" gorm:"index;not null"`
	Label           string `json:"label"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	IsDeleted       bool   `gorm:"default:false"`
}

// ModuleFileRequirement describes one file an instructor must upload for a
// FILE_UPLOAD module
type ModuleFileRequirement struct {
	gorm.Model
	ContentModuleID uint   `json:"content_module_id" gorm:"index;not null"`
	Label           string `json:"label"`
	AcceptedTypes   string `json:"accepted_types"` // comma separated extensions, e.g. ".pdf,.docx"
	IsDeleted       bool   `gorm:"default:false"`
}
