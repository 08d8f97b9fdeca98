package plan

import "gorm.io/gorm"

// Step / task statuses
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// OnboardingStep is a per-instructor step materialized from a step template.
// Title/emoji/description/day-offset are copies taken at build time, not live
// links to the template. TotalTasks/CompletedTasks/Status are caches owned by
// the progress aggregator.
type OnboardingStep struct {
	gorm.Model
	InstructorID   uint   `json:"instructor_id" gorm:"index;not null"`
	StepTemplateID *uint  `json:"step_template_id" gorm:"index"` // nil for hand-built steps
	Position       int    `json:"position"`                      // 1-based, dense per instructor
	Title          string `json:"title"`
	Emoji          string `json:"emoji"`
	Description    string `json:"description" gorm:"type:text"`
	DayOffset      int    `json:"day_offset"` // days relative to instructor start date
	Classification string `json:"classification"`
	TotalTasks     int    `json:"total_tasks" gorm:"default:0"`
	CompletedTasks int    `json:"completed_tasks" gorm:"default:0"`
	Status         string `json:"status" gorm:"default:'PENDING'"`
	IsDeleted      bool   `gorm:"default:false"`

	Tasks []Task `json:"tasks" gorm:"foreignKey:StepID"`
}
