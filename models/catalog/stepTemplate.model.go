package catalog

import "gorm.io/gorm"

// Step classification values returned by the classification lookup
const (
	StepPMLed     = "PM_LED"
	StepSelfCheck = "SELF_CHECK"
	StepDelayed   = "DELAYED"
	StepSkip      = "SKIP"
)

// StepTemplate is a reusable step definition owned by the catalog.
// Per-instructor steps copy its fields at materialization time; later edits to
// the template do not touch existing plans.
type StepTemplate struct {
	gorm.Model
	Title            string `json:"title"`
	Emoji            string `json:"emoji"`
	Description      string `json:"description" gorm:"type:text"`
	DefaultDayOffset *int   `json:"default_day_offset"` // days relative to start date, nil = use position table
	Classification   string `json:"classification"`     // hint only, resolved per instructor at build time
	OrderIndex       int    `json:"order_index" gorm:"default:0"`
	IsActive         bool   `json:"is_active" gorm:"default:true"`
	IsDeleted        bool   `gorm:"default:false"`
}

// StepTemplateModule links a step template to the modules enabled for it by
// default. Only the legacy initialization path reads these links; the
// configuration-driven path receives module ids from the caller.
type StepTemplateModule struct {
	gorm.Model
	StepTemplateID  uint `json:"step_template_id" gorm:"index;not null"`
	ContentModuleID uint `json:"content_module_id" gorm:"index;not null"`
	OrderIndex      int  `json:"order_index" gorm:"default:0"`
	IsDeleted       bool `gorm:"default:false"`
}
