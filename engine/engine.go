// Package engine implements the onboarding plan core: materializing a plan of
// steps and tasks from catalog templates, reconciling a changed configuration
// against an existing plan without losing completion state, and recomputing the
// denormalized progress caches.
package engine

import "errors"

// StepConfig is one entry of an ordered plan configuration supplied by the PM
// surface: which step template to build and which content modules to enable
// for it, in display order.
type StepConfig struct {
	StepTemplateID uint   `json:"step_template_id"`
	ModuleIDs      []uint `json:"module_ids"`
}

// Report describes what a materialization or reconciliation actually did.
// Missing content modules do not fail the call; their ids are reported here so
// the caller can surface the partial result instead of discovering it later.
type Report struct {
	CreatedSteps      int      `json:"created_steps"`
	UpdatedSteps      int      `json:"updated_steps"`
	DeletedSteps      int      `json:"deleted_steps"`
	DeletedStepTitles []string `json:"deleted_step_titles,omitempty"`
	SkippedModuleIDs  []uint   `json:"skipped_module_ids,omitempty"`
}

var (
	// ErrStepTemplateNotFound aborts the whole call; no partial plan is written.
	ErrStepTemplateNotFound = errors.New("step template not found")
	// ErrInstructorNotFound means the target instructor does not exist.
	ErrInstructorNotFound = errors.New("instructor not found")
	// ErrPlanExists is returned when materializing over a non-empty plan.
	ErrPlanExists = errors.New("instructor already has an onboarding plan")
	// ErrInvalidConfig rejects malformed configurations before any write.
	ErrInvalidConfig = errors.New("invalid plan configuration")
	// ErrWrongTaskKind is returned when an operation targets a task of another content kind.
	ErrWrongTaskKind = errors.New("operation does not apply to this task kind")
)

// validateConfigs rejects malformed configurations up front: an empty plan, an
// entry with no enabled modules, or the same step template listed twice.
func validateConfigs(configs []StepConfig) error {
	if len(configs) == 0 {
		return ErrInvalidConfig
	}
	seen := make(map[uint]bool, len(configs))
	for _, cfg := range configs {
		if cfg.StepTemplateID == 0 || len(cfg.ModuleIDs) == 0 {
			return ErrInvalidConfig
		}
		if seen[cfg.StepTemplateID] {
			return ErrInvalidConfig
		}
		seen[cfg.StepTemplateID] = true
	}
	return nil
}
