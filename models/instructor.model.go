package models

import (
	"time"

	"gorm.io/gorm"
)

// Instructor classification (experience type)
const (
	ClassificationNewGrad     = "NEW_GRAD"
	ClassificationExperienced = "EXPERIENCED"
	ClassificationReturning   = "RETURNING"
)

// Instructor represents an onboarding instructor with their plan-level progress caches.
// CurrentStep and OverallProgress are denormalized and recomputed by the engine
// after every mutation; they are never written by callers directly.
type Instructor struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"index"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Classification  string    `json:"classification" gorm:"default:'NEW_GRAD'"`
	StartDate       time.Time `json:"start_date"`
	CurrentStep     int       `json:"current_step" gorm:"default:1"`
	OverallProgress int       `json:"overall_progress" gorm:"default:0"` // 0-100
	IsDeleted       bool      `gorm:"default:false"`
}
