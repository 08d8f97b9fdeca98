package models

import "gorm.io/gorm"

// SupportTicket is a help request raised by an instructor during onboarding
type SupportTicket struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Subject   string `json:"subject"`
	Message   string `json:"message" gorm:"type:text"`
	Status    string `json:"status" gorm:"default:'OPEN'"` // OPEN, ANSWERED, CLOSED
	Reply     string `json:"reply" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}
