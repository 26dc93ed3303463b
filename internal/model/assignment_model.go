package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentProposed  AssignmentStatus = "proposed"
	AssignmentSent      AssignmentStatus = "sent"
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentRejected  AssignmentStatus = "rejected"
	AssignmentActive    AssignmentStatus = "active"
	AssignmentEnded     AssignmentStatus = "ended"
)

// Assignment links one request and one consultant. HourlyRate is snapshotted
// from the consultant at creation time.
type Assignment struct {
	ID           string           `gorm:"type:varchar(64);primaryKey" json:"id"`
	RequestID    string           `gorm:"type:varchar(64);not null;index" json:"request_id"`
	ConsultantID string           `gorm:"type:varchar(64);not null;index" json:"consultant_id"`
	StartDate    time.Time        `gorm:"not null" json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`
	HourlyRate   float64          `gorm:"not null" json:"hourly_rate"`
	Status       AssignmentStatus `gorm:"type:varchar(20);default:proposed" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (a *Assignment) TableName() string {
	return "assignments"
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
