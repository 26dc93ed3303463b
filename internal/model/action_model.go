package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActionStatus string

const (
	ActionPending    ActionStatus = "pending"
	ActionInProgress ActionStatus = "in_progress"
	ActionCompleted  ActionStatus = "completed"
	ActionFailed     ActionStatus = "failed"
	ActionSkipped    ActionStatus = "skipped"
)

// CoordinationAction is one step of a request's action plan. Steps execute
// strictly in ascending Order.
type CoordinationAction struct {
	ID          string       `gorm:"type:varchar(64);primaryKey" json:"id"`
	RequestID   string       `gorm:"type:varchar(64);not null;index" json:"request_id"`
	ActionType  string       `gorm:"type:varchar(100);not null" json:"action_type"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Status      ActionStatus `gorm:"type:varchar(20);default:pending" json:"status"`
	AssignedTo  string       `gorm:"type:varchar(200)" json:"assigned_to"`
	Result      string       `gorm:"type:text" json:"result"`
	Order       int          `gorm:"column:exec_order;default:0" json:"order"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at"`
}

func (a *CoordinationAction) TableName() string {
	return "coordination_actions"
}

func (a *CoordinationAction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
