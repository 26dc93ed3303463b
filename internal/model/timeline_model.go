package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimelineEvent is an append-only audit-log entry attached to a request.
// Rows are never updated or deleted.
type TimelineEvent struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	RequestID   string    `gorm:"type:varchar(64);not null;index" json:"request_id"`
	EventType   string    `gorm:"type:varchar(100);not null" json:"event_type"`
	Title       string    `gorm:"type:varchar(300);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Actor       string    `gorm:"type:varchar(200)" json:"actor"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *TimelineEvent) TableName() string {
	return "timeline_events"
}

func (e *TimelineEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
