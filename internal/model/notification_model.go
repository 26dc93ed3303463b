package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationUrgent  NotificationType = "urgent"
)

type Notification struct {
	ID               string           `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID           string           `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Title            string           `gorm:"type:varchar(300);not null" json:"title"`
	Message          string           `gorm:"type:text;not null" json:"message"`
	NotificationType NotificationType `gorm:"type:varchar(50);default:info" json:"notification_type"`
	IsRead           bool             `gorm:"default:false" json:"is_read"`
	Link             string           `gorm:"type:varchar(500)" json:"link"` // optional deep-link to a request
	CreatedAt        time.Time        `json:"created_at"`
}

func (n *Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
