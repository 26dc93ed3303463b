package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultantStatus string

const (
	ConsultantAvailable  ConsultantStatus = "available"
	ConsultantAssigned   ConsultantStatus = "assigned"
	ConsultantOnLeave    ConsultantStatus = "on_leave"
	ConsultantEndingSoon ConsultantStatus = "ending_soon"
)

type Consultant struct {
	ID                string           `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name              string           `gorm:"type:varchar(200);not null" json:"name"`
	Email             string           `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	Title             string           `gorm:"type:varchar(200)" json:"title"`
	Skills            string           `gorm:"type:text" json:"skills"` // JSON-encoded list
	HourlyRate        float64          `gorm:"default:0" json:"hourly_rate"`
	Status            ConsultantStatus `gorm:"type:varchar(20);default:available" json:"status"`
	AvailabilityDate  *time.Time       `json:"availability_date"`
	CurrentCustomerID *string          `gorm:"type:varchar(64)" json:"current_customer_id"`
	CreatedAt         time.Time        `json:"created_at"`
}

func (c *Consultant) TableName() string {
	return "consultants"
}

func (c *Consultant) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
