package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractTypeNone is the sentinel for customers without a framework
// agreement; the contract compliance rule fails on it.
const ContractTypeNone = "none"

type Customer struct {
	ID           string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Company      string    `gorm:"type:varchar(200);not null" json:"company"`
	Email        string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	Industry     string    `gorm:"type:varchar(100)" json:"industry"`
	ContractType string    `gorm:"type:varchar(50);default:standard" json:"contract_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
