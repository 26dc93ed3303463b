package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplianceRule stores configurable rules for display and audit. The
// checks the engine actually runs are the built-in list in
// service.ComplianceService; these rows describe them to operators.
type ComplianceRule struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	RuleType    string    `gorm:"type:varchar(100)" json:"rule_type"` // contract, regulation, policy
	Condition   string    `gorm:"type:text" json:"condition"`         // JSON-encoded rule parameters
	Severity    string    `gorm:"type:varchar(50);default:warning" json:"severity"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *ComplianceRule) TableName() string {
	return "compliance_rules"
}

func (r *ComplianceRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
