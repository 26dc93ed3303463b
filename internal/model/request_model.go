package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestStatusDraft      RequestStatus = "draft"
	RequestStatusSubmitted  RequestStatus = "submitted"
	RequestStatusAnalyzing  RequestStatus = "analyzing"
	RequestStatusAssessed   RequestStatus = "assessed"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusRejected   RequestStatus = "rejected"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
	PriorityUrgent RequestPriority = "urgent"
)

type StaffingRequest struct {
	ID                  string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	CustomerID          string          `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	Title               string          `gorm:"type:varchar(300);not null" json:"title"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	RequiredSkills      string          `gorm:"type:text" json:"required_skills"` // JSON-encoded list
	NumberOfConsultants int             `gorm:"default:1" json:"number_of_consultants"`
	StartDate           *time.Time      `json:"start_date"`
	EndDate             *time.Time      `json:"end_date"`
	BudgetMaxHourly     *float64        `json:"budget_max_hourly"`
	Location            string          `gorm:"type:varchar(200)" json:"location"`
	RemoteOk            bool            `gorm:"default:false" json:"remote_ok"`
	Priority            RequestPriority `gorm:"type:varchar(20);default:medium" json:"priority"`
	Status              RequestStatus   `gorm:"type:varchar(20);default:submitted" json:"status"`

	// AI-enriched fields
	AISummary         string  `gorm:"type:text" json:"ai_summary"`
	AICategory        string  `gorm:"type:varchar(100)" json:"ai_category"`
	AIComplexityScore float64 `gorm:"type:float" json:"ai_complexity_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer   *Customer              `gorm:"foreignKey:CustomerID" json:"-"`
	Assessment *FeasibilityAssessment `gorm:"foreignKey:RequestID" json:"-"`
}

func (r *StaffingRequest) TableName() string {
	return "staffing_requests"
}

func (r *StaffingRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
