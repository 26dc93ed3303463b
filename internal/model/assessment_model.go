package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeasibilityRating string

const (
	RatingHigh        FeasibilityRating = "high"
	RatingMedium      FeasibilityRating = "medium"
	RatingLow         FeasibilityRating = "low"
	RatingNotFeasible FeasibilityRating = "not_feasible"
)

// FeasibilityAssessment is one-to-one with StaffingRequest. Re-running an
// assessment replaces the prior row; no history is kept.
type FeasibilityAssessment struct {
	ID        string `gorm:"type:varchar(64);primaryKey" json:"id"`
	RequestID string `gorm:"type:varchar(64);not null;uniqueIndex" json:"request_id"`

	OverallRating   FeasibilityRating `gorm:"type:varchar(20);not null" json:"overall_rating"`
	ConfidenceScore float64           `gorm:"default:0" json:"confidence_score"` // 0-1

	// Sub-scores (0-100)
	AvailabilityScore float64 `gorm:"default:0" json:"availability_score"`
	SkillsMatchScore  float64 `gorm:"default:0" json:"skills_match_score"`
	BudgetFitScore    float64 `gorm:"default:0" json:"budget_fit_score"`
	TimelineScore     float64 `gorm:"default:0" json:"timeline_score"`
	ComplianceScore   float64 `gorm:"default:0" json:"compliance_score"`

	MatchingConsultants string `gorm:"type:text" json:"matching_consultants"` // JSON list of consultant IDs
	Risks               string `gorm:"type:text" json:"risks"`                // JSON list
	Recommendations     string `gorm:"type:text" json:"recommendations"`      // JSON list
	Alternatives        string `gorm:"type:text" json:"alternatives"`         // JSON list

	CreatedAt time.Time `json:"created_at"`
}

func (a *FeasibilityAssessment) TableName() string {
	return "feasibility_assessments"
}

func (a *FeasibilityAssessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
