package dto

import (
	"time"

	"github.com/S-Borna/Intelliplan/internal/model"
)

type AssessmentDTO struct {
	ID                string                  `json:"id"`
	RequestID         string                  `json:"request_id"`
	OverallRating     model.FeasibilityRating `json:"overall_rating"`
	ConfidenceScore   float64                 `json:"confidence_score"`
	AvailabilityScore float64                 `json:"availability_score"`
	SkillsMatchScore  float64                 `json:"skills_match_score"`
	BudgetFitScore    float64                 `json:"budget_fit_score"`
	TimelineScore     float64                 `json:"timeline_score"`
	ComplianceScore   float64                 `json:"compliance_score"`
	Risks             []string                `json:"risks"`
	Recommendations   []string                `json:"recommendations"`
	Alternatives      []string                `json:"alternatives"`
	CreatedAt         time.Time               `json:"created_at"`
}

// MatchingConsultantDTO is a pool consultant scored against one request.
type MatchingConsultantDTO struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Title          string                 `json:"title"`
	Skills         []string               `json:"skills"`
	HourlyRate     float64                `json:"hourly_rate"`
	Status         model.ConsultantStatus `json:"status"`
	MatchScore     int                    `json:"match_score"`
	MatchingSkills []string               `json:"matching_skills"`
	MissingSkills  []string               `json:"missing_skills"`
}
