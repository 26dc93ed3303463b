package dto

import (
	"time"

	"github.com/S-Borna/Intelliplan/internal/model"
)

type CreateRequestInput struct {
	CustomerID          string     `json:"customer_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	RequiredSkills      []string   `json:"required_skills"`
	NumberOfConsultants int        `json:"number_of_consultants"`
	StartDate           *time.Time `json:"start_date"`
	EndDate             *time.Time `json:"end_date"`
	BudgetMaxHourly     *float64   `json:"budget_max_hourly"`
	Location            string     `json:"location"`
	RemoteOk            bool       `json:"remote_ok"`
	Priority            string     `json:"priority"`
}

type UpdateRequestStatusInput struct {
	Status string `json:"status"`
}

// RequestListItem is the list-view projection: the stored request plus
// the customer's company name and the assessment headline, when present.
type RequestListItem struct {
	ID                  string                `json:"id"`
	CustomerID          string                `json:"customer_id"`
	CompanyName         string                `json:"company_name"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	RequiredSkills      []string              `json:"required_skills"`
	NumberOfConsultants int                   `json:"number_of_consultants"`
	StartDate           *time.Time            `json:"start_date"`
	EndDate             *time.Time            `json:"end_date"`
	BudgetMaxHourly     *float64              `json:"budget_max_hourly"`
	Location            string                `json:"location"`
	RemoteOk            bool                  `json:"remote_ok"`
	Priority            model.RequestPriority `json:"priority"`
	Status              model.RequestStatus   `json:"status"`
	AISummary           string                `json:"ai_summary"`
	AICategory          string                `json:"ai_category"`
	AIComplexityScore   float64               `json:"ai_complexity_score"`
	FeasibilityRating   string                `json:"feasibility_rating,omitempty"`
	FeasibilityScore    *int                  `json:"feasibility_score,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
}

type RequestDetail struct {
	Request     RequestListItem            `json:"request"`
	Assessment  *AssessmentDTO             `json:"assessment"`
	Matching    []MatchingConsultantDTO    `json:"matching_consultants"`
	Actions     []model.CoordinationAction `json:"actions"`
	Timeline    []model.TimelineEvent      `json:"timeline"`
	Assignments []AssignmentDetailDTO      `json:"assignments"`
}
