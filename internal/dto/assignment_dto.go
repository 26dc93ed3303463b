package dto

import (
	"time"

	"github.com/S-Borna/Intelliplan/internal/model"
)

type AssignmentDetailDTO struct {
	ID               string                 `json:"id"`
	RequestID        string                 `json:"request_id"`
	ConsultantID     string                 `json:"consultant_id"`
	ConsultantName   string                 `json:"consultant_name"`
	ConsultantTitle  string                 `json:"consultant_title"`
	ConsultantSkills []string               `json:"consultant_skills"`
	StartDate        time.Time              `json:"start_date"`
	EndDate          *time.Time             `json:"end_date"`
	HourlyRate       float64                `json:"hourly_rate"`
	Status           model.AssignmentStatus `json:"status"`
	CreatedAt        time.Time              `json:"created_at"`
}
