package dto

import (
	"time"

	"github.com/S-Borna/Intelliplan/internal/model"
)

type ConsultantDTO struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	Title             string                 `json:"title"`
	Skills            []string               `json:"skills"`
	HourlyRate        float64                `json:"hourly_rate"`
	Status            model.ConsultantStatus `json:"status"`
	AvailabilityDate  *time.Time             `json:"availability_date"`
	CurrentCustomerID *string                `json:"current_customer_id"`
}
