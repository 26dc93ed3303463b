package usecase

import (
	"math"

	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/util"
)

type DashboardUsecase struct {
	requestRepo    *repository.RequestRepository
	consultantRepo *repository.ConsultantRepository
}

func NewDashboardUsecase(requestRepo *repository.RequestRepository, consultantRepo *repository.ConsultantRepository) *DashboardUsecase {
	return &DashboardUsecase{requestRepo: requestRepo, consultantRepo: consultantRepo}
}

// Stats aggregates the overview numbers from the full request and
// consultant sets. Fine at demo scale; push into SQL aggregates if the
// tables ever grow past that.
func (uc *DashboardUsecase) Stats() (*dto.DashboardStats, error) {
	requests, err := uc.requestRepo.ListAll()
	if err != nil {
		return nil, err
	}
	consultants, err := uc.consultantRepo.ListAll()
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{TotalRequests: int64(len(requests))}

	var complianceSum float64
	var assessed, feasible int64
	for i := range requests {
		switch requests[i].Status {
		case model.RequestStatusSubmitted, model.RequestStatusAnalyzing, model.RequestStatusAssessed:
			stats.PendingRequests++
		case model.RequestStatusInProgress:
			stats.ActiveRequests++
		case model.RequestStatusCompleted:
			stats.CompletedRequests++
		}
		if a := requests[i].Assessment; a != nil {
			assessed++
			complianceSum += a.ComplianceScore
			if a.OverallRating == model.RatingHigh || a.OverallRating == model.RatingMedium {
				feasible++
			}
		}
	}
	if assessed > 0 {
		stats.AvgComplianceScore = math.Round(complianceSum/float64(assessed)*10) / 10
		stats.FeasibilityRate = math.Round(float64(feasible)/float64(assessed)*1000) / 10
	}

	stats.TotalConsultants = int64(len(consultants))
	for i := range consultants {
		if consultants[i].Status == model.ConsultantAvailable {
			stats.AvailableConsultants++
		}
	}

	return stats, nil
}

// Consultants returns the pool with skills parsed out of their list column.
func (uc *DashboardUsecase) Consultants() ([]dto.ConsultantDTO, error) {
	consultants, err := uc.consultantRepo.ListAll()
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConsultantDTO, 0, len(consultants))
	for i := range consultants {
		c := &consultants[i]
		out = append(out, dto.ConsultantDTO{
			ID:                c.ID,
			Name:              c.Name,
			Email:             c.Email,
			Title:             c.Title,
			Skills:            util.ParseList(c.Skills),
			HourlyRate:        c.HourlyRate,
			Status:            c.Status,
			AvailabilityDate:  c.AvailabilityDate,
			CurrentCustomerID: c.CurrentCustomerID,
		})
	}
	return out, nil
}
