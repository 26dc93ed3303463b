package usecase

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/service"
	"github.com/S-Borna/Intelliplan/internal/util"
	"gorm.io/gorm"
)

type subScore struct {
	Score float64
	Risks []string
}

// FeasibilityUsecase runs the full feasibility assessment: five sub-scores
// over the consultant pool, an overall rating, matching candidates, risks,
// recommendations and alternatives. Persisting replaces any prior
// assessment for the request.
type FeasibilityUsecase struct {
	db             *gorm.DB
	requestRepo    *repository.RequestRepository
	consultantRepo *repository.ConsultantRepository
	assessmentRepo *repository.AssessmentRepository
	timelineRepo   *repository.TimelineRepository
	analyzer       service.AnalyzerServiceInterface
	compliance     service.ComplianceServiceInterface
}

func NewFeasibilityUsecase(
	db *gorm.DB,
	requestRepo *repository.RequestRepository,
	consultantRepo *repository.ConsultantRepository,
	assessmentRepo *repository.AssessmentRepository,
	timelineRepo *repository.TimelineRepository,
	analyzer service.AnalyzerServiceInterface,
	compliance service.ComplianceServiceInterface,
) *FeasibilityUsecase {
	return &FeasibilityUsecase{
		db:             db,
		requestRepo:    requestRepo,
		consultantRepo: consultantRepo,
		assessmentRepo: assessmentRepo,
		timelineRepo:   timelineRepo,
		analyzer:       analyzer,
		compliance:     compliance,
	}
}

func (uc *FeasibilityUsecase) Assess(requestID string) (*model.FeasibilityAssessment, error) {
	request, err := uc.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request %s: %w", requestID, ErrNotFound)
		}
		return nil, err
	}

	request.Status = model.RequestStatusAnalyzing

	requiredSkills := deriveRequiredSkills(uc.analyzer, request)

	consultants, err := uc.consultantRepo.ListAll()
	if err != nil {
		return nil, err
	}

	availability := uc.assessAvailability(consultants, request)
	skillsMatch := uc.assessSkillsMatch(consultants, requiredSkills)
	budget := uc.assessBudget(consultants, request.BudgetMaxHourly)
	timeline := uc.assessTimeline(request)
	compliance := uc.compliance.CheckRequest(request, consultants)

	matchingIDs := uc.findMatchingConsultants(consultants, requiredSkills, request)

	scores := service.ComponentScores{
		Availability: availability.Score,
		Skills:       skillsMatch.Score,
		Budget:       budget.Score,
		Timeline:     timeline.Score,
		Compliance:   compliance.Score,
	}
	rating, confidence := uc.calculateOverall(scores, len(matchingIDs), request.NumberOfConsultants)

	// Timeline risks stay out of the aggregate list.
	risks := concat(availability.Risks, skillsMatch.Risks, budget.Risks, compliance.Risks)

	recommendations := uc.analyzer.Recommendations(scores, rating)
	alternatives := uc.suggestAlternatives(scores)

	assessment := &model.FeasibilityAssessment{
		RequestID:           requestID,
		OverallRating:       rating,
		ConfidenceScore:     confidence,
		AvailabilityScore:   scores.Availability,
		SkillsMatchScore:    scores.Skills,
		BudgetFitScore:      scores.Budget,
		TimelineScore:       scores.Timeline,
		ComplianceScore:     scores.Compliance,
		MatchingConsultants: util.EncodeList(matchingIDs),
		Risks:               util.EncodeList(risks),
		Recommendations:     util.EncodeList(recommendations),
		Alternatives:        util.EncodeList(alternatives),
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := uc.assessmentRepo.WithTx(tx).DeleteByRequestID(requestID); err != nil {
			return err
		}
		if err := uc.assessmentRepo.WithTx(tx).Create(assessment); err != nil {
			return err
		}

		request.Status = model.RequestStatusAssessed
		if err := uc.requestRepo.WithTx(tx).Save(request); err != nil {
			return err
		}

		return uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   requestID,
			EventType:   "assessment_completed",
			Title:       "Feasibility assessment completed",
			Description: fmt.Sprintf("Overall rating: %s (confidence: %.0f%%)", rating, confidence*100),
			Actor:       "AI Engine",
		})
	})
	if err != nil {
		return nil, err
	}

	return assessment, nil
}

func (uc *FeasibilityUsecase) assessAvailability(consultants []model.Consultant, request *model.StaffingRequest) subScore {
	totalAvailable := 0
	for _, c := range consultants {
		if c.Status == model.ConsultantAvailable || c.Status == model.ConsultantEndingSoon {
			totalAvailable++
		}
	}

	needed := request.NumberOfConsultants
	if needed < 1 {
		needed = 1
	}
	ratio := math.Min(float64(totalAvailable)/float64(needed), 1.0)

	var risks []string
	if totalAvailable < needed {
		risks = append(risks, fmt.Sprintf("Only %d consultants available, %d needed", totalAvailable, needed))
	}
	if totalAvailable == 0 {
		risks = append(risks, "No consultants currently available")
	}

	return subScore{Score: math.Round(ratio * 100), Risks: risks}
}

func (uc *FeasibilityUsecase) assessSkillsMatch(consultants []model.Consultant, requiredSkills []string) subScore {
	if len(requiredSkills) == 0 {
		return subScore{Score: 80, Risks: []string{"No specific skills requested — broad matching"}}
	}

	bestMatch := 0.0
	for _, c := range consultants {
		ratio := skillMatchRatio(requiredSkills, util.ParseList(c.Skills))
		bestMatch = math.Max(bestMatch, ratio)
	}

	score := math.Round(bestMatch * 100)
	var risks []string
	if score < 50 {
		risks = append(risks, fmt.Sprintf("Best skills match is only %.0f%% — may need external recruitment", score))
	}

	return subScore{Score: score, Risks: risks}
}

func (uc *FeasibilityUsecase) assessBudget(consultants []model.Consultant, maxHourly *float64) subScore {
	if maxHourly == nil || *maxHourly == 0 {
		return subScore{Score: 70, Risks: []string{"No budget specified — assuming flexible"}}
	}

	affordable := 0
	var total float64
	for _, c := range consultants {
		total += c.HourlyRate
		if c.HourlyRate <= *maxHourly {
			affordable++
		}
	}

	poolSize := len(consultants)
	if poolSize < 1 {
		poolSize = 1
	}
	ratio := float64(affordable) / float64(poolSize)

	var risks []string
	if ratio < 0.3 {
		avgRate := total / float64(poolSize)
		risks = append(risks, fmt.Sprintf("Budget (%.0f/h) below average rate (%.0f/h)", *maxHourly, avgRate))
	}

	return subScore{Score: math.Round(ratio * 100), Risks: risks}
}

func (uc *FeasibilityUsecase) assessTimeline(request *model.StaffingRequest) subScore {
	if request.StartDate == nil {
		return subScore{Score: 70, Risks: []string{"No start date specified"}}
	}

	daysUntilStart := int(math.Floor(time.Until(*request.StartDate).Hours() / 24))

	var score float64
	var risks []string
	switch {
	case daysUntilStart < 0:
		score = 20
		risks = append(risks, "Start date is in the past")
	case daysUntilStart < 7:
		score = 40
		risks = append(risks, "Very tight timeline — less than 1 week")
	case daysUntilStart < 14:
		score = 60
		risks = append(risks, "Tight timeline — less than 2 weeks")
	case daysUntilStart < 30:
		score = 80
	default:
		score = 95
	}

	return subScore{Score: score, Risks: risks}
}

// findMatchingConsultants keeps pool iteration order; ranking by match
// score only happens when the list is enriched for display.
func (uc *FeasibilityUsecase) findMatchingConsultants(consultants []model.Consultant, requiredSkills []string, request *model.StaffingRequest) []string {
	matches := []string{}

	for _, c := range consultants {
		if c.Status != model.ConsultantAvailable && c.Status != model.ConsultantEndingSoon {
			continue
		}

		if len(requiredSkills) > 0 {
			if skillMatchRatio(requiredSkills, util.ParseList(c.Skills)) < 0.3 {
				continue
			}
		}

		if request.BudgetMaxHourly != nil && *request.BudgetMaxHourly > 0 && c.HourlyRate > *request.BudgetMaxHourly {
			continue
		}

		matches = append(matches, c.ID)
	}

	return matches
}

func (uc *FeasibilityUsecase) calculateOverall(scores service.ComponentScores, matchingCount, needed int) (model.FeasibilityRating, float64) {
	avg := (scores.Availability + scores.Skills + scores.Budget + scores.Timeline + scores.Compliance) / 5

	denom := needed
	if denom < 1 {
		denom = 1
	}
	confidence := math.Min(0.5+(float64(matchingCount)/float64(denom))*0.3+0.2, 1.0)
	confidence = math.Round(confidence*100) / 100

	var rating model.FeasibilityRating
	switch {
	case avg >= 75 && matchingCount >= needed:
		rating = model.RatingHigh
	case avg >= 50:
		rating = model.RatingMedium
	case avg >= 30:
		rating = model.RatingLow
	default:
		rating = model.RatingNotFeasible
	}

	return rating, confidence
}

func (uc *FeasibilityUsecase) suggestAlternatives(scores service.ComponentScores) []string {
	alternatives := []string{}

	if scores.Availability < 50 {
		alternatives = append(alternatives,
			"Consider a later start date to access more consultants",
			"Split the request into phases with staggered starts")
	}
	if scores.Skills < 50 {
		alternatives = append(alternatives,
			"Broaden skill requirements to include adjacent technologies",
			"Consider a mix of senior and junior consultants with mentoring")
	}
	if scores.Budget < 50 {
		alternatives = append(alternatives,
			"Negotiate a blended rate with mixed seniority levels",
			"Consider remote consultants for lower rates")
	}
	if scores.Timeline < 50 {
		alternatives = append(alternatives, "Start with partial team and scale up")
	}

	return alternatives
}

// deriveRequiredSkills reads the stored skill list, falling back to
// analyzer extraction when the request stores none. Synthetic
// "N+ years experience" entries are dropped from the fallback.
func deriveRequiredSkills(analyzer service.AnalyzerServiceInterface, request *model.StaffingRequest) []string {
	required := util.ParseList(request.RequiredSkills)
	if len(required) > 0 {
		return required
	}
	analysis := analyzer.Analyze(request.Title, request.Description, nil)
	for _, skill := range analysis.ExtractedSkills {
		if !strings.Contains(strings.ToLower(skill), "experience") {
			required = append(required, skill)
		}
	}
	return required
}

// skillMatchRatio is the fraction of required skills present in the
// consultant's skill set, case-insensitive.
func skillMatchRatio(required, consultantSkills []string) float64 {
	if len(required) == 0 {
		return 0
	}
	have := make(map[string]bool, len(consultantSkills))
	for _, s := range consultantSkills {
		have[strings.ToLower(s)] = true
	}
	matched := 0
	for _, s := range required {
		if have[strings.ToLower(s)] {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

func concat(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
