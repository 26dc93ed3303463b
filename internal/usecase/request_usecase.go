package usecase

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/S-Borna/Intelliplan/internal/config"
	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/service"
	"github.com/S-Borna/Intelliplan/internal/util"
	"gorm.io/gorm"
)

// RequestUsecase is the intake and read side of the staffing workflow:
// analyzed creation, the list/detail projections, and status patches.
// Assessment and coordination live in their own usecases; this one only
// triggers them after intake.
type RequestUsecase struct {
	db             *gorm.DB
	cfg            *config.AppConfig
	requestRepo    *repository.RequestRepository
	customerRepo   *repository.CustomerRepository
	consultantRepo *repository.ConsultantRepository
	actionRepo     *repository.ActionRepository
	timelineRepo   *repository.TimelineRepository
	assignmentRepo *repository.AssignmentRepository
	analyzer       service.AnalyzerServiceInterface
	feasibility    *FeasibilityUsecase
	coordination   *CoordinationUsecase
	notifications  *NotificationUsecase
}

func NewRequestUsecase(
	db *gorm.DB,
	cfg *config.AppConfig,
	requestRepo *repository.RequestRepository,
	customerRepo *repository.CustomerRepository,
	consultantRepo *repository.ConsultantRepository,
	actionRepo *repository.ActionRepository,
	timelineRepo *repository.TimelineRepository,
	assignmentRepo *repository.AssignmentRepository,
	analyzer service.AnalyzerServiceInterface,
	feasibility *FeasibilityUsecase,
	coordination *CoordinationUsecase,
	notifications *NotificationUsecase,
) *RequestUsecase {
	return &RequestUsecase{
		db:             db,
		cfg:            cfg,
		requestRepo:    requestRepo,
		customerRepo:   customerRepo,
		consultantRepo: consultantRepo,
		actionRepo:     actionRepo,
		timelineRepo:   timelineRepo,
		assignmentRepo: assignmentRepo,
		analyzer:       analyzer,
		feasibility:    feasibility,
		coordination:   coordination,
		notifications:  notifications,
	}
}

// Create analyzes the incoming brief, persists the enriched request with its
// submission timeline event and handler notifications, then kicks off the
// automatic assess-and-plan pipeline. The pipeline is best-effort by default;
// with AUTO_PIPELINE_STRICT the whole creation fails when it does.
func (uc *RequestUsecase) Create(input dto.CreateRequestInput) (*model.StaffingRequest, error) {
	customer, err := uc.customerRepo.FindByID(input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %s: %w", input.CustomerID, ErrNotFound)
		}
		return nil, err
	}

	analysis := uc.analyzer.Analyze(input.Title, input.Description, input.RequiredSkills)

	// The caller's skill list and priority are stored as given; the
	// analyzer's extraction and detected priority stay analysis output.
	priority := model.RequestPriority(input.Priority)
	if priority == "" {
		priority = model.PriorityMedium
	}
	headcount := input.NumberOfConsultants
	if headcount < 1 {
		headcount = 1
	}

	request := &model.StaffingRequest{
		CustomerID:          input.CustomerID,
		Title:               input.Title,
		Description:         input.Description,
		RequiredSkills:      util.EncodeList(input.RequiredSkills),
		NumberOfConsultants: headcount,
		StartDate:           input.StartDate,
		EndDate:             input.EndDate,
		BudgetMaxHourly:     input.BudgetMaxHourly,
		Location:            input.Location,
		RemoteOk:            input.RemoteOk,
		Priority:            priority,
		Status:              model.RequestStatusSubmitted,
		AISummary:           analysis.Summary,
		AICategory:          analysis.Category,
		AIComplexityScore:   analysis.ComplexityScore,
	}

	deferred := uc.notifications.Deferred()
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := uc.requestRepo.WithTx(tx).Create(request); err != nil {
			return err
		}

		if err := uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   request.ID,
			EventType:   "request_submitted",
			Title:       fmt.Sprintf("Request received: %s", request.Title),
			Description: fmt.Sprintf("AI Category: %s | Complexity: %.2f", analysis.Category, analysis.ComplexityScore),
			Actor:       customer.Name,
		}); err != nil {
			return err
		}

		ntype := model.NotificationInfo
		if priority == model.PriorityUrgent {
			ntype = model.NotificationUrgent
		}
		return deferred.WithTx(tx).NotifyHandlers(
			fmt.Sprintf("New staffing request: %s", request.Title),
			fmt.Sprintf("%s submitted a new request (%s priority). Category: %s.", customer.Company, priority, analysis.Category),
			ntype, request.ID,
		)
	})
	if err != nil {
		return nil, err
	}
	deferred.Flush()

	if err := uc.runAutoPipeline(request); err != nil {
		if uc.cfg.AutoPipelineStrict {
			return nil, fmt.Errorf("auto pipeline for request %s: %w", request.ID, err)
		}
		log.Printf("auto pipeline for request %s: %v", request.ID, err)
	}

	if err := uc.notifications.NotifyCustomerUsers(request.CustomerID,
		"Request received",
		fmt.Sprintf("Your request '%s' has been received and analyzed. We will get back to you with a proposal.", request.Title),
		model.NotificationInfo, request.ID,
	); err != nil {
		log.Printf("notify customer users for request %s: %v", request.ID, err)
	}

	return uc.requestRepo.FindByID(request.ID)
}

// CreateFromPDF extracts the brief text from an uploaded PDF and feeds it
// through the normal creation flow.
func (uc *RequestUsecase) CreateFromPDF(input dto.CreateRequestInput, pdfPath string) (*model.StaffingRequest, error) {
	text, err := util.ExtractPDFText(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("extract request brief: %w", err)
	}
	if strings.TrimSpace(input.Description) != "" {
		input.Description = input.Description + "\n\n" + text
	} else {
		input.Description = text
	}
	return uc.Create(input)
}

func (uc *RequestUsecase) runAutoPipeline(request *model.StaffingRequest) error {
	if _, err := uc.feasibility.Assess(request.ID); err != nil {
		return fmt.Errorf("assess: %w", err)
	}
	if _, err := uc.coordination.CreatePlan(request.ID, ""); err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

// List returns the list projection, optionally filtered by status and
// customer id.
func (uc *RequestUsecase) List(status, customerID string) ([]dto.RequestListItem, error) {
	requests, err := uc.requestRepo.List(status, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RequestListItem, 0, len(requests))
	for i := range requests {
		items = append(items, uc.toListItem(&requests[i]))
	}
	return items, nil
}

// Detail assembles the full request view: assessment, scored matching
// consultants, the action plan, the timeline newest-first, and assignments
// with consultant details.
func (uc *RequestUsecase) Detail(id string) (*dto.RequestDetail, error) {
	request, err := uc.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	detail := &dto.RequestDetail{
		Request:  uc.toListItem(request),
		Matching: []dto.MatchingConsultantDTO{},
	}

	if request.Assessment != nil {
		detail.Assessment = toAssessmentDTO(request.Assessment)
		matching, err := uc.scoreMatching(request)
		if err != nil {
			return nil, err
		}
		detail.Matching = matching
	}

	actions, err := uc.actionRepo.ListByRequest(id)
	if err != nil {
		return nil, err
	}
	detail.Actions = actions

	timeline, err := uc.timelineRepo.ListByRequest(id)
	if err != nil {
		return nil, err
	}
	detail.Timeline = timeline

	assignments, err := uc.assignmentRepo.ListByRequest(id)
	if err != nil {
		return nil, err
	}
	detail.Assignments = make([]dto.AssignmentDetailDTO, 0, len(assignments))
	for _, a := range assignments {
		row := dto.AssignmentDetailDTO{
			ID:           a.ID,
			RequestID:    a.RequestID,
			ConsultantID: a.ConsultantID,
			StartDate:    a.StartDate,
			EndDate:      a.EndDate,
			HourlyRate:   a.HourlyRate,
			Status:       a.Status,
			CreatedAt:    a.CreatedAt,
		}
		if consultant, err := uc.consultantRepo.FindByID(a.ConsultantID); err == nil {
			row.ConsultantName = consultant.Name
			row.ConsultantTitle = consultant.Title
			row.ConsultantSkills = util.ParseList(consultant.Skills)
		}
		detail.Assignments = append(detail.Assignments, row)
	}

	return detail, nil
}

// UpdateStatus patches the request status and records the change on the
// timeline.
func (uc *RequestUsecase) UpdateStatus(id string, status model.RequestStatus, actor string) (*model.StaffingRequest, error) {
	request, err := uc.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	previous := request.Status
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		request.Status = status
		if err := uc.requestRepo.WithTx(tx).Save(request); err != nil {
			return err
		}
		return uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   id,
			EventType:   "status_changed",
			Title:       fmt.Sprintf("Status changed to %s", status),
			Description: fmt.Sprintf("Previous status: %s", previous),
			Actor:       actor,
		})
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *RequestUsecase) toListItem(request *model.StaffingRequest) dto.RequestListItem {
	item := dto.RequestListItem{
		ID:                  request.ID,
		CustomerID:          request.CustomerID,
		Title:               request.Title,
		Description:         request.Description,
		RequiredSkills:      util.ParseList(request.RequiredSkills),
		NumberOfConsultants: request.NumberOfConsultants,
		StartDate:           request.StartDate,
		EndDate:             request.EndDate,
		BudgetMaxHourly:     request.BudgetMaxHourly,
		Location:            request.Location,
		RemoteOk:            request.RemoteOk,
		Priority:            request.Priority,
		Status:              request.Status,
		AISummary:           request.AISummary,
		AICategory:          request.AICategory,
		AIComplexityScore:   request.AIComplexityScore,
		CreatedAt:           request.CreatedAt,
	}
	if request.Customer != nil {
		item.CompanyName = request.Customer.Company
	}
	if request.Assessment != nil {
		item.FeasibilityRating = string(request.Assessment.OverallRating)
		score := int(math.Round(request.Assessment.ConfidenceScore * 100))
		item.FeasibilityScore = &score
	}
	return item
}

// scoreMatching rescores the assessment's matching consultants against the
// request's skill list and sorts them best-first.
func (uc *RequestUsecase) scoreMatching(request *model.StaffingRequest) ([]dto.MatchingConsultantDTO, error) {
	ids := util.ParseList(request.Assessment.MatchingConsultants)
	required := deriveRequiredSkills(uc.analyzer, request)

	matching := make([]dto.MatchingConsultantDTO, 0, len(ids))
	for _, id := range ids {
		consultant, err := uc.consultantRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		skills := util.ParseList(consultant.Skills)
		have := make(map[string]bool, len(skills))
		for _, s := range skills {
			have[strings.ToLower(s)] = true
		}

		var matched, missing []string
		for _, s := range required {
			if have[strings.ToLower(s)] {
				matched = append(matched, s)
			} else {
				missing = append(missing, s)
			}
		}

		score := 100
		if len(required) > 0 {
			score = int(math.Round(float64(len(matched)) / float64(len(required)) * 100))
		}

		matching = append(matching, dto.MatchingConsultantDTO{
			ID:             consultant.ID,
			Name:           consultant.Name,
			Title:          consultant.Title,
			Skills:         skills,
			HourlyRate:     consultant.HourlyRate,
			Status:         consultant.Status,
			MatchScore:     score,
			MatchingSkills: matched,
			MissingSkills:  missing,
		})
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].MatchScore > matching[j].MatchScore
	})
	return matching, nil
}

func toAssessmentDTO(a *model.FeasibilityAssessment) *dto.AssessmentDTO {
	return &dto.AssessmentDTO{
		ID:                a.ID,
		RequestID:         a.RequestID,
		OverallRating:     a.OverallRating,
		ConfidenceScore:   a.ConfidenceScore,
		AvailabilityScore: a.AvailabilityScore,
		SkillsMatchScore:  a.SkillsMatchScore,
		BudgetFitScore:    a.BudgetFitScore,
		TimelineScore:     a.TimelineScore,
		ComplianceScore:   a.ComplianceScore,
		Risks:             util.ParseList(a.Risks),
		Recommendations:   util.ParseList(a.Recommendations),
		Alternatives:      util.ParseList(a.Alternatives),
		CreatedAt:         a.CreatedAt,
	}
}
