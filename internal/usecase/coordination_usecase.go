package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"gorm.io/gorm"
)

const (
	PlanStandardStaffing = "standard_staffing"
	PlanUrgentStaffing   = "urgent_staffing"
	PlanExtension        = "extension"
)

type actionTemplate struct {
	ActionType  string
	Description string
}

var actionTemplates = map[string][]actionTemplate{
	PlanStandardStaffing: {
		{"verify_requirements", "Verify and confirm customer requirements with AI analysis"},
		{"run_feasibility", "Run automated feasibility assessment"},
		{"match_consultants", "Match and rank available consultants"},
		{"compliance_check", "Run compliance checks on proposed matches"},
		{"prepare_proposal", "Prepare staffing proposal for customer review"},
		{"notify_customer", "Send proposal and status update to customer"},
	},
	PlanUrgentStaffing: {
		{"immediate_match", "Immediate consultant matching — urgent request"},
		{"fast_compliance", "Fast-track compliance verification"},
		{"notify_consultants", "Notify matched consultants immediately"},
		{"notify_customer", "Send immediate status update to customer"},
	},
	PlanExtension: {
		{"verify_current_assignment", "Verify current assignment status and terms"},
		{"consultant_availability", "Confirm consultant availability for extension"},
		{"update_contract", "Prepare contract amendment for extension"},
		{"notify_all_parties", "Notify customer and consultant of extension"},
	},
}

// Canned execution results keyed by action type.
var actionResults = map[string]string{
	"verify_requirements":       "Requirements verified — AI analysis confirms clarity and completeness",
	"run_feasibility":           "Feasibility assessment triggered — results available in assessment panel",
	"match_consultants":         "Consultant matching completed — candidates ranked by fit score",
	"compliance_check":          "Compliance checks passed — no blocking issues found",
	"prepare_proposal":          "Staffing proposal prepared with top 3 candidate profiles",
	"notify_customer":           "Customer notification sent with current status and next steps",
	"notify_consultants":        "Matched consultants notified of opportunity",
	"immediate_match":           "Urgent matching completed — top available consultants identified",
	"fast_compliance":           "Fast-track compliance check completed",
	"verify_current_assignment": "Current assignment verified — eligible for extension",
	"consultant_availability":   "Consultant confirmed available for extended period",
	"update_contract":           "Contract amendment prepared for review",
	"notify_all_parties":        "All parties notified of changes",
}

// CoordinationUsecase drives a request's action plan: a linear sequence of
// named steps executed strictly in order, one at a time. Completing the
// last pending step moves the request to in_progress.
type CoordinationUsecase struct {
	db           *gorm.DB
	requestRepo  *repository.RequestRepository
	actionRepo   *repository.ActionRepository
	timelineRepo *repository.TimelineRepository
}

func NewCoordinationUsecase(
	db *gorm.DB,
	requestRepo *repository.RequestRepository,
	actionRepo *repository.ActionRepository,
	timelineRepo *repository.TimelineRepository,
) *CoordinationUsecase {
	return &CoordinationUsecase{
		db:           db,
		requestRepo:  requestRepo,
		actionRepo:   actionRepo,
		timelineRepo: timelineRepo,
	}
}

// CreatePlan instantiates one pending action per template entry. Urgent
// requests always get the urgent_staffing template regardless of planType;
// unknown plan names fall back to standard_staffing.
func (uc *CoordinationUsecase) CreatePlan(requestID, planType string) ([]model.CoordinationAction, error) {
	request, err := uc.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request %s: %w", requestID, ErrNotFound)
		}
		return nil, err
	}

	if planType == "" {
		planType = PlanStandardStaffing
	}
	if request.Priority == model.PriorityUrgent {
		planType = PlanUrgentStaffing
	}

	// The timeline keeps the requested name even when the template lookup
	// falls back to the standard plan.
	template, ok := actionTemplates[planType]
	if !ok {
		template = actionTemplates[PlanStandardStaffing]
	}

	actions := make([]model.CoordinationAction, len(template))
	for i, entry := range template {
		actions[i] = model.CoordinationAction{
			RequestID:   requestID,
			ActionType:  entry.ActionType,
			Description: entry.Description,
			Status:      model.ActionPending,
			Order:       i,
		}
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		for i := range actions {
			if err := uc.actionRepo.WithTx(tx).Create(&actions[i]); err != nil {
				return err
			}
		}
		return uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   requestID,
			EventType:   "action_plan_created",
			Title:       fmt.Sprintf("Action plan created (%s)", planType),
			Description: fmt.Sprintf("%d actions planned for execution", len(actions)),
			Actor:       "Coordinator",
		})
	})
	if err != nil {
		return nil, err
	}

	return actions, nil
}

// ExecuteNext runs the lowest-order pending action. Returns (nil, nil)
// when nothing is pending.
func (uc *CoordinationUsecase) ExecuteNext(requestID string) (*model.CoordinationAction, error) {
	action, err := uc.actionRepo.NextPending(requestID)
	if err != nil || action == nil {
		return nil, err
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		action.Status = model.ActionInProgress

		result := actionResults[action.ActionType]
		if result == "" {
			result = fmt.Sprintf("Action '%s' completed successfully", action.ActionType)
		}
		now := time.Now().UTC()
		action.Result = result
		action.Status = model.ActionCompleted
		action.CompletedAt = &now

		if err := uc.actionRepo.WithTx(tx).Save(action); err != nil {
			return err
		}

		if err := uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   requestID,
			EventType:   "action_completed",
			Title:       fmt.Sprintf("Action completed: %s", action.ActionType),
			Description: result,
			Actor:       "Coordinator",
		}); err != nil {
			return err
		}

		remaining, err := uc.actionRepo.WithTx(tx).CountPending(requestID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		request, err := uc.requestRepo.WithTx(tx).FindByID(requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		request.Status = model.RequestStatusInProgress
		if err := uc.requestRepo.WithTx(tx).Save(request); err != nil {
			return err
		}
		return uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   requestID,
			EventType:   "all_actions_completed",
			Title:       "All coordination actions completed",
			Description: "Request is ready for final review and customer communication",
			Actor:       "Coordinator",
		})
	})
	if err != nil {
		return nil, err
	}

	return action, nil
}

// ExecuteAll drains the pending queue in order. Idempotent: a second call
// on a drained plan executes nothing.
func (uc *CoordinationUsecase) ExecuteAll(requestID string) ([]model.CoordinationAction, error) {
	executed := []model.CoordinationAction{}
	for {
		action, err := uc.ExecuteNext(requestID)
		if err != nil {
			return executed, err
		}
		if action == nil {
			return executed, nil
		}
		executed = append(executed, *action)
	}
}

func (uc *CoordinationUsecase) ListActions(requestID string) ([]model.CoordinationAction, error) {
	return uc.actionRepo.ListByRequest(requestID)
}
