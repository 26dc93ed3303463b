package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/service"
	"gorm.io/gorm"
)

// AssignmentUsecase owns the proposed → sent → confirmed/rejected
// lifecycle, including the consultant-side status mutations and the
// notification fan-out around each transition.
type AssignmentUsecase struct {
	db             *gorm.DB
	requestRepo    *repository.RequestRepository
	consultantRepo *repository.ConsultantRepository
	assignmentRepo *repository.AssignmentRepository
	timelineRepo   *repository.TimelineRepository
	compliance     service.ComplianceServiceInterface
	notifications  *NotificationUsecase
}

func NewAssignmentUsecase(
	db *gorm.DB,
	requestRepo *repository.RequestRepository,
	consultantRepo *repository.ConsultantRepository,
	assignmentRepo *repository.AssignmentRepository,
	timelineRepo *repository.TimelineRepository,
	compliance service.ComplianceServiceInterface,
	notifications *NotificationUsecase,
) *AssignmentUsecase {
	return &AssignmentUsecase{
		db:             db,
		requestRepo:    requestRepo,
		consultantRepo: consultantRepo,
		assignmentRepo: assignmentRepo,
		timelineRepo:   timelineRepo,
		compliance:     compliance,
		notifications:  notifications,
	}
}

// Assign proposes a consultant for a request: creates the assignment with
// the consultant's current rate snapshotted, marks the consultant assigned
// and points them at the request's customer. Fails with ErrConflict when an
// active assignment for the pair exists or the pairing breaks a blocking
// compliance rule.
func (uc *AssignmentUsecase) Assign(requestID, consultantID string) (*model.Assignment, error) {
	request, err := uc.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("request %s: %w", requestID, ErrNotFound)
		}
		return nil, err
	}
	consultant, err := uc.consultantRepo.FindByID(consultantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("consultant %s: %w", consultantID, ErrNotFound)
		}
		return nil, err
	}

	existing, err := uc.assignmentRepo.FindActive(requestID, consultantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("consultant is already assigned to this request: %w", ErrConflict)
	}

	if check := uc.compliance.CheckAssignment(consultant, request); !check.Compliant {
		return nil, fmt.Errorf("%s: %w", check.Issues[0].Message, ErrConflict)
	}

	startDate := time.Now().UTC()
	if request.StartDate != nil {
		startDate = *request.StartDate
	}

	assignment := &model.Assignment{
		RequestID:    requestID,
		ConsultantID: consultantID,
		StartDate:    startDate,
		EndDate:      request.EndDate,
		HourlyRate:   consultant.HourlyRate,
		Status:       model.AssignmentProposed,
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := uc.assignmentRepo.WithTx(tx).Create(assignment); err != nil {
			return err
		}

		consultant.Status = model.ConsultantAssigned
		consultant.CurrentCustomerID = &request.CustomerID
		if err := uc.consultantRepo.WithTx(tx).Save(consultant); err != nil {
			return err
		}

		return uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   requestID,
			EventType:   "consultant_assigned",
			Title:       fmt.Sprintf("Consultant proposed: %s", consultant.Name),
			Description: fmt.Sprintf("%s — Rate: %.0f/h", consultant.Title, consultant.HourlyRate),
			Actor:       "Coordinator",
		})
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// MarkSent transitions a fresh proposal to sent and notifies everyone
// waiting on the consultant's answer.
func (uc *AssignmentUsecase) MarkSent(assignment *model.Assignment) error {
	request, err := uc.requestRepo.FindByID(assignment.RequestID)
	if err != nil {
		return err
	}
	consultant, err := uc.consultantRepo.FindByID(assignment.ConsultantID)
	if err != nil {
		return err
	}

	deferred := uc.notifications.Deferred()
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		assignment.Status = model.AssignmentSent
		if err := uc.assignmentRepo.WithTx(tx).Save(assignment); err != nil {
			return err
		}

		if err := uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   assignment.RequestID,
			EventType:   "assignment_sent",
			Title:       fmt.Sprintf("Request sent to %s", consultant.Name),
			Description: fmt.Sprintf("Awaiting approval from %s (%s)", consultant.Name, consultant.Title),
			Actor:       "Handler",
		}); err != nil {
			return err
		}

		notify := deferred.WithTx(tx)
		if err := notify.NotifyHandlers(
			fmt.Sprintf("Request sent to %s", consultant.Name),
			fmt.Sprintf("%s (%s) has received the request for '%s'. Awaiting the consultant's answer.", consultant.Name, consultant.Title, request.Title),
			model.NotificationInfo, assignment.RequestID,
		); err != nil {
			return err
		}
		return notify.NotifyCustomerUsers(request.CustomerID,
			fmt.Sprintf("Consultant proposed: %s", consultant.Name),
			fmt.Sprintf("%s (%s) has received the request for '%s'. We are awaiting the consultant's approval.", consultant.Name, consultant.Title, request.Title),
			model.NotificationInfo, assignment.RequestID,
		)
	})
	if err != nil {
		return err
	}

	deferred.Flush()
	return nil
}

// Approve confirms an assignment. When confirmed assignments reach the
// requested head-count the request completes, exactly once.
func (uc *AssignmentUsecase) Approve(requestID, assignmentID string) (*model.Assignment, error) {
	assignment, err := uc.assignmentRepo.FindForRequest(assignmentID, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assignment %s: %w", assignmentID, ErrNotFound)
		}
		return nil, err
	}
	request, err := uc.requestRepo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	consultant, err := uc.consultantRepo.FindByID(assignment.ConsultantID)
	if err != nil {
		return nil, err
	}

	deferred := uc.notifications.Deferred()
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		assignment.Status = model.AssignmentConfirmed
		if err := uc.assignmentRepo.WithTx(tx).Save(assignment); err != nil {
			return err
		}

		if err := uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   requestID,
			EventType:   "assignment_confirmed",
			Title:       fmt.Sprintf("%s approved the assignment", consultant.Name),
			Description: fmt.Sprintf("%s (%s) — %.0f/h", consultant.Name, consultant.Title, consultant.HourlyRate),
			Actor:       consultant.Name,
		}); err != nil {
			return err
		}

		notify := deferred.WithTx(tx)
		if err := notify.NotifyHandlers(
			fmt.Sprintf("%s approved the assignment", consultant.Name),
			fmt.Sprintf("%s has accepted the assignment '%s'. The assignment is confirmed.", consultant.Name, request.Title),
			model.NotificationSuccess, requestID,
		); err != nil {
			return err
		}
		if err := notify.NotifyCustomerUsers(request.CustomerID,
			fmt.Sprintf("Consultant confirmed: %s", consultant.Name),
			fmt.Sprintf("%s has accepted the assignment '%s'.", consultant.Name, request.Title),
			model.NotificationSuccess, requestID,
		); err != nil {
			return err
		}

		confirmed, err := uc.assignmentRepo.WithTx(tx).CountConfirmed(requestID)
		if err != nil {
			return err
		}
		if confirmed < int64(request.NumberOfConsultants) || request.Status == model.RequestStatusCompleted {
			return nil
		}

		request.Status = model.RequestStatusCompleted
		if err := uc.requestRepo.WithTx(tx).Save(request); err != nil {
			return err
		}
		return uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   requestID,
			EventType:   "request_completed",
			Title:       "All consultants confirmed — request completed",
			Description: fmt.Sprintf("%d consultant(s) assigned and confirmed", confirmed),
			Actor:       "System",
		})
	})
	if err != nil {
		return nil, err
	}

	deferred.Flush()
	return assignment, nil
}

// Reject declines an assignment and releases the consultant back to the
// pool, regardless of their prior state. Rematching is left to the caller.
func (uc *AssignmentUsecase) Reject(requestID, assignmentID string) (*model.Assignment, error) {
	assignment, err := uc.assignmentRepo.FindForRequest(assignmentID, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assignment %s: %w", assignmentID, ErrNotFound)
		}
		return nil, err
	}
	request, err := uc.requestRepo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	consultant, err := uc.consultantRepo.FindByID(assignment.ConsultantID)
	if err != nil {
		return nil, err
	}

	deferred := uc.notifications.Deferred()
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		assignment.Status = model.AssignmentRejected
		if err := uc.assignmentRepo.WithTx(tx).Save(assignment); err != nil {
			return err
		}

		consultant.Status = model.ConsultantAvailable
		consultant.CurrentCustomerID = nil
		if err := uc.consultantRepo.WithTx(tx).Save(consultant); err != nil {
			return err
		}

		if err := uc.timelineRepo.WithTx(tx).Append(&model.TimelineEvent{
			RequestID:   requestID,
			EventType:   "assignment_rejected",
			Title:       fmt.Sprintf("%s declined the assignment", consultant.Name),
			Description: fmt.Sprintf("%s declined. A new match may be needed.", consultant.Name),
			Actor:       consultant.Name,
		}); err != nil {
			return err
		}

		notify := deferred.WithTx(tx)
		if err := notify.NotifyHandlers(
			fmt.Sprintf("%s declined the assignment", consultant.Name),
			fmt.Sprintf("%s declined '%s'. Choose another consultant.", consultant.Name, request.Title),
			model.NotificationWarning, requestID,
		); err != nil {
			return err
		}
		return notify.NotifyCustomerUsers(request.CustomerID,
			"Consultant declined — rematching in progress",
			fmt.Sprintf("The proposed consultant for '%s' declined. We are looking for a new match.", request.Title),
			model.NotificationWarning, requestID,
		)
	})
	if err != nil {
		return nil, err
	}

	deferred.Flush()
	return assignment, nil
}
