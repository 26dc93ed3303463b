package usecase

import (
	"fmt"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/service"
	"gorm.io/gorm"
)

// NotificationUsecase persists notifications and mirrors each one to the
// optional outbound webhook. Webhook delivery is fire-and-forget.
type NotificationUsecase struct {
	notificationRepo *repository.NotificationRepository
	userRepo         *repository.UserRepository
	webhook          service.WebhookServiceInterface

	// queue, when set, collects webhook mirrors until Flush. Shared by
	// every WithTx rebinding of the same Deferred instance.
	queue *[]*model.Notification
}

func NewNotificationUsecase(
	notificationRepo *repository.NotificationRepository,
	userRepo *repository.UserRepository,
	webhook service.WebhookServiceInterface,
) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		webhook:          webhook,
	}
}

// WithTx rebinds the persistence side to an open transaction.
func (uc *NotificationUsecase) WithTx(tx *gorm.DB) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: uc.notificationRepo.WithTx(tx),
		userRepo:         uc.userRepo.WithTx(tx),
		webhook:          uc.webhook,
		queue:            uc.queue,
	}
}

// Deferred returns a copy that queues webhook mirrors instead of sending
// them. Transactional callers create it before opening the transaction,
// bind it with WithTx inside, and Flush only after commit; a rolled-back
// notification is never delivered.
func (uc *NotificationUsecase) Deferred() *NotificationUsecase {
	queue := []*model.Notification{}
	return &NotificationUsecase{
		notificationRepo: uc.notificationRepo,
		userRepo:         uc.userRepo,
		webhook:          uc.webhook,
		queue:            &queue,
	}
}

// Flush delivers every queued webhook mirror and empties the queue.
func (uc *NotificationUsecase) Flush() {
	if uc.queue == nil {
		return
	}
	for _, n := range *uc.queue {
		uc.webhook.Deliver(n)
	}
	*uc.queue = (*uc.queue)[:0]
}

// NotifyUser sends one notification to a specific user.
func (uc *NotificationUsecase) NotifyUser(userID, title, message string, ntype model.NotificationType, link string) error {
	n := &model.Notification{
		UserID:           userID,
		Title:            title,
		Message:          message,
		NotificationType: ntype,
		Link:             link,
	}
	if err := uc.notificationRepo.Create(n); err != nil {
		return err
	}
	if uc.queue != nil {
		*uc.queue = append(*uc.queue, n)
		return nil
	}
	uc.webhook.Deliver(n)
	return nil
}

// NotifyHandlers fans one notification out to every handler and admin.
func (uc *NotificationUsecase) NotifyHandlers(title, message string, ntype model.NotificationType, link string) error {
	handlers, err := uc.userRepo.ListByRoles(model.RoleHandler, model.RoleAdmin)
	if err != nil {
		return err
	}
	for _, h := range handlers {
		if err := uc.NotifyUser(h.ID, title, message, ntype, link); err != nil {
			return err
		}
	}
	return nil
}

// NotifyCustomerUsers notifies every user account linked to a customer.
func (uc *NotificationUsecase) NotifyCustomerUsers(customerID, title, message string, ntype model.NotificationType, link string) error {
	users, err := uc.userRepo.ListByCustomer(customerID)
	if err != nil {
		return err
	}
	for _, u := range users {
		if err := uc.NotifyUser(u.ID, title, message, ntype, link); err != nil {
			return err
		}
	}
	return nil
}

func (uc *NotificationUsecase) ListForUser(userID string) ([]model.Notification, error) {
	return uc.notificationRepo.ListByUser(userID, 50)
}

func (uc *NotificationUsecase) UnreadCount(userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(userID)
}

func (uc *NotificationUsecase) MarkRead(id, userID string) error {
	found, err := uc.notificationRepo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("notification %s: %w", id, ErrNotFound)
	}
	return nil
}

func (uc *NotificationUsecase) MarkAllRead(userID string) error {
	return uc.notificationRepo.MarkAllRead(userID)
}
