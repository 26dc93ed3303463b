package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/service"
)

type recordingWebhook struct {
	delivered []*model.Notification
}

func (w *recordingWebhook) Deliver(n *model.Notification) {
	w.delivered = append(w.delivered, n)
}

func newRecordedNotifications(db *gorm.DB, webhook *recordingWebhook) *NotificationUsecase {
	return NewNotificationUsecase(
		repository.NewNotificationRepository(db),
		repository.NewUserRepository(db),
		webhook,
	)
}

func TestNotifyUserDeliversWebhookImmediately(t *testing.T) {
	db := newTestDB(t)
	handler := createTestHandler(t, db)
	webhook := &recordingWebhook{}

	uc := newRecordedNotifications(db, webhook)
	require.NoError(t, uc.NotifyUser(handler.ID, "Ping", "Hello", model.NotificationInfo, ""))

	require.Len(t, webhook.delivered, 1)
	assert.Equal(t, "Ping", webhook.delivered[0].Title)
}

func TestDeferredQueuesWebhookUntilFlush(t *testing.T) {
	db := newTestDB(t)
	handler := createTestHandler(t, db)
	webhook := &recordingWebhook{}

	deferred := newRecordedNotifications(db, webhook).Deferred()
	require.NoError(t, deferred.NotifyUser(handler.ID, "Queued", "Later", model.NotificationInfo, ""))

	// Persisted right away, delivered only on Flush.
	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Empty(t, webhook.delivered)

	deferred.Flush()
	require.Len(t, webhook.delivered, 1)
	assert.Equal(t, "Queued", webhook.delivered[0].Title)

	// Flush drains the queue; a second call sends nothing.
	deferred.Flush()
	assert.Len(t, webhook.delivered, 1)
}

func TestDeferredRolledBackNotificationNeverDelivered(t *testing.T) {
	db := newTestDB(t)
	handler := createTestHandler(t, db)
	webhook := &recordingWebhook{}

	deferred := newRecordedNotifications(db, webhook).Deferred()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := deferred.WithTx(tx).NotifyUser(handler.ID, "Doomed", "Never sent", model.NotificationInfo, ""); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, webhook.delivered)
}

func TestMarkSentDeliversWebhookAfterCommit(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	consultant := createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)
	handler := createTestHandler(t, db)
	request := createTestRequest(t, db, customer.ID, nil)

	webhook := &recordingWebhook{}
	uc := NewAssignmentUsecase(
		db,
		repository.NewRequestRepository(db),
		repository.NewConsultantRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewTimelineRepository(db),
		service.NewComplianceService(),
		newRecordedNotifications(db, webhook),
	)

	assignment, err := uc.Assign(request.ID, consultant.ID)
	require.NoError(t, err)
	require.NoError(t, uc.MarkSent(assignment))

	require.NotEmpty(t, webhook.delivered)
	var notification model.Notification
	require.NoError(t, db.First(&notification, "user_id = ?", handler.ID).Error)
	assert.Equal(t, notification.Title, webhook.delivered[0].Title)
}
