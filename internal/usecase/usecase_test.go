package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/service"
	"github.com/S-Borna/Intelliplan/internal/util"
)

// nopWebhook satisfies the webhook interface without network access.
type nopWebhook struct{}

func (nopWebhook) Deliver(*model.Notification) {}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Consultant{},
		&model.StaffingRequest{},
		&model.FeasibilityAssessment{},
		&model.Assignment{},
		&model.CoordinationAction{},
		&model.TimelineEvent{},
		&model.Notification{},
		&model.ComplianceRule{},
	))
	return db
}

func newTestNotifications(db *gorm.DB) *NotificationUsecase {
	return NewNotificationUsecase(
		repository.NewNotificationRepository(db),
		repository.NewUserRepository(db),
		nopWebhook{},
	)
}

func createTestCustomer(t *testing.T, db *gorm.DB) *model.Customer {
	t.Helper()
	customer := &model.Customer{
		Name:         "Volvo Group",
		Company:      "Volvo AB",
		Email:        "inkop@volvo.se",
		ContractType: "framework",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func createTestConsultant(t *testing.T, db *gorm.DB, name string, skills []string, rate float64, status model.ConsultantStatus) *model.Consultant {
	t.Helper()
	consultant := &model.Consultant{
		Name:       name,
		Email:      strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@intelliplan.se",
		Title:      "Senior Consultant",
		Skills:     util.EncodeList(skills),
		HourlyRate: rate,
		Status:     status,
	}
	require.NoError(t, db.Create(consultant).Error)
	return consultant
}

func createTestRequest(t *testing.T, db *gorm.DB, customerID string, mutate func(*model.StaffingRequest)) *model.StaffingRequest {
	t.Helper()
	start := time.Now().UTC().Add(45 * 24 * time.Hour)
	request := &model.StaffingRequest{
		CustomerID:          customerID,
		Title:               "Backendutvecklare till plattformsteam",
		Description:         "Vi behöver förstärkning till vårt plattformsteam.",
		RequiredSkills:      util.EncodeList([]string{"python", "aws"}),
		NumberOfConsultants: 1,
		StartDate:           &start,
		Priority:            model.PriorityMedium,
		Status:              model.RequestStatusSubmitted,
	}
	if mutate != nil {
		mutate(request)
	}
	require.NoError(t, db.Create(request).Error)
	return request
}

func timelineEventTypes(t *testing.T, db *gorm.DB, requestID string) []string {
	t.Helper()
	events, err := repository.NewTimelineRepository(db).ListByRequest(requestID)
	require.NoError(t, err)
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.EventType)
	}
	return types
}

func countEventType(types []string, want string) int {
	n := 0
	for _, et := range types {
		if et == want {
			n++
		}
	}
	return n
}

func newFeasibilityForTest(db *gorm.DB) *FeasibilityUsecase {
	return NewFeasibilityUsecase(
		db,
		repository.NewRequestRepository(db),
		repository.NewConsultantRepository(db),
		repository.NewAssessmentRepository(db),
		repository.NewTimelineRepository(db),
		service.NewAnalyzerService(),
		service.NewComplianceService(),
	)
}

func newCoordinationForTest(db *gorm.DB) *CoordinationUsecase {
	return NewCoordinationUsecase(
		db,
		repository.NewRequestRepository(db),
		repository.NewActionRepository(db),
		repository.NewTimelineRepository(db),
	)
}

func newAssignmentsForTest(db *gorm.DB) *AssignmentUsecase {
	return NewAssignmentUsecase(
		db,
		repository.NewRequestRepository(db),
		repository.NewConsultantRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewTimelineRepository(db),
		service.NewComplianceService(),
		newTestNotifications(db),
	)
}
