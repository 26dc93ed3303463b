package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/S-Borna/Intelliplan/internal/model"
)

func createTestHandler(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		Email:        "handler@intelliplan.se",
		PasswordHash: "x",
		FullName:     "Eva Handler",
		Role:         model.RoleHandler,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAssignProposesConsultant(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	consultant := createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)
	request := createTestRequest(t, db, customer.ID, nil)

	assignment, err := newAssignmentsForTest(db).Assign(request.ID, consultant.ID)
	require.NoError(t, err)

	assert.Equal(t, model.AssignmentProposed, assignment.Status)
	assert.Equal(t, 900.0, assignment.HourlyRate)
	assert.WithinDuration(t, *request.StartDate, assignment.StartDate, time.Second)

	var reloaded model.Consultant
	require.NoError(t, db.First(&reloaded, "id = ?", consultant.ID).Error)
	assert.Equal(t, model.ConsultantAssigned, reloaded.Status)
	require.NotNil(t, reloaded.CurrentCustomerID)
	assert.Equal(t, customer.ID, *reloaded.CurrentCustomerID)

	types := timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 1, countEventType(types, "consultant_assigned"))
}

func TestAssignDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	consultant := createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)
	request := createTestRequest(t, db, customer.ID, func(r *model.StaffingRequest) {
		r.NumberOfConsultants = 2
	})

	uc := newAssignmentsForTest(db)
	first, err := uc.Assign(request.ID, consultant.ID)
	require.NoError(t, err)

	// Rejecting frees the pair for a fresh proposal; an active one blocks it.
	_, err = uc.Assign(request.ID, consultant.ID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = uc.Reject(request.ID, first.ID)
	require.NoError(t, err)
	_, err = uc.Assign(request.ID, consultant.ID)
	assert.NoError(t, err)
}

func TestAssignComplianceGate(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	onLeave := createTestConsultant(t, db, "Maria Berg", []string{"python"}, 900, model.ConsultantOnLeave)
	request := createTestRequest(t, db, customer.ID, nil)

	_, err := newAssignmentsForTest(db).Assign(request.ID, onLeave.ID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "on leave")
}

func TestAssignUnknownConsultant(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	request := createTestRequest(t, db, customer.ID, nil)

	_, err := newAssignmentsForTest(db).Assign(request.ID, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkSentNotifiesHandlers(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	handler := createTestHandler(t, db)
	consultant := createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)
	request := createTestRequest(t, db, customer.ID, nil)

	uc := newAssignmentsForTest(db)
	assignment, err := uc.Assign(request.ID, consultant.ID)
	require.NoError(t, err)
	require.NoError(t, uc.MarkSent(assignment))

	assert.Equal(t, model.AssignmentSent, assignment.Status)

	var notifications []model.Notification
	require.NoError(t, db.Where("user_id = ?", handler.ID).Find(&notifications).Error)
	require.NotEmpty(t, notifications)

	types := timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 1, countEventType(types, "assignment_sent"))
}

func TestApproveCompletesRequestExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	anna := createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)
	bertil := createTestConsultant(t, db, "Bertil Ek", []string{"python"}, 950, model.ConsultantAvailable)
	request := createTestRequest(t, db, customer.ID, func(r *model.StaffingRequest) {
		r.NumberOfConsultants = 2
	})

	uc := newAssignmentsForTest(db)
	a1, err := uc.Assign(request.ID, anna.ID)
	require.NoError(t, err)
	a2, err := uc.Assign(request.ID, bertil.ID)
	require.NoError(t, err)

	_, err = uc.Approve(request.ID, a1.ID)
	require.NoError(t, err)

	var reloaded model.StaffingRequest
	require.NoError(t, db.First(&reloaded, "id = ?", request.ID).Error)
	assert.NotEqual(t, model.RequestStatusCompleted, reloaded.Status)

	_, err = uc.Approve(request.ID, a2.ID)
	require.NoError(t, err)

	require.NoError(t, db.First(&reloaded, "id = ?", request.ID).Error)
	assert.Equal(t, model.RequestStatusCompleted, reloaded.Status)

	// Re-approving an already confirmed assignment must not re-complete.
	_, err = uc.Approve(request.ID, a2.ID)
	require.NoError(t, err)

	types := timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 1, countEventType(types, "request_completed"))
	assert.Equal(t, 3, countEventType(types, "assignment_confirmed"))
}

func TestRejectReleasesConsultant(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	consultant := createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)
	request := createTestRequest(t, db, customer.ID, nil)

	uc := newAssignmentsForTest(db)
	assignment, err := uc.Assign(request.ID, consultant.ID)
	require.NoError(t, err)

	rejected, err := uc.Reject(request.ID, assignment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AssignmentRejected, rejected.Status)

	var reloaded model.Consultant
	require.NoError(t, db.First(&reloaded, "id = ?", consultant.ID).Error)
	assert.Equal(t, model.ConsultantAvailable, reloaded.Status)
	assert.Nil(t, reloaded.CurrentCustomerID)

	types := timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 1, countEventType(types, "assignment_rejected"))
}

func TestApproveAssignmentFromOtherRequest(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	anna := createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)
	reqA := createTestRequest(t, db, customer.ID, nil)
	reqB := createTestRequest(t, db, customer.ID, nil)

	uc := newAssignmentsForTest(db)
	assignment, err := uc.Assign(reqA.ID, anna.ID)
	require.NoError(t, err)

	_, err = uc.Approve(reqB.ID, assignment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
