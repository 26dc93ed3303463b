package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
)

func TestCreatePlanStandard(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	request := createTestRequest(t, db, customer.ID, nil)

	actions, err := newCoordinationForTest(db).CreatePlan(request.ID, "")
	require.NoError(t, err)

	require.Len(t, actions, 6)
	assert.Equal(t, "verify_requirements", actions[0].ActionType)
	assert.Equal(t, "notify_customer", actions[5].ActionType)
	for i, action := range actions {
		assert.Equal(t, model.ActionPending, action.Status)
		assert.Equal(t, i, action.Order)
	}

	types := timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 1, countEventType(types, "action_plan_created"))
}

func TestCreatePlanUrgentPriorityOverridesType(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	request := createTestRequest(t, db, customer.ID, func(r *model.StaffingRequest) {
		r.Priority = model.PriorityUrgent
	})

	actions, err := newCoordinationForTest(db).CreatePlan(request.ID, PlanStandardStaffing)
	require.NoError(t, err)

	require.Len(t, actions, 4)
	assert.Equal(t, "immediate_match", actions[0].ActionType)
}

func TestCreatePlanUnknownTypeFallsBack(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	request := createTestRequest(t, db, customer.ID, nil)

	actions, err := newCoordinationForTest(db).CreatePlan(request.ID, "nonexistent_plan")
	require.NoError(t, err)
	assert.Len(t, actions, 6)

	// The timeline records the caller's plan name even though the
	// standard template was used.
	events, err := repository.NewTimelineRepository(db).ListByRequest(request.ID)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	var title string
	for _, e := range events {
		if e.EventType == "action_plan_created" {
			title = e.Title
		}
	}
	assert.Contains(t, title, "nonexistent_plan")
}

func TestCreatePlanUnknownRequest(t *testing.T) {
	db := newTestDB(t)

	_, err := newCoordinationForTest(db).CreatePlan("missing-id", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecuteNextRunsInOrder(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	request := createTestRequest(t, db, customer.ID, nil)

	uc := newCoordinationForTest(db)
	_, err := uc.CreatePlan(request.ID, PlanExtension)
	require.NoError(t, err)

	first, err := uc.ExecuteNext(request.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "verify_current_assignment", first.ActionType)
	assert.Equal(t, model.ActionCompleted, first.Status)
	assert.Equal(t, "Current assignment verified — eligible for extension", first.Result)
	require.NotNil(t, first.CompletedAt)

	second, err := uc.ExecuteNext(request.ID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "consultant_availability", second.ActionType)

	// Two of four steps done, the request stays put.
	var reloaded model.StaffingRequest
	require.NoError(t, db.First(&reloaded, "id = ?", request.ID).Error)
	assert.Equal(t, model.RequestStatusSubmitted, reloaded.Status)
}

func TestExecuteAllDrainsPlanAndCompletes(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	request := createTestRequest(t, db, customer.ID, nil)

	uc := newCoordinationForTest(db)
	_, err := uc.CreatePlan(request.ID, "")
	require.NoError(t, err)

	executed, err := uc.ExecuteAll(request.ID)
	require.NoError(t, err)
	assert.Len(t, executed, 6)

	var reloaded model.StaffingRequest
	require.NoError(t, db.First(&reloaded, "id = ?", request.ID).Error)
	assert.Equal(t, model.RequestStatusInProgress, reloaded.Status)

	types := timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 6, countEventType(types, "action_completed"))
	assert.Equal(t, 1, countEventType(types, "all_actions_completed"))

	// Second drain finds nothing and changes nothing.
	again, err := uc.ExecuteAll(request.ID)
	require.NoError(t, err)
	assert.Empty(t, again)
	types = timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 1, countEventType(types, "all_actions_completed"))
}

func TestExecuteNextWithoutPlan(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	request := createTestRequest(t, db, customer.ID, nil)

	action, err := newCoordinationForTest(db).ExecuteNext(request.ID)
	require.NoError(t, err)
	assert.Nil(t, action)
}
