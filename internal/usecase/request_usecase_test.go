package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/S-Borna/Intelliplan/internal/config"
	"github.com/S-Borna/Intelliplan/internal/dto"
	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/repository"
	"github.com/S-Borna/Intelliplan/internal/service"
	"github.com/S-Borna/Intelliplan/internal/util"
)

func newRequestsForTest(db *gorm.DB) *RequestUsecase {
	return NewRequestUsecase(
		db,
		&config.AppConfig{},
		repository.NewRequestRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewConsultantRepository(db),
		repository.NewActionRepository(db),
		repository.NewTimelineRepository(db),
		repository.NewAssignmentRepository(db),
		service.NewAnalyzerService(),
		newFeasibilityForTest(db),
		newCoordinationForTest(db),
		newTestNotifications(db),
	)
}

func TestCreateStoresCallerSkillsVerbatim(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	consultant := createTestConsultant(t, db, "Anna Svensson", []string{"python", "r"}, 900, model.ConsultantAvailable)

	created, err := newRequestsForTest(db).Create(dto.CreateRequestInput{
		CustomerID:  customer.ID,
		Title:       "Konsult till dataplattform",
		Description: "Krav: 5 års erfarenhet av python.",
	})
	require.NoError(t, err)

	// No caller skills means an empty stored list; the analyzer's
	// extraction (including its synthetic experience entry) stays out.
	assert.Empty(t, util.ParseList(created.RequiredSkills))
	assert.NotEmpty(t, created.AISummary)

	// Assess derived the skill list from the text, dropped the synthetic
	// experience entry, and found a full match.
	require.NotNil(t, created.Assessment)
	assert.Equal(t, 100.0, created.Assessment.SkillsMatchScore)
	assert.Equal(t, []string{consultant.ID}, util.ParseList(created.Assessment.MatchingConsultants))

	detail, err := newRequestsForTest(db).Detail(created.ID)
	require.NoError(t, err)
	require.NotEmpty(t, detail.Matching)
	assert.Equal(t, 100, detail.Matching[0].MatchScore)
}

func TestCreateExplicitSkillsStoredAsGiven(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)

	created, err := newRequestsForTest(db).Create(dto.CreateRequestInput{
		CustomerID:     customer.ID,
		Title:          "Backendutvecklare",
		Description:    "Tjänster i Python och Go.",
		RequiredSkills: []string{"python", "go"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "go"}, util.ParseList(created.RequiredSkills))
}

func TestCreateUrgentTextKeepsMediumPriority(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)

	uc := newRequestsForTest(db)
	created, err := uc.Create(dto.CreateRequestInput{
		CustomerID:  customer.ID,
		Title:       "Akut behov av Python-utvecklare",
		Description: "Vi behöver hjälp omedelbart.",
	})
	require.NoError(t, err)

	// Urgent-sounding text without an explicit priority stays medium and
	// gets the standard plan, not the urgent one.
	assert.Equal(t, model.PriorityMedium, created.Priority)

	actions, err := repository.NewActionRepository(db).ListByRequest(created.ID)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.Equal(t, "verify_requirements", actions[0].ActionType)
}

func TestCreateExplicitUrgentPriorityBuildsUrgentPlan(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	createTestConsultant(t, db, "Anna Svensson", []string{"python"}, 900, model.ConsultantAvailable)

	created, err := newRequestsForTest(db).Create(dto.CreateRequestInput{
		CustomerID:  customer.ID,
		Title:       "Python-utvecklare",
		Description: "Produktionen står stilla.",
		Priority:    "urgent",
	})
	require.NoError(t, err)

	assert.Equal(t, model.PriorityUrgent, created.Priority)

	actions, err := repository.NewActionRepository(db).ListByRequest(created.ID)
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.Equal(t, "immediate_match", actions[0].ActionType)
}

func TestDetailAssignmentCarriesConsultantSkills(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	consultant := createTestConsultant(t, db, "Anna Svensson", []string{"python", "aws"}, 900, model.ConsultantAvailable)

	uc := newRequestsForTest(db)
	created, err := uc.Create(dto.CreateRequestInput{
		CustomerID:     customer.ID,
		Title:          "Backendutvecklare",
		Description:    "Tjänster i Python.",
		RequiredSkills: []string{"python"},
	})
	require.NoError(t, err)

	_, err = newAssignmentsForTest(db).Assign(created.ID, consultant.ID)
	require.NoError(t, err)

	detail, err := uc.Detail(created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Assignments, 1)
	assert.Equal(t, "Anna Svensson", detail.Assignments[0].ConsultantName)
	assert.Equal(t, []string{"python", "aws"}, detail.Assignments[0].ConsultantSkills)
}
