package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Borna/Intelliplan/internal/model"
	"github.com/S-Borna/Intelliplan/internal/util"
)

func TestAssessStrongCandidatePool(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)

	anna := createTestConsultant(t, db, "Anna Svensson", []string{"python", "aws", "docker"}, 900, model.ConsultantAvailable)
	createTestConsultant(t, db, "Bertil Ek", []string{"java"}, 950, model.ConsultantAssigned)

	budget := 1000.0
	request := createTestRequest(t, db, customer.ID, func(r *model.StaffingRequest) {
		r.BudgetMaxHourly = &budget
	})

	assessment, err := newFeasibilityForTest(db).Assess(request.ID)
	require.NoError(t, err)

	assert.Equal(t, model.RatingHigh, assessment.OverallRating)
	assert.Equal(t, 1.0, assessment.ConfidenceScore)
	assert.Equal(t, 100.0, assessment.AvailabilityScore)
	assert.Equal(t, 100.0, assessment.SkillsMatchScore)
	assert.Equal(t, 100.0, assessment.BudgetFitScore)
	assert.Equal(t, 95.0, assessment.TimelineScore)
	assert.Equal(t, 100.0, assessment.ComplianceScore)

	assert.Equal(t, []string{anna.ID}, util.ParseList(assessment.MatchingConsultants))
	assert.Empty(t, util.ParseList(assessment.Risks))

	var reloaded model.StaffingRequest
	require.NoError(t, db.First(&reloaded, "id = ?", request.ID).Error)
	assert.Equal(t, model.RequestStatusAssessed, reloaded.Status)

	types := timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 1, countEventType(types, "assessment_completed"))
}

func TestAssessDerivesSkillsWhenNoneStored(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	createTestConsultant(t, db, "Anna Svensson", []string{"python", "r"}, 900, model.ConsultantAvailable)

	request := createTestRequest(t, db, customer.ID, func(r *model.StaffingRequest) {
		r.RequiredSkills = ""
		r.Description = "Krav: 5 års erfarenhet av python."
	})

	assessment, err := newFeasibilityForTest(db).Assess(request.ID)
	require.NoError(t, err)

	// The skill list comes from the request text; the synthetic
	// experience entry is dropped, so the pool matches in full.
	assert.Equal(t, 100.0, assessment.SkillsMatchScore)

	stored, err := newFeasibilityForTest(db).requestRepo.FindByID(request.ID)
	require.NoError(t, err)
	assert.Empty(t, util.ParseList(stored.RequiredSkills))
}

func TestAssessEmptyPoolRatesLow(t *testing.T) {
	db := newTestDB(t)

	customer := &model.Customer{
		Name:         "Nystartat AB",
		Company:      "Nystartat AB",
		Email:        "info@nystartat.se",
		ContractType: model.ContractTypeNone,
	}
	require.NoError(t, db.Create(customer).Error)

	createTestConsultant(t, db, "Bertil Ek", []string{"java"}, 1200, model.ConsultantAssigned)

	request := createTestRequest(t, db, customer.ID, func(r *model.StaffingRequest) {
		r.StartDate = nil
		r.BudgetMaxHourly = nil
	})

	assessment, err := newFeasibilityForTest(db).Assess(request.ID)
	require.NoError(t, err)

	assert.Equal(t, model.RatingLow, assessment.OverallRating)
	assert.InDelta(t, 0.7, assessment.ConfidenceScore, 1e-9)
	assert.Equal(t, 0.0, assessment.AvailabilityScore)
	assert.Equal(t, 0.0, assessment.SkillsMatchScore)
	assert.Equal(t, 70.0, assessment.BudgetFitScore)
	assert.Equal(t, 70.0, assessment.TimelineScore)
	assert.Equal(t, 50.0, assessment.ComplianceScore)

	assert.Empty(t, util.ParseList(assessment.MatchingConsultants))

	risks := util.ParseList(assessment.Risks)
	assert.Contains(t, risks, "No consultants currently available")
	assert.NotContains(t, risks, "No start date specified")

	alternatives := util.ParseList(assessment.Alternatives)
	assert.Contains(t, alternatives, "Consider a later start date to access more consultants")
}

func TestAssessBudgetFiltersMatching(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)

	cheap := createTestConsultant(t, db, "Anna Svensson", []string{"python", "aws"}, 800, model.ConsultantAvailable)
	createTestConsultant(t, db, "Carl Dyr", []string{"python", "aws"}, 1500, model.ConsultantAvailable)

	budget := 1000.0
	request := createTestRequest(t, db, customer.ID, func(r *model.StaffingRequest) {
		r.BudgetMaxHourly = &budget
		r.NumberOfConsultants = 2
	})

	assessment, err := newFeasibilityForTest(db).Assess(request.ID)
	require.NoError(t, err)

	// The over-budget consultant is excluded from the matching list.
	assert.Equal(t, []string{cheap.ID}, util.ParseList(assessment.MatchingConsultants))
	assert.Equal(t, 50.0, assessment.BudgetFitScore)
	assert.NotEqual(t, model.RatingHigh, assessment.OverallRating)
}

func TestAssessReplacesPriorAssessment(t *testing.T) {
	db := newTestDB(t)
	customer := createTestCustomer(t, db)
	createTestConsultant(t, db, "Anna Svensson", []string{"python", "aws"}, 900, model.ConsultantAvailable)
	request := createTestRequest(t, db, customer.ID, nil)

	uc := newFeasibilityForTest(db)

	first, err := uc.Assess(request.ID)
	require.NoError(t, err)
	second, err := uc.Assess(request.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.FeasibilityAssessment{}).
		Where("request_id = ?", request.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	types := timelineEventTypes(t, db, request.ID)
	assert.Equal(t, 2, countEventType(types, "assessment_completed"))
}

func TestAssessUnknownRequest(t *testing.T) {
	db := newTestDB(t)

	_, err := newFeasibilityForTest(db).Assess("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
