package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Borna/Intelliplan/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func TestCheckRequestCleanPass(t *testing.T) {
	s := NewComplianceService()

	request := &model.StaffingRequest{
		Customer:        &model.Customer{ContractType: "framework"},
		BudgetMaxHourly: floatPtr(1000),
	}
	pool := []model.Consultant{
		{Status: model.ConsultantAvailable, HourlyRate: 900},
		{Status: model.ConsultantAssigned, HourlyRate: 1100},
	}

	result := s.CheckRequest(request, pool)

	assert.Equal(t, 100.0, result.Score)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Risks)
	assert.Equal(t, 5, result.RulesChecked)
}

func TestCheckRequestAllRulesFail(t *testing.T) {
	s := NewComplianceService()

	// No contract, nobody available, budget far below the pool average.
	request := &model.StaffingRequest{
		Customer:        &model.Customer{ContractType: model.ContractTypeNone},
		BudgetMaxHourly: floatPtr(100),
	}
	pool := []model.Consultant{
		{Status: model.ConsultantAssigned, HourlyRate: 1000},
		{Status: model.ConsultantOnLeave, HourlyRate: 1200},
	}

	result := s.CheckRequest(request, pool)

	assert.Len(t, result.Violations, 2)
	assert.Len(t, result.Warnings, 1)
	assert.Equal(t, 40.0, result.Score)
	assert.False(t, result.Passed)

	require.Len(t, result.Risks, 3)
	assert.Contains(t, result.Risks[0], "[blocking] ")
	assert.Contains(t, result.Risks[2], "[warning] ")
}

func TestCheckRequestEndingSoonCountsAsAvailable(t *testing.T) {
	s := NewComplianceService()

	request := &model.StaffingRequest{
		Customer: &model.Customer{ContractType: "framework"},
	}
	pool := []model.Consultant{
		{Status: model.ConsultantEndingSoon, HourlyRate: 950},
	}

	result := s.CheckRequest(request, pool)

	assert.True(t, result.Passed)
	assert.Empty(t, result.Violations)
}

func TestCheckRequestNilCustomerSkipsContractRule(t *testing.T) {
	s := NewComplianceService()

	request := &model.StaffingRequest{}
	pool := []model.Consultant{{Status: model.ConsultantAvailable}}

	result := s.CheckRequest(request, pool)

	assert.True(t, result.Passed)
	assert.Equal(t, 100.0, result.Score)
}

func TestCheckRequestNilBudgetSkipsRateCap(t *testing.T) {
	s := NewComplianceService()

	request := &model.StaffingRequest{
		Customer: &model.Customer{ContractType: "framework"},
	}
	pool := []model.Consultant{
		{Status: model.ConsultantAvailable, HourlyRate: 2000},
	}

	result := s.CheckRequest(request, pool)

	assert.Empty(t, result.Warnings)
}

func TestCheckAssignmentAvailableConsultant(t *testing.T) {
	s := NewComplianceService()

	consultant := &model.Consultant{Name: "Anna Svensson", Status: model.ConsultantAvailable, HourlyRate: 900}
	request := &model.StaffingRequest{BudgetMaxHourly: floatPtr(1000)}

	result := s.CheckAssignment(consultant, request)

	assert.True(t, result.Compliant)
	assert.Empty(t, result.Issues)
}

func TestCheckAssignmentAssignedConsultantBlocks(t *testing.T) {
	s := NewComplianceService()

	consultant := &model.Consultant{Name: "Erik Lund", Status: model.ConsultantAssigned, HourlyRate: 900}
	request := &model.StaffingRequest{}

	result := s.CheckAssignment(consultant, request)

	assert.False(t, result.Compliant)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityBlocking, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Message, "Erik Lund")
}

func TestCheckAssignmentOnLeaveBlocks(t *testing.T) {
	s := NewComplianceService()

	consultant := &model.Consultant{Name: "Maria Berg", Status: model.ConsultantOnLeave}
	request := &model.StaffingRequest{}

	result := s.CheckAssignment(consultant, request)

	assert.False(t, result.Compliant)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "availability", result.Issues[0].Rule)
}

func TestCheckAssignmentRateOverBudgetWarnsOnly(t *testing.T) {
	s := NewComplianceService()

	consultant := &model.Consultant{Name: "Johan Ek", Status: model.ConsultantAvailable, HourlyRate: 1200}
	request := &model.StaffingRequest{BudgetMaxHourly: floatPtr(1000)}

	result := s.CheckAssignment(consultant, request)

	assert.True(t, result.Compliant)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Equal(t, "rate_cap", result.Issues[0].Rule)
}
