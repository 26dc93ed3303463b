package service

import (
	"fmt"

	"github.com/S-Borna/Intelliplan/internal/model"
)

type RuleSeverity string

const (
	SeverityBlocking RuleSeverity = "blocking"
	SeverityWarning  RuleSeverity = "warning"
)

type complianceRule struct {
	ID          string
	Name        string
	Description string
	Severity    RuleSeverity
	Check       string
}

// Built-in compliance rules. The weekly_hours and notice_days checks are
// pass-through stubs; the data they need is not tracked.
var defaultRules = []complianceRule{
	{
		ID:          "max_hours_weekly",
		Name:        "Maximum Weekly Hours",
		Description: "EU Working Time Directive — max 48h/week",
		Severity:    SeverityBlocking,
		Check:       "weekly_hours",
	},
	{
		ID:          "notice_period",
		Name:        "Minimum Notice Period",
		Description: "Assignments require at least 5 business days notice",
		Severity:    SeverityWarning,
		Check:       "notice_days",
	},
	{
		ID:          "contract_coverage",
		Name:        "Contract Coverage",
		Description: "Customer must have an active framework agreement",
		Severity:    SeverityBlocking,
		Check:       "contract",
	},
	{
		ID:          "rate_cap",
		Name:        "Rate Cap Compliance",
		Description: "Hourly rate must not exceed contract maximum",
		Severity:    SeverityWarning,
		Check:       "rate_cap",
	},
	{
		ID:          "consultant_availability",
		Name:        "Consultant Availability Verification",
		Description: "Consultant must not have conflicting assignments",
		Severity:    SeverityBlocking,
		Check:       "availability",
	},
}

type ComplianceResult struct {
	Score        float64  `json:"score"`
	Risks        []string `json:"risks"`
	Violations   []string `json:"violations"`
	Warnings     []string `json:"warnings"`
	RulesChecked int      `json:"rules_checked"`
	Passed       bool     `json:"passed"`
}

type ComplianceIssue struct {
	Rule     string       `json:"rule"`
	Severity RuleSeverity `json:"severity"`
	Message  string       `json:"message"`
}

type AssignmentComplianceResult struct {
	Compliant bool              `json:"compliant"`
	Issues    []ComplianceIssue `json:"issues"`
}

type ComplianceServiceInterface interface {
	CheckRequest(request *model.StaffingRequest, consultants []model.Consultant) ComplianceResult
	CheckAssignment(consultant *model.Consultant, request *model.StaffingRequest) AssignmentComplianceResult
}

// ComplianceService evaluates requests and assignments against the built-in
// rule list. Pure over its inputs; the request's Customer must be preloaded
// for the contract check to see the contract type.
type ComplianceService struct {
	rules []complianceRule
}

func NewComplianceService() *ComplianceService {
	return &ComplianceService{rules: defaultRules}
}

// CheckRequest runs every rule. Score starts at 100 and loses 25 per
// blocking violation and 10 per warning, floored at 0.
func (s *ComplianceService) CheckRequest(request *model.StaffingRequest, consultants []model.Consultant) ComplianceResult {
	violations := []string{}
	warnings := []string{}

	for _, rule := range s.rules {
		msg := s.runCheck(rule, request, consultants)
		if msg == "" {
			continue
		}
		if rule.Severity == SeverityBlocking {
			violations = append(violations, msg)
		} else {
			warnings = append(warnings, msg)
		}
	}

	score := 100 - float64(len(violations))*25 - float64(len(warnings))*10
	if score < 0 {
		score = 0
	}

	risks := make([]string, 0, len(violations)+len(warnings))
	for _, v := range violations {
		risks = append(risks, "[blocking] "+v)
	}
	for _, w := range warnings {
		risks = append(risks, "[warning] "+w)
	}

	return ComplianceResult{
		Score:        score,
		Risks:        risks,
		Violations:   violations,
		Warnings:     warnings,
		RulesChecked: len(s.rules),
		Passed:       len(violations) == 0,
	}
}

// CheckAssignment validates a single consultant-request pairing.
func (s *ComplianceService) CheckAssignment(consultant *model.Consultant, request *model.StaffingRequest) AssignmentComplianceResult {
	var issues []ComplianceIssue

	if consultant.Status == model.ConsultantAssigned {
		issues = append(issues, ComplianceIssue{
			Rule:     "availability",
			Severity: SeverityBlocking,
			Message:  fmt.Sprintf("%s is currently assigned to another customer", consultant.Name),
		})
	}

	if consultant.Status == model.ConsultantOnLeave {
		issues = append(issues, ComplianceIssue{
			Rule:     "availability",
			Severity: SeverityBlocking,
			Message:  fmt.Sprintf("%s is currently on leave", consultant.Name),
		})
	}

	if request.BudgetMaxHourly != nil && consultant.HourlyRate > *request.BudgetMaxHourly {
		issues = append(issues, ComplianceIssue{
			Rule:     "rate_cap",
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Consultant rate (%.0f/h) exceeds budget (%.0f/h)",
				consultant.HourlyRate, *request.BudgetMaxHourly),
		})
	}

	blocking := 0
	for _, issue := range issues {
		if issue.Severity == SeverityBlocking {
			blocking++
		}
	}

	return AssignmentComplianceResult{
		Compliant: blocking == 0,
		Issues:    issues,
	}
}

func (s *ComplianceService) runCheck(rule complianceRule, request *model.StaffingRequest, consultants []model.Consultant) string {
	switch rule.Check {
	case "contract":
		if request.Customer != nil && request.Customer.ContractType == model.ContractTypeNone {
			return fmt.Sprintf("%s: Customer has no active framework agreement", rule.Name)
		}
		return ""

	case "availability":
		available := 0
		for _, c := range consultants {
			if c.Status == model.ConsultantAvailable || c.Status == model.ConsultantEndingSoon {
				available++
			}
		}
		if available == 0 {
			return fmt.Sprintf("%s: No consultants available for verification", rule.Name)
		}
		return ""

	case "rate_cap":
		if request.BudgetMaxHourly != nil {
			var total float64
			for _, c := range consultants {
				total += c.HourlyRate
			}
			avgRate := total / float64(max(len(consultants), 1))
			if *request.BudgetMaxHourly < avgRate*0.5 {
				return fmt.Sprintf("%s: Budget significantly below market rates", rule.Name)
			}
		}
		return ""

	default:
		// weekly_hours and notice_days: always-pass stubs
		return ""
	}
}
