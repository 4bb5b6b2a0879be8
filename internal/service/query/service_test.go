package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
	domain "github.com/talenthive/hr-assistant-go/internal/domain/query"
)

func TestParse_SelfLeaveBalance(t *testing.T) {
	s := NewService()

	parsed := s.Parse("What is my leave balance?", "NAS101")

	assert.Equal(t, domain.IntentLeaveBalance, parsed.Intent)
	assert.True(t, parsed.Params.IsSelfQuery)
	assert.Equal(t, "NAS101", parsed.Params.EmployeeID)
	assert.Contains(t, parsed.RequestedData, employee.CategoryLeave)
	assert.Greater(t, parsed.Confidence, 0.5)
}

func TestParse_EmployeeIDExtraction(t *testing.T) {
	s := NewService()

	parsed := s.Parse("What is the salary of NAS101?", "NAS999")

	assert.Equal(t, domain.IntentSalaryInfo, parsed.Intent)
	assert.Equal(t, "NAS101", parsed.Params.EmployeeID)
	assert.False(t, parsed.Params.IsSelfQuery)
	assert.Contains(t, parsed.RequestedData, employee.CategorySalary)
	assert.InDelta(t, 0.8, parsed.Confidence, 0.001)
}

func TestParse_MultipleEmployeeIDs(t *testing.T) {
	s := NewService()

	parsed := s.Parse("Compare NAS101 and NAS102", "")

	assert.Equal(t, "NAS101", parsed.Params.EmployeeID)
	assert.Equal(t, []string{"NAS102"}, parsed.Params.AdditionalEmployeeIDs)
	assert.Equal(t, domain.IntentEmployeeInfo, parsed.Intent)
}

func TestParse_NameExtraction(t *testing.T) {
	s := NewService()

	parsed := s.Parse("Get contact details for Sarah Johnson", "NAS999")

	assert.Equal(t, domain.IntentContactInfo, parsed.Intent)
	assert.Empty(t, parsed.Params.EmployeeID)
	assert.Equal(t, "Sarah Johnson", parsed.Params.Name)
	assert.Contains(t, parsed.RequestedData, employee.CategoryContact)
}

func TestParse_HonorificName(t *testing.T) {
	s := NewService()

	parsed := s.Parse("Get the profile of Mr Smith", "")

	assert.Equal(t, "Smith", parsed.Params.Name)
}

func TestParse_StopWordsAreNotNames(t *testing.T) {
	s := NewService()

	parsed := s.Parse("Find the Software Engineer on duty", "")

	assert.Empty(t, parsed.Params.Name)
}

func TestParse_DepartmentAndGrade(t *testing.T) {
	s := NewService()

	parsed := s.Parse("Show all level 2 employees in Finance", "")

	assert.Equal(t, "Finance", parsed.Params.Department)
	assert.Equal(t, "L2", parsed.Params.Grade)
}

func TestParse_UnknownQuery(t *testing.T) {
	s := NewService()

	parsed := s.Parse("hello there", "NAS101")

	assert.Equal(t, domain.IntentUnknown, parsed.Intent)
	assert.Zero(t, parsed.Confidence)
	assert.Empty(t, parsed.RequestedData)
}

func TestParse_Deterministic(t *testing.T) {
	s := NewService()

	first := s.Parse("What is the salary of NAS101?", "NAS999")
	second := s.Parse("What is the salary of NAS101?", "NAS999")

	assert.Equal(t, first, second)
}

func TestSearchStrategy(t *testing.T) {
	s := NewService()

	tests := []struct {
		name   string
		params domain.Params
		want   domain.Strategy
	}{
		{
			"employee id wins",
			domain.Params{EmployeeID: "NAS101", Name: "Sarah Johnson"},
			domain.StrategyDirectLookup,
		},
		{
			"name plus department",
			domain.Params{Name: "Sarah Johnson", Department: "Engineering"},
			domain.StrategyCriteriaSearch,
		},
		{
			"two criteria without a name",
			domain.Params{Department: "Finance", Role: "analyst"},
			domain.StrategyCriteriaSearch,
		},
		{
			"name alone",
			domain.Params{Name: "Sarah Johnson"},
			domain.StrategySemanticSearch,
		},
		{
			"nothing extracted",
			domain.Params{},
			domain.StrategySemanticSearch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SearchStrategy(domain.ParsedQuery{Params: tt.params})
			assert.Equal(t, tt.want, got)
		})
	}
}
