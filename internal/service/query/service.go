// Package query interprets free-text requests into a structured intent the
// orchestrator can act on. The interpreter is rule based and stateless;
// parsing the same text twice yields the same result.
package query

import (
	"regexp"
	"strings"

	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
	domain "github.com/talenthive/hr-assistant-go/internal/domain/query"
)

var employeeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{2,4}\d{2,4}\b`),
	regexp.MustCompile(`(?i)\bEMP\d{2,4}\b`),
	regexp.MustCompile(`\b[A-Z]+\d+[A-Z]*\b`),
}

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:Mr\.?|Mrs\.?|Ms\.?|Dr\.?)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\b`),
	regexp.MustCompile(`employee\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?:for|of|about)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

// nameStopWords filters out title-cased words that look like names but are
// job or org vocabulary.
var nameStopWords = []string{
	"Software", "Engineer", "Manager", "Director", "Department", "Team", "Employee",
}

var departmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(engineering|hr|human\s+resources|finance|marketing|sales|it|operations|legal)\b`),
	regexp.MustCompile(`(?i)from\s+(?:the\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+department`),
	regexp.MustCompile(`(?i)in\s+(?:the\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+department`),
	regexp.MustCompile(`(?i)department\s+of\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
}

var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(manager|director|supervisor|lead|senior|junior|analyst|developer|engineer|specialist|coordinator|executive|admin|administrator)\b`),
	regexp.MustCompile(`(?i)role\s+of\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`(?i)position\s+of\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
}

var gradePattern = regexp.MustCompile(`(?i)\b(L[0-4]|level\s+[0-4])\b`)

// intentPatterns are evaluated in order; the first group with a match wins.
var intentPatterns = []struct {
	intent   domain.Intent
	patterns []*regexp.Regexp
}{
	{domain.IntentSalaryInfo, []*regexp.Regexp{
		regexp.MustCompile(`\b(salary|pay|compensation|wage|income)\b`),
		regexp.MustCompile(`\b(allowance|bonus|deduction)\b`),
		regexp.MustCompile(`\b(basic\s+salary|net\s+salary)\b`),
	}},
	{domain.IntentLeaveBalance, []*regexp.Regexp{
		regexp.MustCompile(`\b(leave|vacation|holiday)\s+(balance|remaining|left)\b`),
		regexp.MustCompile(`\b(annual\s+leave|sick\s+leave|casual\s+leave)\b`),
		regexp.MustCompile(`\bhow\s+many\s+leaves?\b`),
	}},
	{domain.IntentContactInfo, []*regexp.Regexp{
		regexp.MustCompile(`\b(contact|phone|email|address)\b`),
		regexp.MustCompile(`\b(mobile|telephone|landline)\b`),
	}},
	{domain.IntentDepartmentInfo, []*regexp.Regexp{
		regexp.MustCompile(`\b(department|dept|division|team)\b`),
		regexp.MustCompile(`\b(manager|supervisor|reporting)\b`),
	}},
	{domain.IntentSearchEmployees, []*regexp.Regexp{
		regexp.MustCompile(`\b(find|search|show\s+me|get\s+me)\b.*\b(employee|staff|person|people)\b`),
		regexp.MustCompile(`\bwho\s+(is|are)\b`),
		regexp.MustCompile(`\b(list\s+of|all\s+employees)\b`),
	}},
}

var selfPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bmy\b`),
	regexp.MustCompile(`\bi\s+`),
	regexp.MustCompile(`\bme\b`),
	regexp.MustCompile(`\bmyself\b`),
	regexp.MustCompile(`\bdo\s+i\b`),
	regexp.MustCompile(`\bam\s+i\b`),
	regexp.MustCompile(`\bwhat\s+is\s+my\b`),
}

// dataPatterns map surface vocabulary to the profile categories being asked
// for.
var dataPatterns = []struct {
	category employee.Category
	patterns []*regexp.Regexp
}{
	{employee.CategorySalary, []*regexp.Regexp{
		regexp.MustCompile(`\b(salary|pay|compensation|wage|income)\b`),
	}},
	{employee.CategoryLeave, []*regexp.Regexp{
		regexp.MustCompile(`\b(leave|vacation|holiday)\s+(balance|remaining|left)\b`),
	}},
	{employee.CategoryAttendance, []*regexp.Regexp{
		regexp.MustCompile(`\b(attendance|punch|check[\s-]?in|working\s+hours|late)\b`),
	}},
	{employee.CategoryContact, []*regexp.Regexp{
		regexp.MustCompile(`\b(contact|phone|email|address)\b`),
	}},
	{employee.CategoryBasic, []*regexp.Regexp{
		regexp.MustCompile(`\b(name|id|department|position|role|grade)\b`),
	}},
	{employee.CategoryBanking, []*regexp.Regexp{
		regexp.MustCompile(`\b(bank|account|banking)\b`),
	}},
	{employee.CategoryFamily, []*regexp.Regexp{
		regexp.MustCompile(`\b(family|emergency|contact)\b`),
	}},
	{employee.CategoryContract, []*regexp.Regexp{
		regexp.MustCompile(`\b(contract|employment|hire|joining)\b`),
	}},
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Parse interprets a free-text request. A requesterID is only used to
// resolve self-referential queries ("my leave balance").
func (s *Service) Parse(text, requesterID string) domain.ParsedQuery {
	lower := strings.ToLower(strings.TrimSpace(text))

	params := extractParams(text)
	intent := determineIntent(lower, params)

	if requesterID != "" && isSelfQuery(lower) {
		params.EmployeeID = requesterID
		params.IsSelfQuery = true
	}

	return domain.ParsedQuery{
		Original:      text,
		Intent:        intent,
		Params:        params,
		RequestedData: extractRequestedData(lower),
		Confidence:    confidence(text, intent, params),
	}
}

// SearchStrategy picks the lookup path for a parsed query.
func (s *Service) SearchStrategy(parsed domain.ParsedQuery) domain.Strategy {
	p := parsed.Params
	if p.EmployeeID != "" {
		return domain.StrategyDirectLookup
	}
	if p.Name != "" && p.Department != "" {
		return domain.StrategyCriteriaSearch
	}

	criteria := 0
	for _, v := range []string{p.Name, p.Department, p.Role, p.Grade} {
		if v != "" {
			criteria++
		}
	}
	if criteria >= 2 {
		return domain.StrategyCriteriaSearch
	}
	return domain.StrategySemanticSearch
}

func extractParams(text string) domain.Params {
	var params domain.Params

	if ids := collect(text, employeeIDPatterns, 0); len(ids) > 0 {
		params.EmployeeID = ids[0]
		params.AdditionalEmployeeIDs = ids[1:]
		if len(params.AdditionalEmployeeIDs) == 0 {
			params.AdditionalEmployeeIDs = nil
		}
	}
	if names := extractNames(text); len(names) > 0 {
		params.Name = names[0]
		if len(names) > 1 {
			params.AdditionalNames = names[1:]
		}
	}
	if deps := collect(text, departmentPatterns, 1); len(deps) > 0 {
		params.Department = deps[0]
	}
	if roles := collect(text, rolePatterns, 1); len(roles) > 0 {
		params.Role = roles[0]
	}
	if grades := extractGrades(text); len(grades) > 0 {
		params.Grade = grades[0]
	}
	return params
}

// collect gathers deduplicated matches across patterns, preferring the
// capture group at groupIdx when the pattern has one.
func collect(text string, patterns []*regexp.Regexp, groupIdx int) []string {
	var out []string
	seen := make(map[string]bool)
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			value := m[0]
			if groupIdx > 0 && len(m) > groupIdx && m[groupIdx] != "" {
				value = m[groupIdx]
			}
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			out = append(out, value)
		}
	}
	return out
}

func extractNames(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, re := range namePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			name := m[len(m)-1]
			if name == "" || seen[name] || containsStopWord(name) {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func containsStopWord(name string) bool {
	for _, w := range nameStopWords {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

func extractGrades(text string) []string {
	var grades []string
	seen := make(map[string]bool)
	for _, m := range gradePattern.FindAllString(text, -1) {
		normalized := strings.ToUpper(m)
		if strings.HasPrefix(normalized, "LEVEL") {
			normalized = "L" + normalized[len(normalized)-1:]
		}
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		grades = append(grades, normalized)
	}
	return grades
}

func determineIntent(lower string, params domain.Params) domain.Intent {
	for _, group := range intentPatterns {
		for _, re := range group.patterns {
			if re.MatchString(lower) {
				return group.intent
			}
		}
	}
	for _, keyword := range []string{"employee", "information", "details", "profile"} {
		if strings.Contains(lower, keyword) {
			return domain.IntentEmployeeInfo
		}
	}
	if params.HasIdentifier() {
		return domain.IntentEmployeeInfo
	}
	return domain.IntentUnknown
}

func isSelfQuery(lower string) bool {
	for _, re := range selfPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func extractRequestedData(lower string) []employee.Category {
	var out []employee.Category
	for _, group := range dataPatterns {
		for _, re := range group.patterns {
			if re.MatchString(lower) {
				out = append(out, group.category)
				break
			}
		}
	}
	return out
}

func confidence(text string, intent domain.Intent, params domain.Params) float64 {
	score := 0.0
	if intent != domain.IntentUnknown {
		score += 0.3
	}
	switch {
	case params.EmployeeID != "":
		score += 0.4
	case params.Name != "":
		score += 0.3
	}
	if params.Department != "" {
		score += 0.1
	}
	if params.Role != "" {
		score += 0.1
	}
	if len(strings.Fields(text)) >= 3 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
