package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/talenthive/hr-assistant-go/internal/domain/access"
	domain "github.com/talenthive/hr-assistant-go/internal/domain/assistant"
	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
	"github.com/talenthive/hr-assistant-go/internal/domain/query"
	"github.com/talenthive/hr-assistant-go/internal/domain/report"
	"github.com/talenthive/hr-assistant-go/internal/pkg/cache"
	"github.com/talenthive/hr-assistant-go/internal/pkg/hrapi"
	queryservice "github.com/talenthive/hr-assistant-go/internal/service/query"
	reportservice "github.com/talenthive/hr-assistant-go/internal/service/report"
)

// minConfidence is the threshold below which the assistant asks for
// clarification instead of guessing.
const minConfidence = 0.3

// searchLimit bounds directory lookups when resolving a subject by name or
// criteria.
const searchLimit = 5

// RecordSource is the remote HR system the assistant reads from.
type RecordSource interface {
	Login(ctx context.Context, employeeID string) (string, error)
	FetchProfile(ctx context.Context, token, employeeID string) (*employee.Record, error)
	FetchTeamRoster(ctx context.Context, token, managerID string) (*employee.TeamRoster, error)
	FetchAttendance(ctx context.Context, token string, employeeIDs []string, rng attendance.DateRange) ([]attendance.Event, error)
	FetchCompanyAttendance(ctx context.Context, token, companyID string, rng attendance.DateRange) ([]attendance.Event, error)
	FetchOrgStructure(ctx context.Context, token, organizationID string) ([]report.Company, error)
}

// Directory is the optional document-store search path for resolving
// employees by name or free text.
type Directory interface {
	Available() bool
	ByID(ctx context.Context, employeeID string) (*employee.Record, error)
	ByText(ctx context.Context, text string, limit int) ([]employee.Record, error)
	ByCriteria(ctx context.Context, params query.Params, limit int) ([]employee.Record, error)
}

type AssistantServiceImpl struct {
	source    RecordSource
	cache     *cache.HRCache
	directory Directory
	parser    *queryservice.Service
	reports   *reportservice.Service
	logger    *slog.Logger
	now       func() time.Time
}

func NewAssistantService(
	source RecordSource,
	hrCache *cache.HRCache,
	directory Directory,
	parser *queryservice.Service,
	reports *reportservice.Service,
	logger *slog.Logger,
	now func() time.Time,
) domain.AssistantService {
	if now == nil {
		now = time.Now
	}
	return &AssistantServiceImpl{
		source:    source,
		cache:     hrCache,
		directory: directory,
		parser:    parser,
		reports:   reports,
		logger:    logger,
		now:       now,
	}
}

// token returns a cached upstream token for the employee, logging in when
// none is cached.
func (s *AssistantServiceImpl) token(ctx context.Context, employeeID string) (string, error) {
	if tok, ok := s.cache.Token(ctx, employeeID); ok {
		return tok, nil
	}
	tok, err := s.source.Login(ctx, employeeID)
	if err != nil {
		return "", err
	}
	s.cache.SetToken(ctx, employeeID, tok)
	return tok, nil
}

// withToken runs fn with a valid token, re-authenticating once when the
// upstream rejects the cached one.
func (s *AssistantServiceImpl) withToken(ctx context.Context, employeeID string, fn func(token string) error) error {
	tok, err := s.token(ctx, employeeID)
	if err != nil {
		return err
	}

	err = fn(tok)
	if err == nil || !errors.Is(err, hrapi.ErrAuth) {
		return err
	}

	s.logger.Debug("cached token rejected, re-authenticating", slog.String("employee_id", employeeID))
	tok, err = s.source.Login(ctx, employeeID)
	if err != nil {
		return err
	}
	s.cache.SetToken(ctx, employeeID, tok)
	return fn(tok)
}

// profile loads an employee record, cache first. All upstream calls are
// authenticated as the requester.
func (s *AssistantServiceImpl) profile(ctx context.Context, requesterID, subjectID string) (employee.Record, error) {
	if rec, ok := s.cache.Profile(ctx, subjectID); ok {
		return rec, nil
	}

	var rec *employee.Record
	err := s.withToken(ctx, requesterID, func(token string) error {
		var err error
		rec, err = s.source.FetchProfile(ctx, token, subjectID)
		return err
	})
	if err != nil {
		if errors.Is(err, hrapi.ErrNotFound) {
			return employee.Record{}, employee.ErrEmployeeNotFound
		}
		return employee.Record{}, fmt.Errorf("failed to load employee %s: %w", subjectID, err)
	}

	s.cache.SetProfile(ctx, subjectID, *rec)
	if rec.ID != "" {
		s.cache.SetDBID(ctx, subjectID, rec.ID)
	}
	return *rec, nil
}

func (s *AssistantServiceImpl) roster(ctx context.Context, managerID string) (employee.TeamRoster, error) {
	if r, ok := s.cache.TeamRoster(ctx, managerID); ok {
		return r, nil
	}

	var roster *employee.TeamRoster
	err := s.withToken(ctx, managerID, func(token string) error {
		var err error
		roster, err = s.source.FetchTeamRoster(ctx, token, managerID)
		return err
	})
	if err != nil {
		if errors.Is(err, hrapi.ErrNotFound) {
			return employee.TeamRoster{}, attendance.ErrNoTeamMembers
		}
		return employee.TeamRoster{}, fmt.Errorf("failed to load team of %s: %w", managerID, err)
	}

	s.cache.SetTeamRoster(ctx, managerID, *roster)
	return *roster, nil
}

// attendanceWindow loads attendance for a set of employees, caching the
// window under the given subject key.
func (s *AssistantServiceImpl) attendanceWindow(ctx context.Context, requesterID, subject string, employeeIDs []string, rng attendance.DateRange) ([]attendance.Event, error) {
	if events, ok := s.cache.Attendance(ctx, subject, rng); ok {
		return events, nil
	}

	var events []attendance.Event
	err := s.withToken(ctx, requesterID, func(token string) error {
		var err error
		events, err = s.source.FetchAttendance(ctx, token, employeeIDs, rng)
		return err
	})
	if err != nil {
		if errors.Is(err, hrapi.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}

	s.cache.SetAttendance(ctx, subject, rng, events)
	return events, nil
}

// ResolveDataRequest implements assistant.AssistantService.
func (s *AssistantServiceImpl) ResolveDataRequest(ctx context.Context, queryText, requesterID string) (domain.Result, error) {
	parsed := s.parser.Parse(queryText, requesterID)
	result := domain.Result{Query: parsed}

	if parsed.Intent == query.IntentUnknown || parsed.Confidence < minConfidence {
		result.Message = "I couldn't work out what you're asking for. Try naming an employee or asking about salary, leave, contact or attendance."
		return result, nil
	}

	requester, err := s.profile(ctx, requesterID, requesterID)
	if err != nil {
		return result, err
	}
	level := access.ResolveLevel(requester.Grade, requester.Role)

	targetID, err := s.resolveTarget(ctx, requesterID, parsed)
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		result.Message = "I couldn't find an employee matching that request."
		return result, nil
	case errors.Is(err, employee.ErrAmbiguousQuery):
		result.Message = "That request matches more than one employee. Please narrow it down, for example with an employee id."
		return result, nil
	case err != nil:
		return result, err
	}

	var teamIDs []string
	if targetID != requesterID && access.LevelScope(level) == access.ScopeTeam {
		roster, err := s.roster(ctx, requesterID)
		if err != nil && !errors.Is(err, attendance.ErrNoTeamMembers) {
			return result, err
		}
		teamIDs = roster.MemberIDs
	}

	if !access.CanAccess(level, requesterID, targetID, teamIDs) {
		s.logger.Info("data request denied",
			slog.String("requester_id", requesterID),
			slog.String("target_id", targetID),
			slog.String("level", string(level)))
		result.Message = "You're not authorized to view this employee's information."
		return result, nil
	}

	target, err := s.profile(ctx, requesterID, targetID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		result.Message = "I couldn't find an employee matching that request."
		return result, nil
	}
	if err != nil {
		return result, err
	}

	projected := access.Project(level, target)
	result.Data = &projected

	if wantsAttendance(parsed) && access.Allows(level, employee.CategoryAttendance) {
		rng, rngErr := attendance.ResolveDateRange("recent", s.now())
		if rngErr == nil {
			events, err := s.attendanceWindow(ctx, requesterID, targetID, []string{targetID}, rng)
			if err != nil {
				return result, err
			}
			result.Attendance = events
			result.FormattedSummary = FormatPersonalAttendance(events, rng, s.now())
		}
	}

	result.Success = true
	result.Message = fmt.Sprintf("Here is the information for %s.", displayName(target))
	return result, nil
}

// resolveTarget pins the query to one employee id. Queries with no subject
// at all fall back to the requester.
func (s *AssistantServiceImpl) resolveTarget(ctx context.Context, requesterID string, parsed query.ParsedQuery) (string, error) {
	p := parsed.Params
	if p.EmployeeID != "" {
		return p.EmployeeID, nil
	}
	if p.Name == "" && p.Department == "" && p.Role == "" && p.Grade == "" {
		return requesterID, nil
	}

	var (
		records []employee.Record
		err     error
	)
	switch s.parser.SearchStrategy(parsed) {
	case query.StrategyCriteriaSearch:
		records, err = s.directory.ByCriteria(ctx, p, searchLimit)
	default:
		records, err = s.directory.ByText(ctx, parsed.Original, searchLimit)
		if err == nil && len(records) == 0 {
			records, err = s.directory.ByCriteria(ctx, p, searchLimit)
		}
	}
	if err != nil {
		return "", fmt.Errorf("failed to search directory: %w", err)
	}

	switch len(records) {
	case 0:
		return "", employee.ErrEmployeeNotFound
	case 1:
		return records[0].EmployeeID, nil
	default:
		return "", employee.ErrAmbiguousQuery
	}
}

func wantsAttendance(parsed query.ParsedQuery) bool {
	for _, cat := range parsed.RequestedData {
		if cat == employee.CategoryAttendance {
			return true
		}
	}
	return false
}

func displayName(rec employee.Record) string {
	if name := rec.FullName(); name != "" {
		return name
	}
	return rec.EmployeeID
}

// GetAttendance implements assistant.AssistantService. Managers get their
// team's window, everyone else their own.
func (s *AssistantServiceImpl) GetAttendance(ctx context.Context, requesterID, dateSpec string) (domain.AttendanceResult, error) {
	rng, err := attendance.ResolveDateRange(dateSpec, s.now())
	if err != nil {
		return domain.AttendanceResult{}, err
	}

	requester, err := s.profile(ctx, requesterID, requesterID)
	if err != nil {
		return domain.AttendanceResult{}, err
	}
	level := access.ResolveLevel(requester.Grade, requester.Role)

	if access.LevelScope(level) != access.ScopeSelf {
		roster, err := s.roster(ctx, requesterID)
		if err != nil && !errors.Is(err, attendance.ErrNoTeamMembers) {
			return domain.AttendanceResult{}, err
		}
		if len(roster.MemberIDs) > 0 {
			events, err := s.attendanceWindow(ctx, requesterID, requesterID+":team", roster.MemberIDs, rng)
			if err != nil {
				return domain.AttendanceResult{}, err
			}
			return domain.AttendanceResult{
				Success:          true,
				Scope:            domain.ScopeTeam,
				DateRange:        rng,
				Events:           events,
				FormattedSummary: FormatTeamAttendance(events, roster, rng, s.now()),
			}, nil
		}
	}

	events, err := s.attendanceWindow(ctx, requesterID, requesterID, []string{requesterID}, rng)
	if err != nil {
		return domain.AttendanceResult{}, err
	}
	return domain.AttendanceResult{
		Success:          true,
		Scope:            domain.ScopePersonal,
		DateRange:        rng,
		Events:           events,
		FormattedSummary: FormatPersonalAttendance(events, rng, s.now()),
	}, nil
}

// GenerateAttendanceReport implements assistant.AssistantService.
func (s *AssistantServiceImpl) GenerateAttendanceReport(ctx context.Context, requesterID string, req report.Request) (report.Result, error) {
	typ, err := report.ParseType(req.Type)
	if err != nil {
		return report.Result{}, err
	}

	requester, err := s.profile(ctx, requesterID, requesterID)
	if err != nil {
		return report.Result{}, err
	}

	level := access.ResolveLevel(requester.Grade, requester.Role)
	if level != access.LevelL0 && level != access.LevelL1 {
		return report.Result{}, report.ErrNotAuthorized
	}

	rng, err := attendance.ResolveDateRange(req.DateSpec, s.now())
	if err != nil {
		return report.Result{}, err
	}

	var org []report.Company
	err = s.withToken(ctx, requesterID, func(token string) error {
		var err error
		org, err = s.source.FetchOrgStructure(ctx, token, requester.OrganizationID)
		return err
	})
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to load organization structure: %w", err)
	}

	var events []attendance.Event
	for _, company := range org {
		var companyEvents []attendance.Event
		err := s.withToken(ctx, requesterID, func(token string) error {
			var err error
			companyEvents, err = s.source.FetchCompanyAttendance(ctx, token, company.ID, rng)
			return err
		})
		if errors.Is(err, hrapi.ErrNotFound) {
			continue
		}
		if err != nil {
			return report.Result{}, fmt.Errorf("failed to load attendance for company %s: %w", company.ID, err)
		}
		events = append(events, companyEvents...)
	}

	tree, err := s.reports.Organize(events, org, req.Filters)
	if err != nil {
		return report.Result{}, err
	}
	summary, err := s.reports.Summarize(tree, typ, rng)
	if err != nil {
		return report.Result{}, err
	}

	return report.Result{
		Success:   true,
		ReportID:  uuid.NewString(),
		Data:      &tree,
		Summary:   summary,
		DateRange: rng,
		Filters:   req.Filters,
		Type:      typ,
		Message:   fmt.Sprintf("Attendance report from %s to %s", rng.StartDate, rng.EndDate),
	}, nil
}

// InvalidateEmployee implements assistant.AssistantService.
func (s *AssistantServiceImpl) InvalidateEmployee(ctx context.Context, employeeID string) error {
	return s.cache.InvalidateEmployee(ctx, employeeID)
}

// CacheStats implements assistant.AssistantService.
func (s *AssistantServiceImpl) CacheStats(ctx context.Context) (cache.Stats, error) {
	return s.cache.Stats(ctx)
}
