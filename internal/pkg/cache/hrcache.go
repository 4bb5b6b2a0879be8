package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/talenthive/hr-assistant-go/internal/domain/attendance"
	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
)

// Key prefixes per category. The attendance prefix is shared by every
// window of a subject so invalidation can sweep them with one prefix
// delete.
const (
	prefixToken      = "token:"
	prefixProfile    = "emp:"
	prefixDBID       = "dbid:"
	prefixTeam       = "team:"
	prefixAttendance = "att:"
)

// TTLConfig carries the per-category lifetimes. DB-id mappings never
// expire; they only change when an employee record is rebuilt upstream.
type TTLConfig struct {
	Token            time.Duration
	Profile          time.Duration
	TeamRoster       time.Duration
	AttendanceWindow time.Duration
}

// DefaultTTLs mirror the refresh cadence of the upstream HR system.
func DefaultTTLs() TTLConfig {
	return TTLConfig{
		Token:            8 * time.Hour,
		Profile:          24 * time.Hour,
		TeamRoster:       12 * time.Hour,
		AttendanceWindow: 30 * time.Minute,
	}
}

// HRCache is the typed facade every service reads through. It is cache-
// aside: a store failure is reported as a miss so a broken cache degrades
// to slower requests, never to request failures.
type HRCache struct {
	store  Store
	ttls   TTLConfig
	logger *slog.Logger
}

func New(store Store, ttls TTLConfig, logger *slog.Logger) *HRCache {
	return &HRCache{store: store, ttls: ttls, logger: logger}
}

func (c *HRCache) get(ctx context.Context, key string, out any) bool {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Debug("cache read failed, treating as miss", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Debug("cache entry undecodable, treating as miss", "key", key, "error", err)
		return false
	}
	return true
}

func (c *HRCache) set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Debug("cache encode failed, skipping write", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		c.logger.Debug("cache write failed", "key", key, "error", err)
	}
}

// Token returns a cached upstream access token if still valid.
func (c *HRCache) Token(ctx context.Context, employeeID string) (string, bool) {
	var token string
	ok := c.get(ctx, prefixToken+employeeID, &token)
	return token, ok
}

func (c *HRCache) SetToken(ctx context.Context, employeeID, token string) {
	c.set(ctx, prefixToken+employeeID, token, c.ttls.Token)
}

// Profile returns a cached employee record.
func (c *HRCache) Profile(ctx context.Context, employeeID string) (employee.Record, bool) {
	var rec employee.Record
	ok := c.get(ctx, prefixProfile+employeeID, &rec)
	return rec, ok
}

func (c *HRCache) SetProfile(ctx context.Context, employeeID string, rec employee.Record) {
	c.set(ctx, prefixProfile+employeeID, rec, c.ttls.Profile)
}

// DBID maps an external employee id to the record source's database id.
func (c *HRCache) DBID(ctx context.Context, employeeID string) (string, bool) {
	var id string
	ok := c.get(ctx, prefixDBID+employeeID, &id)
	return id, ok
}

func (c *HRCache) SetDBID(ctx context.Context, employeeID, dbID string) {
	c.set(ctx, prefixDBID+employeeID, dbID, 0)
}

// TeamRoster returns a manager's cached roster.
func (c *HRCache) TeamRoster(ctx context.Context, managerID string) (employee.TeamRoster, bool) {
	var roster employee.TeamRoster
	ok := c.get(ctx, prefixTeam+managerID, &roster)
	return roster, ok
}

func (c *HRCache) SetTeamRoster(ctx context.Context, managerID string, roster employee.TeamRoster) {
	c.set(ctx, prefixTeam+managerID, roster, c.ttls.TeamRoster)
}

func attendanceKey(subject string, rng attendance.DateRange) string {
	return prefixAttendance + subject + ":" + rng.StartDate + ":" + rng.EndDate
}

// Attendance returns a cached attendance window. The key includes both
// range bounds: a different window is always a miss, overlapping or not.
func (c *HRCache) Attendance(ctx context.Context, subject string, rng attendance.DateRange) ([]attendance.Event, bool) {
	var events []attendance.Event
	ok := c.get(ctx, attendanceKey(subject, rng), &events)
	return events, ok
}

func (c *HRCache) SetAttendance(ctx context.Context, subject string, rng attendance.DateRange, events []attendance.Event) {
	c.set(ctx, attendanceKey(subject, rng), events, c.ttls.AttendanceWindow)
}

// InvalidateEmployee removes every entry derived from the employee id:
// exact deletes for the singleton categories and a prefix sweep for the
// attendance windows.
func (c *HRCache) InvalidateEmployee(ctx context.Context, employeeID string) error {
	if err := c.store.Delete(ctx,
		prefixToken+employeeID,
		prefixProfile+employeeID,
		prefixDBID+employeeID,
		prefixTeam+employeeID,
	); err != nil {
		return err
	}
	return c.store.DeleteByPrefix(ctx, prefixAttendance+employeeID+":")
}

// Stats reports live entry counts per category.
type Stats struct {
	Tokens      int `json:"tokens"`
	Profiles    int `json:"profiles"`
	DBIDs       int `json:"db_ids"`
	TeamRosters int `json:"team_rosters"`
	Attendance  int `json:"attendance_windows"`
}

func (c *HRCache) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	counts := []struct {
		prefix string
		dst    *int
	}{
		{prefixToken, &stats.Tokens},
		{prefixProfile, &stats.Profiles},
		{prefixDBID, &stats.DBIDs},
		{prefixTeam, &stats.TeamRosters},
		{prefixAttendance, &stats.Attendance},
	}
	for _, c2 := range counts {
		n, err := c.store.CountByPrefix(ctx, c2.prefix)
		if err != nil {
			return Stats{}, err
		}
		*c2.dst = n
	}
	return stats, nil
}
