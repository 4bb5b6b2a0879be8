package access

import (
	"strings"

	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
)

// Level is the derived authorization tier. It usually equals the employee
// grade, but enhanced roles can lift it.
type Level string

const (
	LevelL0 Level = "L0" // executive / owner
	LevelL1 Level = "L1" // executive / admin
	LevelL2 Level = "L2" // HR manager
	LevelL3 Level = "L3" // supervisor
	LevelL4 Level = "L4" // employee
)

// Scope is the set of other employees a level may reach.
type Scope int

const (
	ScopeSelf Scope = iota
	ScopeTeam
	ScopeOrganization
)

type permissions struct {
	Scope             Scope
	AllowedCategories []employee.Category
}

// levelPermissions is the single source of truth for both the visibility
// check and the field projection.
var levelPermissions = map[Level]permissions{
	LevelL0: {
		Scope:             ScopeOrganization,
		AllowedCategories: employee.Categories,
	},
	LevelL1: {
		Scope:             ScopeOrganization,
		AllowedCategories: employee.Categories,
	},
	LevelL2: {
		Scope: ScopeOrganization,
		AllowedCategories: []employee.Category{
			employee.CategoryBasic,
			employee.CategoryContact,
			employee.CategorySalary,
			employee.CategoryLeave,
			employee.CategoryAttendance,
			employee.CategoryBanking,
			employee.CategoryFamily,
			employee.CategoryContract,
			employee.CategoryAssets,
		},
	},
	LevelL3: {
		Scope: ScopeTeam,
		AllowedCategories: []employee.Category{
			employee.CategoryBasic,
			employee.CategoryContact,
			employee.CategoryLeave,
			employee.CategoryAttendance,
			employee.CategorySalary,
		},
	},
	LevelL4: {
		Scope: ScopeSelf,
		AllowedCategories: []employee.Category{
			employee.CategoryBasic,
			employee.CategoryContact,
			employee.CategoryLeave,
			employee.CategoryAttendance,
		},
	},
}

// enhancedRoles lift the grade-derived level for a few well-known role
// labels. Matching is case-insensitive.
var enhancedRoles = map[string]Level{
	"admin":      LevelL0,
	"owner":      LevelL0,
	"hr manager": LevelL2,
	"hr_manager": LevelL2,
}

// ResolveLevel determines the access level for a grade/role pair. Enhanced
// roles win over the grade; an unrecognized grade fails closed to L4.
func ResolveLevel(grade employee.Grade, role string) Level {
	if lvl, ok := enhancedRoles[strings.ToLower(strings.TrimSpace(role))]; ok {
		return lvl
	}
	if g, ok := employee.ParseGrade(string(grade)); ok {
		return Level(g)
	}
	return LevelL4
}

// LevelScope reports the visibility scope of a level, defaulting to
// self-only for anything unknown.
func LevelScope(level Level) Scope {
	if p, ok := levelPermissions[level]; ok {
		return p.Scope
	}
	return ScopeSelf
}

// AllowedCategories returns the field categories a level may see.
func AllowedCategories(level Level) []employee.Category {
	if p, ok := levelPermissions[level]; ok {
		return p.AllowedCategories
	}
	return levelPermissions[LevelL4].AllowedCategories
}

// Allows reports whether the level may see the given category.
func Allows(level Level, cat employee.Category) bool {
	for _, c := range AllowedCategories(level) {
		if c == cat {
			return true
		}
	}
	return false
}

// CanAccess decides whether a requester at the given level may read the
// target employee's data. Self-access is unconditional; organization-wide
// levels reach everyone; team-scoped levels reach their roster only.
func CanAccess(level Level, requesterID, targetID string, teamMemberIDs []string) bool {
	if requesterID != "" && requesterID == targetID {
		return true
	}
	switch LevelScope(level) {
	case ScopeOrganization:
		return true
	case ScopeTeam:
		for _, id := range teamMemberIDs {
			if id == targetID {
				return true
			}
		}
	}
	return false
}

// Summary describes what a level can reach, for explanatory responses.
type Summary struct {
	Level                 Level               `json:"access_level"`
	CanAccessAllEmployees bool                `json:"can_access_all_employees"`
	AllowedCategories     []employee.Category `json:"allowed_data_categories"`
}

// Summarize resolves a grade/role pair into an access summary.
func Summarize(grade employee.Grade, role string) Summary {
	level := ResolveLevel(grade, role)
	return Summary{
		Level:                 level,
		CanAccessAllEmployees: LevelScope(level) == ScopeOrganization,
		AllowedCategories:     AllowedCategories(level),
	}
}
