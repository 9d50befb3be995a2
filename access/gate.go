// Package access maps (role, action) pairs to allow/deny decisions. The rule
// table is fixed at compile time and not configurable at runtime. The gate
// only answers the question; redirecting unauthenticated callers is the
// transport layer's job, and no cryptographic verification stands behind the
// role — it is whatever the session token claims.
package access

import "ecotrack-be/models"

// Action enum
type Action string

const (
	ViewAllSchedules   Action = "viewAllSchedules"
	CreateSchedule     Action = "createSchedule"
	TransitionSchedule Action = "transitionSchedule"
	ViewAllIssues      Action = "viewAllIssues"
	CreateIssue        Action = "createIssue"
	ResolveIssue       Action = "resolveIssue"
	ViewAnalytics      Action = "viewAnalytics"
)

// rules holds the allowed roles per action. Residents pass ViewAllIssues but
// are narrowed to their own reports by IssueScope.
var rules = map[Action]map[models.UserRole]bool{
	ViewAllSchedules:   {models.Resident: true, models.Collector: true, models.Admin: true},
	CreateSchedule:     {models.Admin: true},
	TransitionSchedule: {models.Collector: true, models.Admin: true},
	ViewAllIssues:      {models.Resident: true, models.Admin: true},
	CreateIssue:        {models.Resident: true},
	ResolveIssue:       {models.Admin: true},
	ViewAnalytics:      {models.Admin: true},
}

// CanPerform reports whether the role may perform the action. Unknown roles
// and unknown actions are denied.
func CanPerform(role models.UserRole, action Action) bool {
	return rules[action][role]
}

// Scope is the row-level filter applied to issue list queries.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeOwn
	ScopeAll
)

// IssueScope returns which rows of the issue collection the role may see.
func IssueScope(role models.UserRole) Scope {
	switch role {
	case models.Admin:
		return ScopeAll
	case models.Resident:
		return ScopeOwn
	default:
		return ScopeNone
	}
}
