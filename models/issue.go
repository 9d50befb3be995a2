package models

import "time"

// IssueStatus enum
type IssueStatus string

const (
	Reported   IssueStatus = "reported"
	InProgress IssueStatus = "in-progress"
	Resolved   IssueStatus = "resolved"
)

// Valid reports whether s is one of the defined issue statuses.
func (s IssueStatus) Valid() bool {
	switch s {
	case Reported, InProgress, Resolved:
		return true
	}
	return false
}

// Issue represents a resident-submitted report of a problem with waste
// collection. ResolvedBy/ResolvedAt are written only when an admin moves the
// issue to resolved; a later move away from resolved leaves them in place, so
// callers must check Status rather than the resolver fields.
type Issue struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Area        string      `json:"area"`
	Address     string      `json:"address"`
	ReportedBy  string      `json:"reportedBy"`
	ReportedAt  time.Time   `json:"reportedAt"`
	Status      IssueStatus `json:"status"`
	ResolvedBy  string      `json:"resolvedBy,omitempty"`
	ResolvedAt  *time.Time  `json:"resolvedAt,omitempty"`
}
