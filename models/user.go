package models

// UserRole enum
type UserRole string

const (
	Resident  UserRole = "resident"
	Collector UserRole = "collector"
	Admin     UserRole = "admin"
)

// Valid reports whether r is one of the defined roles.
func (r UserRole) Valid() bool {
	switch r {
	case Resident, Collector, Admin:
		return true
	}
	return false
}

// User represents the active session identity. The role is self-declared at
// login and trusted verbatim; there is no credential verification behind it.
type User struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}
