package domain

import "time"

// Role enumerates account roles. The set is closed; decision sites switch
// exhaustively over it so a new role forces every site to be revisited.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleHR      Role = "hr"
	RoleStudent Role = "student"
)

// ValidRole reports whether the value is one of the defined roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleStudent:
		return true
	default:
		return false
	}
}

// User is the single account model for admins, HR users and students.
// Role-specific fields stay empty for other roles. Role and email are
// immutable after creation.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string

	// Student profile fields.
	Resume       string
	Skills       []string
	Education    string
	Experience   string
	Bio          string
	ProfileImage string

	// HR profile fields.
	Company     string
	Designation string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
