package user

import (
	"strings"

	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
)

// AccessLevel is the closed set of roles the HR API assigns to users.
type AccessLevel string

const (
	AccessAdmin      AccessLevel = "Admin"
	AccessHR         AccessLevel = "HR"
	AccessManager    AccessLevel = "Manager"
	AccessAccountant AccessLevel = "Accountant"
	AccessEmployee   AccessLevel = "Employee" // fallback for anything unrecognised
)

// AccessLevels lists every access level in display order.
var AccessLevels = []AccessLevel{AccessAdmin, AccessHR, AccessManager, AccessAccountant, AccessEmployee}

// ParseAccessLevel maps a raw value to an AccessLevel. Unknown or empty values
// resolve to AccessEmployee.
func ParseAccessLevel(s string) AccessLevel {
	switch AccessLevel(strings.TrimSpace(s)) {
	case AccessAdmin:
		return AccessAdmin
	case AccessHR:
		return AccessHR
	case AccessManager:
		return AccessManager
	case AccessAccountant:
		return AccessAccountant
	default:
		return AccessEmployee
	}
}

// CurrentUser is the payload of GET /api/auth/me
type CurrentUser struct {
	ID          flexid.ID  `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	RoleName    string     `json:"roleName"`
	AccessLevel string     `json:"accessLevel"`
	RoleID      *flexid.ID `json:"roleId"`
}

// Level returns the parsed access level of the user
func (u CurrentUser) Level() AccessLevel {
	return ParseAccessLevel(u.AccessLevel)
}

// FullName joins first and last name
func (u CurrentUser) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Identity is the state of the identity fetch. The zero value is pending.
type Identity struct {
	user   CurrentUser
	loaded bool
}

// PendingIdentity returns an identity whose fetch has not resolved.
func PendingIdentity() Identity {
	return Identity{}
}

// LoadedIdentity wraps a resolved /api/auth/me response.
func LoadedIdentity(u CurrentUser) Identity {
	return Identity{user: u, loaded: true}
}

// Loaded reports whether the identity fetch has resolved
func (i Identity) Loaded() bool {
	return i.loaded
}

// User returns the resolved user, ok is false while pending.
func (i Identity) User() (CurrentUser, bool) {
	return i.user, i.loaded
}

// Level returns the access level, AccessEmployee while pending.
func (i Identity) Level() AccessLevel {
	if !i.loaded {
		return AccessEmployee
	}
	return i.user.Level()
}

// FirstName returns the user's first name, empty while pending.
func (i Identity) FirstName() string {
	return i.user.FirstName
}

// IsAdmin checks if the identity is resolved and has Admin access
func (i Identity) IsAdmin() bool {
	return i.loaded && i.user.Level() == AccessAdmin
}
