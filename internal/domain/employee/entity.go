package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Profile is one element of GET /api/employees
type Profile struct {
	ID           flexid.ID  `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Photo        *string    `json:"photo,omitempty"`
	DepartmentID *flexid.ID `json:"departmentId"`
	RoleID       *flexid.ID `json:"roleId"`
	Status       Status     `json:"status"`
}

// FullName joins first and last name
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Role is a row of the GET /api/roles lookup table
type Role struct {
	ID          flexid.ID `json:"id"`
	RoleName    string    `json:"roleName"`
	AccessLevel string    `json:"accessLevel"`
}

// Department is a row of the GET /api/departments lookup table
type Department struct {
	ID   flexid.ID `json:"id"`
	Name string    `json:"name"`
}
