package employee

import (
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/validator"
)

// Row is a display-ready directory entry
type Row struct {
	ID         flexid.ID `json:"id"`
	Name       string    `json:"name"`
	Initials   string    `json:"initials"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Photo      *string   `json:"photo,omitempty"`
	Role       Label     `json:"role"`
	Department Label     `json:"department"`
	Status     Status    `json:"status"`
	CanEdit    bool      `json:"can_edit"`
	CanDelete  bool      `json:"can_delete"`
}

// Directory is the employee table view-model
type Directory struct {
	Query     string `json:"query"`
	Rows      []Row  `json:"rows"`
	Total     int    `json:"total"`
	Shown     int    `json:"shown"`
	CanManage bool   `json:"can_manage"`
}

// FormOptions are the lookup tables rendered as selects on the employee form
type FormOptions struct {
	Roles       []Role
	Departments []Department
}

// CreateEmployeeRequest is the body of POST /api/employees
type CreateEmployeeRequest struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Photo        *string    `json:"photo,omitempty"`
	DepartmentID *flexid.ID `json:"departmentId"`
	RoleID       *flexid.ID `json:"roleId"`
	Status       Status     `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validateProfileFields(r.FirstName, r.LastName, r.Email, r.Username, r.Status, r.DepartmentID, r.RoleID)
}

// UpdateEmployeeRequest is the body of PUT /api/employees/{id}
type UpdateEmployeeRequest struct {
	ID           flexid.ID  `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Photo        *string    `json:"photo,omitempty"`
	DepartmentID *flexid.ID `json:"departmentId"`
	RoleID       *flexid.ID `json:"roleId"`
	Status       Status     `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if err := validateProfileFields(r.FirstName, r.LastName, r.Email, r.Username, r.Status, r.DepartmentID, r.RoleID); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// FromProfile prefills an update request with the current record
func FromProfile(p Profile) UpdateEmployeeRequest {
	return UpdateEmployeeRequest{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Username:     p.Username,
		Photo:        p.Photo,
		DepartmentID: p.DepartmentID,
		RoleID:       p.RoleID,
		Status:       p.Status,
	}
}

func validateProfileFields(firstName, lastName, email, username string, status Status, departmentID, roleID *flexid.ID) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(firstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "first name is required",
		})
	}

	if validator.IsEmpty(lastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "last name is required",
		})
	}

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if !validator.IsInSlice(string(status), []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if departmentID != nil && validator.IsEmpty(departmentID.String()) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId must not be blank",
		})
	}

	if roleID != nil && validator.IsEmpty(roleID.String()) {
		errs = append(errs, validator.ValidationError{
			Field:   "roleId",
			Message: "roleId must not be blank",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
