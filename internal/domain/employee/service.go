package employee

import (
	"context"

	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
)

// EmployeeService defines the directory operations of the front-end
type EmployeeService interface {
	// GetDirectory fetches employees, roles, departments and the identity, then
	// filters by query
	GetDirectory(ctx context.Context, query string) (*Directory, error)

	// GetEmployee returns a single profile from the employees snapshot
	GetEmployee(ctx context.Context, id flexid.ID) (Profile, error)

	// GetFormOptions returns the lookup tables for the create/edit form
	GetFormOptions(ctx context.Context) (FormOptions, error)

	// CreateEmployee forwards a create request (admin only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Profile, error)

	// UpdateEmployee forwards an update request (admin only)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (Profile, error)

	// DeleteEmployee deletes after confirmation (admin only)
	DeleteEmployee(ctx context.Context, id flexid.ID, confirmed bool) error
}
