package employee

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
	"golang.org/x/sync/errgroup"
)

type EmployeeServiceImpl struct {
	client   apiclient.ClientInterface
	store    *snapshot.Store
	hub      *sse.Hub
	identity user.IdentityService
}

func NewEmployeeService(
	client apiclient.ClientInterface,
	store *snapshot.Store,
	hub *sse.Hub,
	identity user.IdentityService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		client:   client,
		store:    store,
		hub:      hub,
		identity: identity,
	}
}

func (s *EmployeeServiceImpl) employees(ctx context.Context) ([]employee.Profile, error) {
	return snapshot.Load(ctx, s.store, sse.ResourceEmployees, jwt.Subject(ctx), s.client.ListEmployees)
}

func (s *EmployeeServiceImpl) roles(ctx context.Context) []employee.Role {
	roles, err := snapshot.Load(ctx, s.store, sse.ResourceRoles, jwt.Subject(ctx), s.client.ListRoles)
	if err != nil {
		slog.WarnContext(ctx, "Roles unavailable, labels left unresolved", "error", err)
		return nil
	}
	return roles
}

func (s *EmployeeServiceImpl) departments(ctx context.Context) []employee.Department {
	departments, err := snapshot.Load(ctx, s.store, sse.ResourceDepartments, jwt.Subject(ctx), s.client.ListDepartments)
	if err != nil {
		slog.WarnContext(ctx, "Departments unavailable, labels left unresolved", "error", err)
		return nil
	}
	return departments
}

// GetDirectory fetches the four snapshots in parallel. Only the employee list
// is required; missing lookups leave labels unresolved and a missing identity
// hides management controls.
func (s *EmployeeServiceImpl) GetDirectory(ctx context.Context, query string) (*employee.Directory, error) {
	var (
		profiles    []employee.Profile
		roles       []employee.Role
		departments []employee.Department
		identity    = user.PendingIdentity()
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		profiles, err = s.employees(gctx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		roles = s.roles(gctx)
		return nil
	})
	g.Go(func() error {
		departments = s.departments(gctx)
		return nil
	})
	g.Go(func() error {
		result, err := s.identity.Current(gctx)
		if err != nil {
			if apiclient.IsSessionError(err) {
				return err
			}
			slog.WarnContext(ctx, "Identity unavailable, management controls hidden", "error", err)
			return nil
		}
		identity = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	directory := employee.BuildDirectory(profiles, roles, departments, query, identity)
	return &directory, nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id flexid.ID) (employee.Profile, error) {
	profiles, err := s.employees(ctx)
	if err != nil {
		return employee.Profile{}, fmt.Errorf("failed to load employees: %w", err)
	}
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return employee.Profile{}, employee.ErrEmployeeNotFound
}

func (s *EmployeeServiceImpl) GetFormOptions(ctx context.Context) (employee.FormOptions, error) {
	var opts employee.FormOptions

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opts.Roles = s.roles(gctx)
		return nil
	})
	g.Go(func() error {
		opts.Departments = s.departments(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return employee.FormOptions{}, err
	}

	return opts, nil
}

// requireManage checks a freshly fetched identity, never a cached one
func (s *EmployeeServiceImpl) requireManage(ctx context.Context) error {
	me, err := s.client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}
	if !user.CanManage(user.LoadedIdentity(me)) {
		return user.ErrManageAccessRequired
	}
	return nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Profile, error) {
	if err := req.Validate(); err != nil {
		return employee.Profile{}, err
	}
	if err := s.requireManage(ctx); err != nil {
		return employee.Profile{}, err
	}

	created, err := s.client.CreateEmployee(ctx, req)
	if err != nil {
		return employee.Profile{}, err
	}

	s.invalidate()
	slog.InfoContext(ctx, "Employee created", "employee_id", created.ID)
	return created, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Profile, error) {
	if err := req.Validate(); err != nil {
		return employee.Profile{}, err
	}
	if err := s.requireManage(ctx); err != nil {
		return employee.Profile{}, err
	}

	updated, err := s.client.UpdateEmployee(ctx, req)
	if err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return employee.Profile{}, employee.ErrEmployeeNotFound
		}
		return employee.Profile{}, err
	}

	s.invalidate()
	slog.InfoContext(ctx, "Employee updated", "employee_id", req.ID)
	return updated, nil
}

// DeleteEmployee sends the delete only after confirmation. A rejection leaves
// every snapshot in place and is returned unchanged.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id flexid.ID, confirmed bool) error {
	if !confirmed {
		return employee.ErrDeleteNotConfirmed
	}
	if id.IsZero() {
		return employee.ErrEmployeeNotFound
	}
	if err := s.requireManage(ctx); err != nil {
		return err
	}

	if err := s.client.DeleteEmployee(ctx, id); err != nil {
		slog.WarnContext(ctx, "Employee delete rejected", "employee_id", id, "error", err)
		return err
	}

	s.invalidate()
	slog.InfoContext(ctx, "Employee deleted", "employee_id", id)
	return nil
}

func (s *EmployeeServiceImpl) invalidate() {
	s.hub.Publish(sse.ResourceEmployees)
	s.hub.Publish(sse.ResourceStats)
}
