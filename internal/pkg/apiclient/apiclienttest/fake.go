// Package apiclienttest provides an in-memory HR API for tests.
package apiclienttest

import (
	"context"
	"strconv"
	"sync"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-web-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
)

// Fake implements apiclient.ClientInterface over plain slices. Set an *Err
// field to make the matching call fail. Calls counts requests per method.
type Fake struct {
	mu sync.Mutex

	Stats       *dashboard.Stats
	User        user.CurrentUser
	Employees   []employee.Profile
	Roles       []employee.Role
	Departments []employee.Department
	Holidays    []holiday.Holiday

	StatsErr       error
	MeErr          error
	EmployeesErr   error
	RolesErr       error
	DepartmentsErr error
	HolidaysErr    error
	MutationErr    error

	Calls  map[string]int
	nextID int
}

var _ apiclient.ClientInterface = (*Fake)(nil)

func New() *Fake {
	return &Fake{Calls: make(map[string]int), nextID: 1000}
}

// CallCount returns how many times method was called
func (f *Fake) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}

func (f *Fake) record(method string) {
	if f.Calls == nil {
		f.Calls = make(map[string]int)
	}
	f.Calls[method]++
}

func (f *Fake) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetStats")
	if f.StatsErr != nil {
		return nil, f.StatsErr
	}
	return f.Stats, nil
}

func (f *Fake) Me(ctx context.Context) (user.CurrentUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Me")
	if f.MeErr != nil {
		return user.CurrentUser{}, f.MeErr
	}
	return f.User, nil
}

func (f *Fake) ListEmployees(ctx context.Context) ([]employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListEmployees")
	if f.EmployeesErr != nil {
		return nil, f.EmployeesErr
	}
	return append([]employee.Profile(nil), f.Employees...), nil
}

func (f *Fake) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateEmployee")
	if f.MutationErr != nil {
		return employee.Profile{}, f.MutationErr
	}
	f.nextID++
	p := employee.Profile{
		ID:           flexid.ID(strconv.Itoa(f.nextID)),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		Photo:        req.Photo,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
		Status:       req.Status,
	}
	f.Employees = append(f.Employees, p)
	return p, nil
}

func (f *Fake) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateEmployee")
	if f.MutationErr != nil {
		return employee.Profile{}, f.MutationErr
	}
	for i, p := range f.Employees {
		if p.ID == req.ID {
			p.FirstName, p.LastName, p.Email, p.Username = req.FirstName, req.LastName, req.Email, req.Username
			p.Photo, p.DepartmentID, p.RoleID, p.Status = req.Photo, req.DepartmentID, req.RoleID, req.Status
			f.Employees[i] = p
			return p, nil
		}
	}
	return employee.Profile{}, &apiclient.APIError{Status: 404, Message: "Employee not found"}
}

func (f *Fake) DeleteEmployee(ctx context.Context, id flexid.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteEmployee")
	if f.MutationErr != nil {
		return f.MutationErr
	}
	for i, p := range f.Employees {
		if p.ID == id {
			f.Employees = append(f.Employees[:i:i], f.Employees[i+1:]...)
			return nil
		}
	}
	return &apiclient.APIError{Status: 404, Message: "Employee not found"}
}

func (f *Fake) ListRoles(ctx context.Context) ([]employee.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListRoles")
	if f.RolesErr != nil {
		return nil, f.RolesErr
	}
	return append([]employee.Role(nil), f.Roles...), nil
}

func (f *Fake) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListDepartments")
	if f.DepartmentsErr != nil {
		return nil, f.DepartmentsErr
	}
	return append([]employee.Department(nil), f.Departments...), nil
}

func (f *Fake) ListHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListHolidays")
	if f.HolidaysErr != nil {
		return nil, f.HolidaysErr
	}
	return append([]holiday.Holiday(nil), f.Holidays...), nil
}

func (f *Fake) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateHoliday")
	if f.MutationErr != nil {
		return holiday.Holiday{}, f.MutationErr
	}
	f.nextID++
	h := holiday.Holiday{
		ID:            flexid.ID(strconv.Itoa(f.nextID)),
		Name:          req.Name,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		TotalHolidays: req.TotalHolidays,
	}
	f.Holidays = append(f.Holidays, h)
	return h, nil
}
