package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-web-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flash"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flexid"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const deleteEmployeeAction = "delete-employee"

type EmployeeHandler interface {
	// List renders the filtered directory (GET /employees?q=)
	List(w http.ResponseWriter, r *http.Request)
	// New renders an empty create form
	New(w http.ResponseWriter, r *http.Request)
	// Create handles the create form post
	Create(w http.ResponseWriter, r *http.Request)
	// Edit renders the edit form prefilled with the current record
	Edit(w http.ResponseWriter, r *http.Request)
	// Update handles the edit form post
	Update(w http.ResponseWriter, r *http.Request)
	// ConfirmDelete renders the confirmation dialog
	ConfirmDelete(w http.ResponseWriter, r *http.Request)
	// Delete handles the confirmed dialog post
	Delete(w http.ResponseWriter, r *http.Request)

	// GetDirectory returns the directory view-model as JSON
	GetDirectory(w http.ResponseWriter, r *http.Request)
	// DeleteJSON deletes when ?confirm=true is present
	DeleteJSON(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	pages           *Pages
	employeeService employee.EmployeeService
	confirm         *flash.Codec
	now             func() time.Time
}

func NewEmployeeHandler(pages *Pages, employeeService employee.EmployeeService, confirm *flash.Codec) EmployeeHandler {
	return &employeeHandlerImpl{
		pages:           pages,
		employeeService: employeeService,
		confirm:         confirm,
		now:             time.Now,
	}
}

var (
	employeesPage = page{
		name:  "employees.html",
		title: "Employees",
		nav:   "employees",
		live:  []sse.Resource{sse.ResourceEmployees, sse.ResourceRoles, sse.ResourceDepartments, sse.ResourceMe},
	}
	employeeFormPage = page{
		name:  "employee_form.html",
		title: "Employee",
		nav:   "employees",
	}
	employeeDeletePage = page{
		name:  "employee_delete.html",
		title: "Delete employee",
		nav:   "employees",
	}
)

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	directory, err := h.employeeService.GetDirectory(r.Context(), query)
	if err != nil {
		h.pages.failInline(w, r, err, employeesPage)
		return
	}

	h.pages.render(w, r, http.StatusOK, employeesPage, map[string]any{"Directory": directory})
}

func (h *employeeHandlerImpl) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "/employees", false, employee.UpdateEmployeeRequest{Status: employee.StatusActive}, nil)
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseEmployeeForm(r)
	if err != nil {
		response.BadRequest(w, "Invalid form", nil)
		return
	}

	req := employee.CreateEmployeeRequest{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		Username:     form.Username,
		Photo:        form.Photo,
		DepartmentID: form.DepartmentID,
		RoleID:       form.RoleID,
		Status:       form.Status,
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		h.formError(w, r, "/employees", false, form, err)
		return
	}

	h.pages.redirect(w, r, "/employees", flash.Success(created.FullName()+" was added"))
}

func (h *employeeHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	id := flexid.ID(chi.URLParam(r, "id"))

	profile, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		h.pages.fail(w, r, err, "/employees")
		return
	}

	h.renderForm(w, r, http.StatusOK, "/employees/"+id.String(), true, employee.FromProfile(profile), nil)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := flexid.ID(chi.URLParam(r, "id"))

	form, err := parseEmployeeForm(r)
	if err != nil {
		response.BadRequest(w, "Invalid form", nil)
		return
	}
	form.ID = id

	if _, err := h.employeeService.UpdateEmployee(r.Context(), form); err != nil {
		h.formError(w, r, "/employees/"+id.String(), true, form, err)
		return
	}

	h.pages.redirect(w, r, "/employees", flash.Success("Employee updated"))
}

func (h *employeeHandlerImpl) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := flexid.ID(chi.URLParam(r, "id"))

	profile, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		h.pages.fail(w, r, err, "/employees")
		return
	}

	h.pages.render(w, r, http.StatusOK, employeeDeletePage, map[string]any{
		"Employee": profile,
		"Token":    h.confirm.ConfirmToken(deleteEmployeeAction, id.String(), h.now()),
	})
}

// Delete handles POST /employees/{id}/delete. A rejection shows the API's
// message and leaves the list as it was.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := flexid.ID(chi.URLParam(r, "id"))

	if err := r.ParseForm(); err != nil {
		response.BadRequest(w, "Invalid form", nil)
		return
	}

	confirmed := r.PostForm.Get("confirm") == "yes"
	if confirmed {
		if err := h.confirm.CheckConfirmToken(r.PostForm.Get("token"), deleteEmployeeAction, id.String(), h.now()); err != nil {
			h.pages.fail(w, r, err, "/employees")
			return
		}
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id, confirmed); err != nil {
		h.pages.fail(w, r, err, "/employees")
		return
	}

	h.pages.redirect(w, r, "/employees", flash.Success("Employee deleted"))
}

// GetDirectory handles GET /api/v1/view/employees?q=
func (h *employeeHandlerImpl) GetDirectory(w http.ResponseWriter, r *http.Request) {
	directory, err := h.employeeService.GetDirectory(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, directory)
}

// DeleteJSON handles DELETE /api/v1/view/employees/{id}?confirm=true
func (h *employeeHandlerImpl) DeleteJSON(w http.ResponseWriter, r *http.Request) {
	id := flexid.ID(chi.URLParam(r, "id"))
	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.employeeService.DeleteEmployee(r.Context(), id, confirmed); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", map[string]string{"id": id.String()})
}

func (h *employeeHandlerImpl) renderForm(w http.ResponseWriter, r *http.Request, status int, action string, editing bool, form employee.UpdateEmployeeRequest, data map[string]any) {
	options, err := h.employeeService.GetFormOptions(r.Context())
	if err != nil {
		h.pages.fail(w, r, err, "/employees")
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	data["Action"] = action
	data["Editing"] = editing
	data["Form"] = form
	data["Options"] = options

	h.pages.render(w, r, status, employeeFormPage, data)
}

// formError re-renders the form with field errors, or with the API's message
// for anything else.
func (h *employeeHandlerImpl) formError(w http.ResponseWriter, r *http.Request, action string, editing bool, form employee.UpdateEmployeeRequest, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		h.renderForm(w, r, http.StatusUnprocessableEntity, action, editing, form, map[string]any{
			"Errors": validationErrs.ToMap(),
		})
		return
	}

	problem := response.Describe(err)
	if problem.Status == http.StatusUnauthorized || problem.Status == http.StatusForbidden || problem.Status == http.StatusNotFound {
		h.pages.fail(w, r, err, "/employees")
		return
	}

	msg := flash.Error(problem.Message)
	h.renderForm(w, r, problem.Status, action, editing, form, map[string]any{"Flash": &msg})
}

func parseEmployeeForm(r *http.Request) (employee.UpdateEmployeeRequest, error) {
	if err := r.ParseForm(); err != nil {
		return employee.UpdateEmployeeRequest{}, err
	}
	f := r.PostForm

	form := employee.UpdateEmployeeRequest{
		FirstName:    strings.TrimSpace(f.Get("firstName")),
		LastName:     strings.TrimSpace(f.Get("lastName")),
		Email:        strings.TrimSpace(f.Get("email")),
		Username:     strings.TrimSpace(f.Get("username")),
		DepartmentID: flexid.Ptr(strings.TrimSpace(f.Get("departmentId"))),
		RoleID:       flexid.Ptr(strings.TrimSpace(f.Get("roleId"))),
		Status:       employee.Status(f.Get("status")),
	}
	if photo := strings.TrimSpace(f.Get("photo")); photo != "" {
		form.Photo = &photo
	}
	return form, nil
}
