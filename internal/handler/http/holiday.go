package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hris-web-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flash"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	// List renders the holiday table
	List(w http.ResponseWriter, r *http.Request)
	// New renders the create form
	New(w http.ResponseWriter, r *http.Request)
	// Create handles the create form post
	Create(w http.ResponseWriter, r *http.Request)
	// Edit and Delete accept the row controls but change nothing
	Edit(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// GetCalendar returns the holiday rows as JSON
	GetCalendar(w http.ResponseWriter, r *http.Request)
	// CreateJSON creates a holiday from a JSON body
	CreateJSON(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	pages          *Pages
	holidayService holiday.HolidayService
}

func NewHolidayHandler(pages *Pages, holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{pages: pages, holidayService: holidayService}
}

var (
	holidaysPage = page{
		name:  "holidays.html",
		title: "Holidays",
		nav:   "holidays",
		live:  []sse.Resource{sse.ResourceHolidays},
	}
	holidayFormPage = page{
		name:  "holiday_form.html",
		title: "Add holiday",
		nav:   "holidays",
	}
)

func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.holidayService.GetCalendar(r.Context())
	if err != nil {
		h.pages.failInline(w, r, err, holidaysPage)
		return
	}

	h.pages.render(w, r, http.StatusOK, holidaysPage, map[string]any{"Calendar": calendar})
}

func (h *holidayHandlerImpl) New(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, holidayFormPage, map[string]any{"Form": holiday.CreateHolidayRequest{}})
}

func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.BadRequest(w, "Invalid form", nil)
		return
	}

	req := holiday.CreateHolidayRequest{
		Name:     strings.TrimSpace(r.PostForm.Get("name")),
		FromDate: strings.TrimSpace(r.PostForm.Get("fromDate")),
		ToDate:   strings.TrimSpace(r.PostForm.Get("toDate")),
	}

	if raw := strings.TrimSpace(r.PostForm.Get("totalHolidays")); raw != "" {
		total, err := strconv.Atoi(raw)
		if !validator.IsNumeric(raw) || err != nil || total < 1 {
			h.pages.render(w, r, http.StatusUnprocessableEntity, holidayFormPage, map[string]any{
				"Form":   req,
				"Errors": map[string]string{"totalHolidays": "totalHolidays must be at least 1"},
			})
			return
		}
		req.TotalHolidays = total
	}

	created, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.pages.render(w, r, http.StatusUnprocessableEntity, holidayFormPage, map[string]any{
				"Form":   req,
				"Errors": validationErrs.ToMap(),
			})
			return
		}
		h.pages.fail(w, r, err, "/holidays")
		return
	}

	h.pages.redirect(w, r, "/holidays", flash.Success(created.Name+" was added"))
}

// Edit handles POST /holidays/{id}/edit. Holiday editing is not offered by
// the HR API, so the row control only returns to the table.
func (h *holidayHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	slog.DebugContext(r.Context(), "Holiday edit requested", "holiday_id", chi.URLParam(r, "id"))
	http.Redirect(w, r, "/holidays", http.StatusSeeOther)
}

// Delete handles POST /holidays/{id}/delete, see Edit.
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	slog.DebugContext(r.Context(), "Holiday delete requested", "holiday_id", chi.URLParam(r, "id"))
	http.Redirect(w, r, "/holidays", http.StatusSeeOther)
}

// GetCalendar handles GET /api/v1/view/holidays
func (h *holidayHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.holidayService.GetCalendar(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar)
}

// CreateJSON handles POST /api/v1/view/holidays
func (h *holidayHandlerImpl) CreateJSON(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.holidayService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", created)
}
