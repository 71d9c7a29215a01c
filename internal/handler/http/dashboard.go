package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-web-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-web-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
)

type DashboardHandler interface {
	// Page renders the role-aware dashboard
	Page(w http.ResponseWriter, r *http.Request)
	// GetDashboard returns the dashboard view-model as JSON
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	pages            *Pages
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(pages *Pages, dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{pages: pages, dashboardService: dashboardService}
}

var dashboardPage = page{
	name:  "dashboard.html",
	title: "Dashboard",
	nav:   "dashboard",
	live:  []sse.Resource{sse.ResourceStats, sse.ResourceMe},
}

// Page handles GET /
func (h *dashboardHandlerImpl) Page(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		h.pages.failInline(w, r, err, dashboardPage)
		return
	}

	h.pages.render(w, r, http.StatusOK, dashboardPage, map[string]any{"View": result})
}

// GetDashboard handles GET /api/v1/view/dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
