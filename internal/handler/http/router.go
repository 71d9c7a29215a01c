package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-web-go/internal/config"
	"github.com/cmlabs-hris/hris-web-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-web-go/internal/view"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type Handlers struct {
	Dashboard DashboardHandler
	Employee  EmployeeHandler
	Holiday   HolidayHandler
	Events    EventsHandler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, JWTService jwt.Service, pages *Pages, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.SecureHeaders(cfg.IsProduction()))
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Handle("/static/*", http.StripPrefix("/static/", view.Static()))

	// Requires a session
	r.Group(func(r chi.Router) {
		r.Use(JWTService.Verifier())
		r.Use(middleware.AuthRequired(cfg.Session.LoginURL))

		manageOnly := middleware.ManageOnly(pages.Identities, pages.Flashes, "/employees")

		r.Get("/", h.Dashboard.Page)
		r.Get("/events", h.Events.Stream)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(manageOnly)
				r.Get("/new", h.Employee.New)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}/edit", h.Employee.Edit)
				r.Post("/{id}", h.Employee.Update)
				r.Get("/{id}/delete", h.Employee.ConfirmDelete)
				r.Post("/{id}/delete", h.Employee.Delete)
			})
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.Holiday.List)
			r.Get("/new", h.Holiday.New)
			r.Post("/", h.Holiday.Create)
			r.Post("/{id}/edit", h.Holiday.Edit)
			r.Post("/{id}/delete", h.Holiday.Delete)
		})

		r.Route("/api/v1/view", func(r chi.Router) {
			r.Get("/dashboard", h.Dashboard.GetDashboard)
			r.Get("/employees", h.Employee.GetDirectory)
			r.With(manageOnly).Delete("/employees/{id}", h.Employee.DeleteJSON)
			r.Get("/holidays", h.Holiday.GetCalendar)
			r.Post("/holidays", h.Holiday.CreateJSON)
		})
	})

	return r
}
