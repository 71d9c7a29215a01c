package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-web-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/flash"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/snapshot"
	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
	dashboardService "github.com/cmlabs-hris/hris-web-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-web-go/internal/service/employee"
	holidayService "github.com/cmlabs-hris/hris-web-go/internal/service/holiday"
	userService "github.com/cmlabs-hris/hris-web-go/internal/service/user"
	"github.com/cmlabs-hris/hris-web-go/internal/view"
	"github.com/go-chi/httplog/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-web"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := sse.NewHub()
	store := snapshot.NewStore(cfg.Snapshot.TTL)
	store.Attach(hub)

	scheduler := cron.NewScheduler()
	cron.RegisterSnapshotSweep(scheduler, store, cfg.Snapshot.SweepInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	JWTService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.CookieName)
	client := apiclient.NewClient(cfg.API)
	codec := flash.NewCodec(cfg.Session.FlashSecret)

	identitySvc := userService.NewIdentityService(client, store)
	dashboardSvc := dashboardService.NewDashboardService(client, store, identitySvc)
	employeeSvc := employeeService.NewEmployeeService(client, store, hub, identitySvc)
	holidaySvc := holidayService.NewHolidayService(client, store, hub)

	views, err := view.New()
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	pages := &appHTTP.Pages{
		Views:      views,
		Flashes:    flash.NewStore(codec, cfg.IsProduction()),
		Identities: identitySvc,
		LoginURL:   cfg.Session.LoginURL,
	}

	router := appHTTP.NewRouter(cfg, logger, JWTService, pages, appHTTP.Handlers{
		Dashboard: appHTTP.NewDashboardHandler(pages, dashboardSvc),
		Employee:  appHTTP.NewEmployeeHandler(pages, employeeSvc, codec),
		Holiday:   appHTTP.NewHolidayHandler(pages, holidaySvc),
		Events:    appHTTP.NewEventsHandler(hub),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "api", cfg.API.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
