package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"employeeform/internal/domain/employee"
	"employeeform/internal/platform/config"
	"employeeform/internal/platform/jobs"
	"employeeform/internal/platform/metrics"
	employeehandler "employeeform/internal/transport/http/handlers/employees"
	"employeeform/internal/transport/http/middleware"
)

type App struct {
	Config   config.Config
	Log      *zap.Logger
	Router   http.Handler
	Sessions *employee.Sessions
	Jobs     *jobs.Service
	Metrics  *metrics.Collector

	cancel context.CancelFunc
}

// New wires the application and starts its background jobs. Close stops
// them.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	collector := metrics.New()
	sessions := employee.NewSessions(cfg.SessionTTL)

	jobCtx, cancel := context.WithCancel(ctx)
	jobSvc := jobs.New(log)
	jobSvc.Start(jobCtx)
	jobSvc.Every(jobCtx, jobs.JobSessionSweep, cfg.SessionSweep, func(context.Context) (any, error) {
		removed := sessions.Sweep()
		collector.SessionsSwept(removed)
		collector.SetSessions(sessions.Len())
		return map[string]int{"removed": removed, "active": sessions.Len()}, nil
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log, collector))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if jobCtx.Err() != nil {
			http.Error(w, "shutting down", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Handle("/metrics", collector.Handler())
	}

	employeeHandler := employeehandler.NewHandler(log, collector)
	router.Group(func(r chi.Router) {
		r.Use(middleware.Session(sessions, cfg.IsProduction(), log, collector))
		r.Use(middleware.MutationRateLimit(cfg.RateLimitPerMinute, time.Minute, middleware.WithRateLimitLogger(log)))

		employeeHandler.RegisterPages(r)
		r.Route("/api/v1", employeeHandler.RegisterRoutes)
	})

	return &App{
		Config:   cfg,
		Log:      log,
		Router:   router,
		Sessions: sessions,
		Jobs:     jobSvc,
		Metrics:  collector,
		cancel:   cancel,
	}, nil
}

func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the configured shutdown timeout.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	app, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Log.Info("employee form server listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Environment))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	app.Log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
