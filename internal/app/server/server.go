package server

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"attendflow/internal/domain/attendance"
	"attendflow/internal/domain/geofence"
	"attendflow/internal/domain/insights"
	"attendflow/internal/platform/config"
	"attendflow/internal/platform/metrics"
	"attendflow/internal/platform/seed"
	"attendflow/internal/transport/http/api"
	attendancehandler "attendflow/internal/transport/http/handlers/attendance"
	employeeshandler "attendflow/internal/transport/http/handlers/employees"
	insightshandler "attendflow/internal/transport/http/handlers/insights"
	locationshandler "attendflow/internal/transport/http/handlers/locations"
	payrollhandler "attendflow/internal/transport/http/handlers/payroll"
	reportshandler "attendflow/internal/transport/http/handlers/reports"
	"attendflow/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Store   *attendance.Store
	Metrics *metrics.Collector
	Router  http.Handler
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := attendance.NewStore(geofence.Planar{})
	if cfg.RunSeed {
		seed.Load(store)
	}

	var summarizer insights.Summarizer = insights.Disabled{}
	if cfg.GeminiAPIKey != "" {
		summarizer = insights.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.InsightTimeout)
	}

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Instrument(collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		attendancehandler.NewHandler(store, collector).RegisterRoutes(r)
		employeeshandler.NewHandler(store).RegisterRoutes(r)
		locationshandler.NewHandler(store).RegisterRoutes(r)
		payrollhandler.NewHandler(store).RegisterRoutes(r)
		reportshandler.NewHandler(store).RegisterRoutes(r)
		insightshandler.NewHandler(store, summarizer).RegisterRoutes(r)

		if cfg.MetricsEnabled {
			r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	return &App{Config: cfg, Store: store, Metrics: collector, Router: router}, nil
}

func Run() {
	cfg := config.Load()
	app, err := New(cfg)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	log.Printf("AttendFlow server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
