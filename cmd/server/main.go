package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"horas/internal/db"
	"horas/internal/domain/absence"
	"horas/internal/domain/directory"
	"horas/internal/domain/project"
	"horas/internal/domain/reports"
	"horas/internal/domain/timesheet"
	"horas/internal/platform/config"
	"horas/internal/platform/email"
	platformmetrics "horas/internal/platform/metrics"
	absencehandler "horas/internal/transport/http/handlers/absence"
	authhandler "horas/internal/transport/http/handlers/auth"
	directoryhandler "horas/internal/transport/http/handlers/directory"
	projecthandler "horas/internal/transport/http/handlers/project"
	reportshandler "horas/internal/transport/http/handlers/reports"
	timesheethandler "horas/internal/transport/http/handlers/timesheet"
	"horas/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	collector := platformmetrics.New()

	directoryService := directory.NewService(directory.NewStore(pool))
	timesheetService := timesheet.NewService(timesheet.NewStore(pool))
	absenceService := absence.NewService(absence.NewStore(pool))
	projectService := project.NewService(project.NewStore(pool))
	reportsService := reports.NewService(reports.NewStore(pool), email.New(cfg), cfg.EmailFrom)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	// Auth must run before the limiter so authenticated traffic is keyed
	// by user rather than by client address.
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(directoryService, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		directoryhandler.NewHandler(directoryService).RegisterRoutes(r)
		timesheethandler.NewHandler(timesheetService).RegisterRoutes(r)
		absencehandler.NewHandler(absenceService).RegisterRoutes(r)
		projecthandler.NewHandler(projectService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService, collector).RegisterRoutes(r)
	})

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, corsOptions.Handler(router)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
