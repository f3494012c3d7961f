package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrcore/internal/domain/compliance"
	"hrcore/internal/domain/employee"
	"hrcore/internal/domain/onboarding"
	"hrcore/internal/domain/reports"
	"hrcore/internal/domain/rolechange"
	"hrcore/internal/platform/config"
	"hrcore/internal/platform/db"
	"hrcore/internal/platform/metrics"
	"hrcore/internal/transport/http/api"
	compliancehandler "hrcore/internal/transport/http/handlers/compliance"
	employeehandler "hrcore/internal/transport/http/handlers/employee"
	onboardinghandler "hrcore/internal/transport/http/handlers/onboarding"
	reportshandler "hrcore/internal/transport/http/handlers/reports"
	rolechangehandler "hrcore/internal/transport/http/handlers/rolechange"
	"hrcore/internal/transport/http/middleware"
)

// NewRouter wires stores, services and handlers onto a chi router. Journey
// tests reuse it against their own pool.
func NewRouter(pool *pgxpool.Pool, cfg config.Config) http.Handler {
	collector := metrics.New()

	employeeStore := employee.NewStore(pool)
	onboardingStore := onboarding.NewStore(pool)
	complianceStore := compliance.NewStore(pool)
	rolechangeStore := rolechange.NewStore(pool)
	reportsStore := reports.NewStore(pool)

	employeeService := employee.NewService(employeeStore, onboardingStore, cfg.OnboardingChecklist)
	onboardingService := onboarding.NewService(onboardingStore, employeeStore)
	complianceService := compliance.NewService(complianceStore, employeeStore, cfg.ExpectedDocTypes)
	rolechangeService := rolechange.NewService(rolechangeStore, employeeStore)
	reportsService := reports.NewService(reportsStore, cfg.SalaryBands)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute).Middleware)
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}

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
			api.Success(w, map[string]any{"metrics": collector.Snapshot()}, middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret, cfg.APITokenHash))

		employeehandler.NewHandler(employeeService).RegisterRoutes(r)
		onboardinghandler.NewHandler(onboardingService).RegisterRoutes(r)
		compliancehandler.NewHandler(complianceService).RegisterRoutes(r)
		rolechangehandler.NewHandler(rolechangeService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
	})

	return router
}

func Run() {
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

	router := NewRouter(pool, cfg)

	log.Printf("hrcore server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
