package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/storecraft/storefront/internal/adapters/inbound/http/handlers"
	"github.com/storecraft/storefront/internal/adapters/inbound/http/middleware"
	"github.com/storecraft/storefront/internal/config"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/internal/usecases"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics"
	"github.com/throttled/throttled/v2"
)

const (
	baseURL = "/v1"
)

type RouterConfig struct {
	App              *usecases.Application
	Logger           logger.Logger
	MetricsClient    metrics.Client
	Config           *config.ServiceConfig
	RateLimitStore   throttled.GCRAStoreCtx
	IdempotencyCache ports.IdempotencyCache
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	// Core middlewares - always applied
	router.Use(middleware.RequestID())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(chimiddleware.Timeout(cfg.Config.PublicHTTPServer.WriteTimeout))
	router.Use(middleware.SecurityHeaders())

	// Metrics middleware
	if cfg.Config.Telemetry.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetricsMiddleware(cfg.MetricsClient)
		router.Use(metricsMiddleware.Middleware)
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	// Access logging with health check filtering
	if cfg.Config.Logging.AccessLog.Enabled {
		healthFilter := middleware.NewHealthCheckFilter(cfg.Config.Logging.AccessLog.LogHealthChecks)

		router.Use(healthFilter.Middleware)
		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeQueryParams))
		cfg.Logger.Info().
			Bool("log_health_checks", cfg.Config.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	if cfg.Config.ThrottledRateLimiting.Enabled && cfg.RateLimitStore != nil {
		router.Use(middleware.ThrottledRateLimitingMiddleware(
			cfg.Config.ThrottledRateLimiting,
			cfg.RateLimitStore,
			cfg.Logger,
		))
		cfg.Logger.Info().
			Uint("requests_per_second", cfg.Config.ThrottledRateLimiting.RequestsPerSecond).
			Msg("rate limiting enabled")
	}

	productHandler := handlers.NewProductHandler(cfg.App)
	orderHandler := handlers.NewOrderHandler(cfg.App)
	journalHandler := handlers.NewJournalHandler(cfg.App)
	healthHandler := handlers.NewHealthHandler(cfg.App)

	router.Route(baseURL, func(r chi.Router) {
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/liveness", healthHandler.LivenessCheck)
		r.Get("/readiness", healthHandler.ReadinessCheck)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Post("/", productHandler.CreateProduct)
			r.Get("/{productID}", productHandler.GetProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.PlaceOrder)
			r.Get("/{orderID}", orderHandler.GetOrder)

			r.Group(func(r chi.Router) {
				if cfg.Config.Idempotency.Enabled && cfg.IdempotencyCache != nil {
					r.Use(middleware.IdempotencyMiddleware(
						cfg.IdempotencyCache,
						cfg.Config.Idempotency,
						cfg.Logger,
					))
				}

				r.Post("/{orderID}/payment", orderHandler.PayOrder)
			})
		})

		r.Get("/journal", journalHandler.ListEntries)
	})

	return router
}
