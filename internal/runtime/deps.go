package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storecraft/storefront/internal/config"
	"github.com/storecraft/storefront/internal/infrastructure"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/internal/usecases"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics"
	"github.com/throttled/throttled/v2"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	infrastructureDep struct {
		publicHTTPServer *http.Server
		cacheClient      *infrastructure.KeydbClient
		dbPool           *pgxpool.Pool
		logger           logger.Logger
		metricsClient    metrics.Client
		tracerProvider   otelTrace.TracerProvider
		tracerShutdown   func(ctx context.Context) error
	}

	repositories struct {
		productsRepo    ports.ProductsRepository
		productsCache   ports.ProductsCache
		ordersRepo      ports.OrdersRepository
		secretsRepo     ports.SecretsRepository
		idempotencyRepo ports.IdempotencyCache
		rateLimitStore  throttled.GCRAStoreCtx
		journalStore    ports.JournalStore
		dbHealth        ports.DatabaseHealthChecker
	}

	servicesDep struct {
		catalog       ports.CatalogService
		checkout      ports.CheckoutService
		journal       ports.JournalService
		healthChecker ports.HealthChecker
	}

	dependencies struct {
		config       *config.ServiceConfig
		configLoader *config.Loader

		infra infrastructureDep

		repos repositories

		services servicesDep

		app *usecases.Application

		cleanupFuncs map[string]func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}
