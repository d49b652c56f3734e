package runtime

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"

	"github.com/hashicorp/vault/api"
	inboundhttp "github.com/storecraft/storefront/internal/adapters/inbound/http"
	"github.com/storecraft/storefront/internal/adapters/journal"
	"github.com/storecraft/storefront/internal/adapters/payment"
	"github.com/storecraft/storefront/internal/adapters/repos"
	"github.com/storecraft/storefront/internal/config"
	"github.com/storecraft/storefront/internal/infrastructure"
	infraPostgres "github.com/storecraft/storefront/internal/infrastructure/postgres"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/internal/services"
	"github.com/storecraft/storefront/internal/usecases"
	"github.com/storecraft/storefront/pkg/circuitbreaker"
	"github.com/storecraft/storefront/pkg/decorator"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics/noop"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithConfigLoader(ctx),
		WithTracing(ctx),
		WithMetrics(),
		WithDatabase(ctx),
		WithCache(),
		WithRepositories(),
		WithJournal(ctx),
		WithServices(),
		WithApplication(),
		WithHTTPServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

func WithSecretsRepository() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = d.config.SecretsStorage.Address
		vaultConfig.Timeout = d.config.SecretsStorage.Timeout
		vaultConfig.MaxRetries = int(d.config.SecretsStorage.MaxRetries)

		if d.config.SecretsStorage.TLSSkipVerify {
			vaultConfig.HttpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("creating Vault client: %w", err)
		}

		if d.config.SecretsStorage.Namespace != "" {
			client.SetNamespace(d.config.SecretsStorage.Namespace)
		}

		d.repos.secretsRepo = repos.NewVaultRepository(client)

		return nil
	}
}

func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled || d.repos.secretsRepo == nil {
			return nil
		}

		loader := config.NewLoader(d.config, d.repos.secretsRepo, 0)

		version, err := loader.Load(ctx, d.repos.secretsRepo, d.config)
		if err != nil {
			return fmt.Errorf("loading secrets from Vault: %w", err)
		}

		d.configLoader = config.NewLoader(d.config, d.repos.secretsRepo, version)

		return nil
	}
}

func WithTracing(_ context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Enabled || !d.config.Telemetry.Traces.Enabled || d.config.Telemetry.OTLPEndpoint == "" {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.infra.tracerShutdown = shutdown
		d.cleanupFuncs["tracer"] = shutdown

		return nil
	}
}

func WithMetrics() DependencyOption {
	return func(d *dependencies) error {
		d.infra.metricsClient = noop.NewMetricsClient()

		return nil
	}
}

func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		pool, err := infraPostgres.NewPool(ctx, d.config.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.cleanupFuncs["postgres"] = func(_ context.Context) error {
			pool.Close()

			return nil
		}

		return nil
	}
}

func WithCache() DependencyOption {
	return func(d *dependencies) error {
		cfg := d.config
		if !cfg.ProductsCache.Enabled && !cfg.Idempotency.Enabled && !cfg.ThrottledRateLimiting.Enabled {
			return nil
		}

		client := infrastructure.NewKeyDBClient(cfg.Cache, d.infra.logger)

		d.infra.cacheClient = client
		d.cleanupFuncs["keydb"] = func(_ context.Context) error {
			return client.Close()
		}

		return nil
	}
}

func WithRepositories() DependencyOption {
	return func(d *dependencies) error {
		productsRepo := repos.NewProductsRepository(
			d.infra.dbPool,
			repos.NewPgxScanner(),
			repos.NewCriteriaTranslator(&d.infra.logger),
			d.infra.logger,
		)
		d.repos.productsRepo = productsRepo
		d.repos.dbHealth = productsRepo

		d.repos.ordersRepo = repos.NewInMemoryOrdersRepository()

		if d.infra.cacheClient == nil {
			return nil
		}

		if d.config.ProductsCache.Enabled {
			d.repos.productsCache = repos.NewProductsCacheRepository(d.infra.cacheClient, d.infra.logger)
		}

		if d.config.Idempotency.Enabled {
			idempotencyRepo, err := repos.NewIdempotencyRepository(d.infra.cacheClient)
			if err != nil {
				return fmt.Errorf("creating idempotency repository: %w", err)
			}

			d.repos.idempotencyRepo = idempotencyRepo
		}

		if d.config.ThrottledRateLimiting.Enabled {
			store, err := repos.NewRateLimitStore(d.infra.cacheClient)
			if err != nil {
				return fmt.Errorf("creating rate limit store: %w", err)
			}

			d.repos.rateLimitStore = store
		}

		return nil
	}
}

func WithJournal(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		d.repos.journalStore = journal.NewFileStore(d.config.Journal.FilePath, d.infra.logger)

		journalService, err := services.NewJournalService(ctx, d.repos.journalStore)
		if err != nil {
			return fmt.Errorf("initializing journal: %w", err)
		}

		d.services.journal = journalService

		return nil
	}
}

func WithServices() DependencyOption {
	return func(d *dependencies) error {
		d.services.catalog = services.NewCatalogService(
			d.repos.productsRepo,
			d.repos.productsCache,
			d.services.journal,
			d.infra.logger,
		)

		d.services.checkout = services.NewCheckoutService(
			d.repos.ordersRepo,
			d.paymentProcessors(),
			d.services.journal,
			d.infra.logger,
		)

		d.services.healthChecker = services.NewHealthService(d.repos.dbHealth, d.repos.productsCache)

		return nil
	}
}

func (d *dependencies) paymentProcessors() []ports.PaymentProcessor {
	breaker := circuitbreaker.New[struct{}](circuitbreaker.Config{
		Name:             "payments",
		Enabled:          d.config.Payments.CircuitBreaker.Enabled,
		MaxRequests:      d.config.Payments.CircuitBreaker.MaxRequests,
		Interval:         d.config.Payments.CircuitBreaker.Interval,
		Timeout:          d.config.Payments.CircuitBreaker.Timeout,
		FailureThreshold: d.config.Payments.CircuitBreaker.FailureThreshold,
	})

	debitCode := payment.StaticCredential(d.config.Payments.DebitSecurityCode)
	creditCode := payment.StaticCredential(d.config.Payments.CreditSecurityCode)

	if d.repos.secretsRepo != nil {
		debitCode = payment.VaultCredential(d.repos.secretsRepo, d.config.Payments.DebitSecurityCodePath, "security_code")
		creditCode = payment.VaultCredential(d.repos.secretsRepo, d.config.Payments.CreditSecurityCodePath, "security_code")
	}

	return []ports.PaymentProcessor{
		payment.NewDebitProcessor(debitCode, breaker, d.config.Payments.ChargeTimeout, d.infra.logger),
		payment.NewCreditProcessor(creditCode, breaker, d.config.Payments.ChargeTimeout, d.infra.logger),
		payment.NewPaypalProcessor(breaker, d.config.Payments.ChargeTimeout, d.infra.logger),
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		queryCaches := usecases.QueryCaches{}

		if d.config.ProductsCache.Enabled && d.repos.productsCache != nil {
			queryCaches.GetProduct = repos.NewGetProductCacheAdapter(d.repos.productsCache)
			queryCaches.GetProductConfig = decorator.CacheConfig{
				Enabled: true,
				TTL:     d.config.ProductsCache.ProductTTL,
			}
			queryCaches.ListProducts = repos.NewListProductsCacheAdapter(d.repos.productsCache)
			queryCaches.ListProductsConfig = decorator.CacheConfig{
				Enabled: true,
				TTL:     d.config.ProductsCache.ListTTL,
			}
		}

		d.app = usecases.NewApplication(
			d.services.catalog,
			d.services.checkout,
			d.services.journal,
			d.services.healthChecker,
			queryCaches,
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:              d.app,
			Logger:           d.infra.logger,
			MetricsClient:    d.infra.metricsClient,
			Config:           d.config,
			RateLimitStore:   d.repos.rateLimitStore,
			IdempotencyCache: d.repos.idempotencyRepo,
		})

		server := &http.Server{
			Addr:         net.JoinHostPort(d.config.PublicHTTPServer.Host, fmt.Sprintf("%d", d.config.PublicHTTPServer.Port)),
			Handler:      router,
			ReadTimeout:  d.config.PublicHTTPServer.ReadTimeout,
			WriteTimeout: d.config.PublicHTTPServer.WriteTimeout,
			IdleTimeout:  d.config.PublicHTTPServer.IdleTimeout,
		}

		d.infra.publicHTTPServer = server
		d.cleanupFuncs["http-server"] = server.Shutdown

		return nil
	}
}
