package usecases

import (
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/internal/usecases/commands"
	"github.com/storecraft/storefront/internal/usecases/queries"
	"github.com/storecraft/storefront/pkg/decorator"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		CreateProduct      commands.CreateProductCommandHandler
		PlaceOrder         commands.PlaceOrderCommandHandler
		PayOrder           commands.PayOrderCommandHandler
		AppendJournalEntry commands.AppendJournalEntryCommandHandler
	}

	Queries struct {
		GetProduct        queries.GetProductQueryHandler
		ListProducts      queries.ListProductsQueryHandler
		GetOrder          queries.GetOrderQueryHandler
		GetJournal        queries.GetJournalQueryHandler
		FetchLiveness     queries.FetchLivenessQueryHandler
		FetchReadiness    queries.FetchReadinessQueryHandler
		FetchHealthReport queries.FetchHealthReportQueryHandler
	}

	// QueryCaches carries the optional read-through caches for product
	// queries. Nil adapters leave the corresponding query uncached.
	QueryCaches struct {
		GetProduct         decorator.Cache[queries.GetProductQuery, *model.Product]
		GetProductConfig   decorator.CacheConfig
		ListProducts       decorator.Cache[queries.ListProductsQuery, *model.ProductList]
		ListProductsConfig decorator.CacheConfig
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}
)

func NewApplication(
	catalogSvc ports.CatalogService,
	checkoutSvc ports.CheckoutService,
	journalSvc ports.JournalService,
	healthChecker ports.HealthChecker,
	queryCaches QueryCaches,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *Application {
	return &Application{
		Commands: Commands{
			CreateProduct:      commands.NewCreateProductCommandHandler(catalogSvc, log, metricsClient, tracerProvider),
			PlaceOrder:         commands.NewPlaceOrderCommandHandler(checkoutSvc, log, metricsClient, tracerProvider),
			PayOrder:           commands.NewPayOrderCommandHandler(checkoutSvc, log, metricsClient, tracerProvider),
			AppendJournalEntry: commands.NewAppendJournalEntryCommandHandler(journalSvc, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			GetProduct:        queries.NewCachedGetProductQueryHandler(catalogSvc, queryCaches.GetProduct, queryCaches.GetProductConfig, log, metricsClient, tracerProvider),
			ListProducts:      queries.NewCachedListProductsQueryHandler(catalogSvc, queryCaches.ListProducts, queryCaches.ListProductsConfig, log, metricsClient, tracerProvider),
			GetOrder:          queries.NewGetOrderQueryHandler(checkoutSvc, log, metricsClient, tracerProvider),
			GetJournal:        queries.NewGetJournalQueryHandler(journalSvc, log, metricsClient, tracerProvider),
			FetchLiveness:     queries.NewFetchLivenessQueryHandler(log, metricsClient, tracerProvider),
			FetchReadiness:    queries.NewFetchReadinessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchHealthReport: queries.NewFetchHealthReportQueryHandler(healthChecker, log, metricsClient, tracerProvider),
		},
	}
}
