package queries

import (
	"context"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/pkg/decorator"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListProductsQuery struct {
		Filter model.ProductFilter
	}

	ListProductsQueryHandler = decorator.QueryHandler[ListProductsQuery, *model.ProductList]

	listProductsQueryHandler struct {
		catalogService ports.CatalogService
	}
)

func NewListProductsQueryHandler(
	svc ports.CatalogService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListProductsQueryHandler {
	return decorator.ApplyQueryDecorators[ListProductsQuery, *model.ProductList](
		listProductsQueryHandler{catalogService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

// NewCachedListProductsQueryHandler wraps the list handler with a
// read-through cache. Listing hits the database only on a cache miss.
func NewCachedListProductsQueryHandler(
	svc ports.CatalogService,
	cache decorator.Cache[ListProductsQuery, *model.ProductList],
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListProductsQueryHandler {
	return decorator.NewQueryCachingDecorator[ListProductsQuery, *model.ProductList](
		NewListProductsQueryHandler(svc, log, metricsClient, tracerProvider),
		cache,
		cacheConfig,
	)
}

func (h listProductsQueryHandler) Execute(ctx context.Context, query ListProductsQuery) (*model.ProductList, error) {
	return h.catalogService.ListProducts(ctx, query.Filter)
}
