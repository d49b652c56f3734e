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
	GetProductQuery struct {
		ID model.ProductID
	}

	GetProductQueryHandler = decorator.QueryHandler[GetProductQuery, *model.Product]

	getProductQueryHandler struct {
		catalogService ports.CatalogService
	}
)

func NewGetProductQueryHandler(
	svc ports.CatalogService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetProductQueryHandler {
	return decorator.ApplyQueryDecorators[GetProductQuery, *model.Product](
		getProductQueryHandler{catalogService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

// NewCachedGetProductQueryHandler wraps the get handler with a read-through
// cache keyed by product ID.
func NewCachedGetProductQueryHandler(
	svc ports.CatalogService,
	cache decorator.Cache[GetProductQuery, *model.Product],
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetProductQueryHandler {
	return decorator.NewQueryCachingDecorator[GetProductQuery, *model.Product](
		NewGetProductQueryHandler(svc, log, metricsClient, tracerProvider),
		cache,
		cacheConfig,
	)
}

func (h getProductQueryHandler) Execute(ctx context.Context, query GetProductQuery) (*model.Product, error) {
	return h.catalogService.GetProduct(ctx, query.ID)
}
