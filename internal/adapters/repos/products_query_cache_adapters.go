package repos

import (
	"context"
	"time"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/internal/usecases/queries"
)

type (
	// GetProductCacheAdapter adapts ProductsCache for GetProductQuery.
	GetProductCacheAdapter struct {
		cache ports.ProductsCache
	}

	// ListProductsCacheAdapter adapts ProductsCache for ListProductsQuery.
	ListProductsCacheAdapter struct {
		cache ports.ProductsCache
	}
)

// NewGetProductCacheAdapter creates a new cache adapter for GetProductQuery.
func NewGetProductCacheAdapter(cache ports.ProductsCache) *GetProductCacheAdapter {
	return &GetProductCacheAdapter{cache: cache}
}

// Get retrieves a product from the cache.
func (a *GetProductCacheAdapter) Get(ctx context.Context, query queries.GetProductQuery) (*model.Product, bool, error) {
	result, err := a.cache.GetProduct(ctx, query.ID)
	if err != nil {
		return nil, false, err
	}

	return result.Data, result.Hit, nil
}

// Set stores a product in the cache.
func (a *GetProductCacheAdapter) Set(ctx context.Context, _ queries.GetProductQuery, result *model.Product, ttl time.Duration) error {
	return a.cache.SetProduct(ctx, result, ttl)
}

// NewListProductsCacheAdapter creates a new cache adapter for ListProductsQuery.
func NewListProductsCacheAdapter(cache ports.ProductsCache) *ListProductsCacheAdapter {
	return &ListProductsCacheAdapter{cache: cache}
}

// Get retrieves a product list from the cache.
func (a *ListProductsCacheAdapter) Get(ctx context.Context, query queries.ListProductsQuery) (*model.ProductList, bool, error) {
	result, err := a.cache.GetProductList(ctx, query.Filter)
	if err != nil {
		return nil, false, err
	}

	return result.Data, result.Hit, nil
}

// Set stores a product list in the cache.
func (a *ListProductsCacheAdapter) Set(ctx context.Context, query queries.ListProductsQuery, result *model.ProductList, ttl time.Duration) error {
	return a.cache.SetProductList(ctx, query.Filter, result, ttl)
}
