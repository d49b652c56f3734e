package ports

import (
	"context"
	"time"

	"github.com/storecraft/storefront/internal/domain/model"
)

// CacheResult holds the result of a cache operation along with metadata.
type CacheResult[T any] struct {
	Data     T
	Hit      bool
	Key      string
	TTL      time.Duration
	CachedAt time.Time
}

// ProductsCache defines the interface for product caching operations.
type ProductsCache interface {
	// GetProduct retrieves a product from the cache by ID.
	// Returns a CacheResult with Hit=false if the product is not cached.
	GetProduct(ctx context.Context, id model.ProductID) (*CacheResult[*model.Product], error)

	// SetProduct stores a product in the cache with the given TTL.
	SetProduct(ctx context.Context, product *model.Product, ttl time.Duration) error

	// InvalidateProduct removes a product from the cache.
	InvalidateProduct(ctx context.Context, id model.ProductID) error

	// GetProductList retrieves a product list from the cache based on filter.
	// Returns a CacheResult with Hit=false if the list is not cached.
	GetProductList(ctx context.Context, filter model.ProductFilter) (*CacheResult[*model.ProductList], error)

	// SetProductList stores a product list in the cache with the given TTL.
	SetProductList(ctx context.Context, filter model.ProductFilter, list *model.ProductList, ttl time.Duration) error

	// InvalidateProductLists removes all cached product lists.
	InvalidateProductLists(ctx context.Context) error

	// IsHealthy checks if the cache is available.
	IsHealthy(ctx context.Context) bool
}
