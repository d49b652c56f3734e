package repos

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/infrastructure"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/pkg/logger"
)

const (
	productCacheVersion = "v1"
	productKeyPrefix    = "product:" + productCacheVersion + ":"
	productListPrefix   = "products:list:" + productCacheVersion + ":"
)

type (
	// cachedProduct represents a product in JSON format for caching.
	cachedProduct struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Color     string    `json:"color"`
		Size      string    `json:"size"`
		Price     int64     `json:"price"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	// cachedPagination represents pagination metadata in JSON format for caching.
	cachedPagination struct {
		Page        uint `json:"page"`
		Size        uint `json:"size"`
		TotalItems  uint `json:"total_items"`
		TotalPages  uint `json:"total_pages"`
		HasNext     bool `json:"has_next"`
		HasPrevious bool `json:"has_previous"`
	}

	// cachedProductList represents a product list in JSON format for caching.
	cachedProductList struct {
		Products   []cachedProduct  `json:"products"`
		Pagination cachedPagination `json:"pagination"`
	}

	// ProductsCacheRepository implements the ProductsCache interface using KeyDB/Redis.
	ProductsCacheRepository struct {
		client *infrastructure.KeydbClient
		logger logger.Logger
	}
)

// NewProductsCacheRepository creates a new products cache repository.
func NewProductsCacheRepository(client *infrastructure.KeydbClient, log logger.Logger) *ProductsCacheRepository {
	return &ProductsCacheRepository{
		client: client,
		logger: log,
	}
}

// GetProduct retrieves a product from the cache by ID.
func (r *ProductsCacheRepository) GetProduct(ctx context.Context, id model.ProductID) (*ports.CacheResult[*model.Product], error) {
	key := r.productKey(id)

	data, err := r.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &ports.CacheResult[*model.Product]{
				Hit: false,
				Key: key,
			}, nil
		}

		return nil, fmt.Errorf("getting cached product: %w", err)
	}

	var cached cachedProduct
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("unmarshalling cached product: %w", err)
	}

	product, err := r.toDomainProduct(cached)
	if err != nil {
		return nil, fmt.Errorf("converting cached product: %w", err)
	}

	ttl := r.client.TTL(ctx, key)

	return &ports.CacheResult[*model.Product]{
		Data:     product,
		Hit:      true,
		Key:      key,
		TTL:      ttl,
		CachedAt: product.UpdatedAt,
	}, nil
}

// SetProduct stores a product in the cache with the given TTL.
func (r *ProductsCacheRepository) SetProduct(ctx context.Context, product *model.Product, ttl time.Duration) error {
	key := r.productKey(product.ID)

	cached := r.toCachedProduct(product)
	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshalling product: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("setting cached product: %w", err)
	}

	return nil
}

// InvalidateProduct removes a product from the cache.
func (r *ProductsCacheRepository) InvalidateProduct(ctx context.Context, id model.ProductID) error {
	key := r.productKey(id)

	if err := r.client.Delete(ctx, key); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("invalidating cached product: %w", err)
	}

	return nil
}

// GetProductList retrieves a product list from the cache based on filter.
func (r *ProductsCacheRepository) GetProductList(ctx context.Context, filter model.ProductFilter) (*ports.CacheResult[*model.ProductList], error) {
	key := r.productListKey(filter)

	data, err := r.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &ports.CacheResult[*model.ProductList]{
				Hit: false,
				Key: key,
			}, nil
		}

		return nil, fmt.Errorf("getting cached product list: %w", err)
	}

	var cached cachedProductList
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("unmarshalling cached product list: %w", err)
	}

	list, err := r.toDomainProductList(cached, filter)
	if err != nil {
		return nil, fmt.Errorf("converting cached product list: %w", err)
	}

	ttl := r.client.TTL(ctx, key)

	return &ports.CacheResult[*model.ProductList]{
		Data:     list,
		Hit:      true,
		Key:      key,
		TTL:      ttl,
		CachedAt: time.Now().UTC(),
	}, nil
}

// SetProductList stores a product list in the cache with the given TTL.
func (r *ProductsCacheRepository) SetProductList(ctx context.Context, filter model.ProductFilter, list *model.ProductList, ttl time.Duration) error {
	key := r.productListKey(filter)

	cached := r.toCachedProductList(list)
	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshalling product list: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("setting cached product list: %w", err)
	}

	return nil
}

// InvalidateProductLists removes all product list caches.
func (r *ProductsCacheRepository) InvalidateProductLists(ctx context.Context) error {
	_, err := r.purgeByPattern(ctx, fmt.Sprintf("%s*", productListPrefix))
	if err != nil {
		return fmt.Errorf("invalidating all product lists: %w", err)
	}

	return nil
}

// IsHealthy checks if the cache is available.
func (r *ProductsCacheRepository) IsHealthy(ctx context.Context) bool {
	return r.client.IsHealthy(ctx)
}

func (r *ProductsCacheRepository) productKey(id model.ProductID) string {
	return fmt.Sprintf("%s%s", productKeyPrefix, id.String())
}

func (r *ProductsCacheRepository) productListKey(filter model.ProductFilter) string {
	return fmt.Sprintf("%s%s", productListPrefix, r.hashFilter(filter))
}

func (r *ProductsCacheRepository) hashFilter(filter model.ProductFilter) string {
	sortedColors := make([]string, len(filter.Colors))
	for index, color := range filter.Colors {
		sortedColors[index] = color.String()
	}
	sort.Strings(sortedColors)

	sortedSizes := make([]string, len(filter.Sizes))
	for index, size := range filter.Sizes {
		sortedSizes[index] = size.String()
	}
	sort.Strings(sortedSizes)

	sortedSort := make([]string, len(filter.Sort))
	copy(sortedSort, filter.Sort)
	sort.Strings(sortedSort)

	filterKey := fmt.Sprintf(
		"name=%s&colors=%s&sizes=%s&sort=%s&page=%d&size=%d",
		filter.NameLike,
		strings.Join(sortedColors, ","),
		strings.Join(sortedSizes, ","),
		strings.Join(sortedSort, ","),
		filter.Page,
		filter.Size,
	)

	hash := sha256.Sum256([]byte(filterKey))

	return hex.EncodeToString(hash[:16])
}

func (r *ProductsCacheRepository) purgeByPattern(ctx context.Context, pattern string) (int64, error) {
	var cursor uint64
	var totalDeleted int64

	for {
		keys, nextCursor, err := r.client.Scan(ctx, cursor, pattern, 100)
		if err != nil {
			return totalDeleted, fmt.Errorf("scanning keys: %w", err)
		}

		for _, key := range keys {
			if err := r.client.Delete(ctx, key); err != nil && !errors.Is(err, redis.Nil) {
				r.logger.Warn().Str("key", key).Err(err).Msg("failed to delete key during purge")
				continue
			}
			totalDeleted++
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return totalDeleted, nil
}

func (r *ProductsCacheRepository) toCachedProduct(product *model.Product) cachedProduct {
	return cachedProduct{
		ID:        product.ID.String(),
		Name:      product.Name,
		Color:     product.Color.String(),
		Size:      product.Size.String(),
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func (r *ProductsCacheRepository) toDomainProduct(cached cachedProduct) (*model.Product, error) {
	id, err := model.ParseProductID(cached.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing product ID: %w", err)
	}

	color, err := model.ParseColor(cached.Color)
	if err != nil {
		return nil, fmt.Errorf("parsing product color: %w", err)
	}

	size, err := model.ParseSize(cached.Size)
	if err != nil {
		return nil, fmt.Errorf("parsing product size: %w", err)
	}

	return &model.Product{
		ID:        id,
		Name:      cached.Name,
		Color:     color,
		Size:      size,
		Price:     cached.Price,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, nil
}

func (r *ProductsCacheRepository) toCachedProductList(list *model.ProductList) cachedProductList {
	products := make([]cachedProduct, len(list.Products))
	for index, product := range list.Products {
		products[index] = r.toCachedProduct(product)
	}

	return cachedProductList{
		Products: products,
		Pagination: cachedPagination{
			Page:        list.Pagination.Page,
			Size:        list.Pagination.Size,
			TotalItems:  list.Pagination.TotalItems,
			TotalPages:  list.Pagination.TotalPages,
			HasNext:     list.Pagination.HasNext,
			HasPrevious: list.Pagination.HasPrevious,
		},
	}
}

func (r *ProductsCacheRepository) toDomainProductList(cached cachedProductList, filter model.ProductFilter) (*model.ProductList, error) {
	products := make([]*model.Product, len(cached.Products))
	for index := range cached.Products {
		product, err := r.toDomainProduct(cached.Products[index])
		if err != nil {
			return nil, fmt.Errorf("converting product at index %d: %w", index, err)
		}
		products[index] = product
	}

	return &model.ProductList{
		Products: products,
		Pagination: model.Pagination{
			Page:        cached.Pagination.Page,
			Size:        cached.Pagination.Size,
			TotalItems:  cached.Pagination.TotalItems,
			TotalPages:  cached.Pagination.TotalPages,
			HasNext:     cached.Pagination.HasNext,
			HasPrevious: cached.Pagination.HasPrevious,
		},
		Filters: filter,
	}, nil
}
