package ports

import (
	"context"

	"github.com/storecraft/storefront/internal/domain/model"
)

// CatalogService defines the interface for product catalog operations.
type CatalogService interface {
	// CreateProduct creates a new product with the given attributes.
	CreateProduct(ctx context.Context, name string, color model.Color, size model.Size, price int64) (*model.Product, error)

	// GetProduct retrieves a product by its ID.
	GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error)

	// ListProducts retrieves a paginated list of products with optional filters.
	ListProducts(ctx context.Context, filter model.ProductFilter) (*model.ProductList, error)
}
