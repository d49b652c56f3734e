package ports

import (
	"context"

	"github.com/storecraft/storefront/internal/domain/model"
)

type (
	Saver interface {
		// Create stores a new product in the database.
		Create(ctx context.Context, product *model.Product) error
	}

	Fetcher interface {
		// FetchByID retrieves a product by its ID.
		FetchByID(ctx context.Context, id model.ProductID) (*model.Product, error)
	}

	Finder interface {
		// List retrieves a paginated list of products with optional filters.
		List(ctx context.Context, filter model.ProductFilter) (*model.ProductList, error)
	}

	Updater interface {
		// Update updates an existing product in the database.
		Update(ctx context.Context, product *model.Product) error
	}

	Deleter interface {
		// Delete removes a product from the database by its ID.
		Delete(ctx context.Context, id model.ProductID) error
	}

	// ProductsRepository defines the interface for product persistence operations.
	ProductsRepository interface {
		Saver
		Fetcher
		Finder
		Updater
		Deleter
	}
)
