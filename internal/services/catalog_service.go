package services

import (
	"context"
	"fmt"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/pkg/logger"
)

// CatalogService implements product catalog operations on top of the
// products repository. Creating a product invalidates cached listings and
// leaves an audit trail entry; neither failure aborts the creation.
type CatalogService struct {
	repo    ports.ProductsRepository
	cache   ports.ProductsCache
	journal ports.JournalService
	logger  logger.Logger
}

func NewCatalogService(
	repo ports.ProductsRepository,
	cache ports.ProductsCache,
	journal ports.JournalService,
	log logger.Logger,
) *CatalogService {
	return &CatalogService{
		repo:    repo,
		cache:   cache,
		journal: journal,
		logger:  log,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, name string, color model.Color, size model.Size, price int64) (*model.Product, error) {
	product := model.NewProduct(name, color, size, price)

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateProductLists(ctx); err != nil {
			log := s.logger.WithContext(ctx)
			log.Warn().
				Err(err).
				Str("product_id", product.ID.String()).
				Msg("failed to invalidate product list caches")
		}
	}

	if s.journal != nil {
		entry := fmt.Sprintf("product %s created: %s", product.ID, product.Name)
		if _, err := s.journal.Append(ctx, entry); err != nil {
			log := s.logger.WithContext(ctx)
			log.Warn().
				Err(err).
				Str("product_id", product.ID.String()).
				Msg("failed to record product creation in journal")
		}
	}

	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	return s.repo.FetchByID(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, filter model.ProductFilter) (*model.ProductList, error) {
	return s.repo.List(ctx, filter)
}
