package repos

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/pkg/logger"
)

const productsTable = "products"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type (
	// PoolOps defines the interface for database operations.
	// This allows injecting mock implementations for testing.
	PoolOps interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Ping(ctx context.Context) error
	}

	// ProductsRepository handles product persistence operations.
	ProductsRepository struct {
		pool       PoolOps
		scanner    Scanner
		logger     logger.Logger
		translator *CriteriaTranslator
	}

	productRow struct {
		ID        string    `db:"id"`
		Name      string    `db:"name"`
		Color     string    `db:"color"`
		Size      string    `db:"size"`
		Price     int64     `db:"price"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}

	productRowWithCount struct {
		productRow
		TotalCount uint `db:"total_count"`
	}
)

// NewProductsRepository creates a new ProductsRepository with the given dependencies.
func NewProductsRepository(
	pool PoolOps,
	scanner Scanner,
	translator *CriteriaTranslator,
	log logger.Logger,
) *ProductsRepository {
	return &ProductsRepository{
		pool:       pool,
		scanner:    scanner,
		translator: translator,
		logger:     log,
	}
}

func (r *ProductsRepository) Create(ctx context.Context, product *model.Product) error {
	query, args, err := psql.Insert(productsTable).
		Columns("id", "name", "color", "size", "price", "created_at", "updated_at").
		Values(
			product.ID.String(),
			product.Name,
			product.Color.String(),
			product.Size.String(),
			product.Price,
			product.CreatedAt,
			product.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return model.ErrDuplicateProduct
		}

		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return nil
}

func (r *ProductsRepository) FetchByID(ctx context.Context, id model.ProductID) (*model.Product, error) {
	return r.findByCriteria(
		ctx,
		sq.Eq{"id": id.String()},
		fmt.Sprintf("product with ID %s not found", id.String()),
	)
}

func (r *ProductsRepository) List(ctx context.Context, filter model.ProductFilter) (*model.ProductList, error) {
	criteria := model.FromProductFilter(filter)

	selectBuilder := psql.Select(
		"id", "name", "color", "size", "price", "created_at", "updated_at",
		"COUNT(*) OVER() as total_count",
	).From(productsTable)

	selectBuilder = r.translator.ApplyToSelect(selectBuilder, criteria)

	products, totalItems, err := r.queryProductsWithCount(ctx, selectBuilder)
	if err != nil {
		return nil, err
	}

	totalPages := totalItems / criteria.Size()
	if totalItems%criteria.Size() != 0 {
		totalPages++
	}

	pagination := model.Pagination{
		Page:        criteria.Page(),
		Size:        criteria.Size(),
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     criteria.Page() < totalPages,
		HasPrevious: criteria.Page() > 1,
	}

	return &model.ProductList{
		Products:   products,
		Pagination: pagination,
		Filters:    filter,
	}, nil
}

func (r *ProductsRepository) Update(ctx context.Context, product *model.Product) error {
	return r.updateByCriteria(
		ctx,
		psql.Update(productsTable).
			Set("name", product.Name).
			Set("color", product.Color.String()).
			Set("size", product.Size.String()).
			Set("price", product.Price).
			Set("updated_at", product.UpdatedAt).
			Where(sq.Eq{"id": product.ID.String()}),
		"failed to update product",
	)
}

func (r *ProductsRepository) Delete(ctx context.Context, id model.ProductID) error {
	query, args, err := psql.Delete(productsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *ProductsRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *ProductsRepository) findByCriteria(
	ctx context.Context,
	criteria sq.Sqlizer,
	errorContext string,
) (*model.Product, error) {
	query, args, err := psql.Select("id", "name", "color", "size", "price", "created_at", "updated_at").
		From(productsTable).
		Where(criteria).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var row productRow
	if err := r.scanner.ScanOne(&row, rows); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrProductNotFound
		}

		return nil, fmt.Errorf("%s: %w", errorContext, err)
	}

	return r.convertRowToProduct(row)
}

func (r *ProductsRepository) updateByCriteria(
	ctx context.Context,
	updateBuilder sq.UpdateBuilder,
	errorContext string,
) error {
	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", errorContext, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *ProductsRepository) queryProductsWithCount(ctx context.Context, builder sq.SelectBuilder) ([]*model.Product, uint, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var productRows []productRowWithCount
	if err := r.scanner.ScanAll(&productRows, rows); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if len(productRows) == 0 {
		return []*model.Product{}, 0, nil
	}

	totalCount := productRows[0].TotalCount
	products := make([]*model.Product, 0, len(productRows))

	for index := range productRows {
		product, err := r.convertRowToProduct(productRows[index].productRow)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}
		products = append(products, product)
	}

	return products, totalCount, nil
}

func (r *ProductsRepository) convertRowToProduct(row productRow) (*model.Product, error) {
	id, err := model.ParseProductID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product ID: %w", err)
	}

	color, err := model.ParseColor(row.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product color: %w", err)
	}

	size, err := model.ParseSize(row.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product size: %w", err)
	}

	return &model.Product{
		ID:        id,
		Name:      row.Name,
		Color:     color,
		Size:      size,
		Price:     row.Price,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
