package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/infrastructure"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/internal/usecases/queries"
	"github.com/storecraft/storefront/pkg/decorator"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
)

type mockCatalogService struct {
	getProductFn   func(ctx context.Context, id model.ProductID) (*model.Product, error)
	listProductsFn func(ctx context.Context, filter model.ProductFilter) (*model.ProductList, error)
	listCalls      int
	mu             sync.Mutex
}

func (m *mockCatalogService) CreateProduct(_ context.Context, name string, color model.Color, size model.Size, price int64) (*model.Product, error) {
	return model.NewProduct(name, color, size, price), nil
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	if m.getProductFn != nil {
		return m.getProductFn(ctx, id)
	}

	return nil, model.ErrProductNotFound
}

func (m *mockCatalogService) ListProducts(ctx context.Context, filter model.ProductFilter) (*model.ProductList, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()

	if m.listProductsFn != nil {
		return m.listProductsFn(ctx, filter)
	}

	return &model.ProductList{Filters: filter}, nil
}

type mockHealthChecker struct {
	healthy      bool
	dependencies map[string]ports.DependencyStatus
}

func (m *mockHealthChecker) IsHealthy(context.Context) bool {
	return m.healthy
}

func (m *mockHealthChecker) CheckDependencies(context.Context) map[string]ports.DependencyStatus {
	return m.dependencies
}

type mockListCache struct {
	mu     sync.Mutex
	stored map[uint]*model.ProductList
	getErr error
}

func newMockListCache() *mockListCache {
	return &mockListCache{stored: make(map[uint]*model.ProductList)}
}

func (m *mockListCache) Get(_ context.Context, query queries.ListProductsQuery) (*model.ProductList, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	list, ok := m.stored[query.Filter.Page]

	return list, ok, nil
}

func (m *mockListCache) Set(_ context.Context, query queries.ListProductsQuery, result *model.ProductList, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stored[query.Filter.Page] = result

	return nil
}

func TestGetProductQueryHandler(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	cases := []struct {
		name        string
		setupSvc    func(*mockCatalogService) model.ProductID
		expectError bool
		expectedErr error
	}{
		{
			name: "successfully get product",
			setupSvc: func(m *mockCatalogService) model.ProductID {
				product := model.NewProduct("Apple", model.ColorGreen, model.SizeSmall, 100)
				m.getProductFn = func(_ context.Context, id model.ProductID) (*model.Product, error) {
					require.Equal(t, product.ID, id)

					return product, nil
				}

				return product.ID
			},
			expectError: false,
		},
		{
			name: "product not found",
			setupSvc: func(m *mockCatalogService) model.ProductID {
				return model.NewProductID()
			},
			expectError: true,
			expectedErr: model.ErrProductNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockCatalogService{}
			productID := tc.setupSvc(svc)

			handler := queries.NewGetProductQueryHandler(svc, log, mc, tp)

			product, err := handler.Execute(context.Background(), queries.GetProductQuery{ID: productID})

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedErr != nil {
					require.ErrorIs(t, err, tc.expectedErr)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, productID, product.ID)
			}
		})
	}
}

func TestListProductsQueryHandler(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	filter := model.ProductFilter{
		Colors: []model.Color{model.ColorGreen},
		Page:   1,
		Size:   20,
	}

	svc := &mockCatalogService{
		listProductsFn: func(_ context.Context, got model.ProductFilter) (*model.ProductList, error) {
			require.Equal(t, filter, got)

			return &model.ProductList{
				Products: []*model.Product{model.NewProduct("Apple", model.ColorGreen, model.SizeSmall, 100)},
				Filters:  got,
			}, nil
		},
	}

	handler := queries.NewListProductsQueryHandler(svc, log, mc, tp)

	list, err := handler.Execute(context.Background(), queries.ListProductsQuery{Filter: filter})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
}

func TestCachedListProductsQueryHandler_ServesFromCache(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	svc := &mockCatalogService{}
	cache := newMockListCache()
	cached := &model.ProductList{
		Products: []*model.Product{model.NewProduct("Cached", model.ColorBlue, model.SizeLarge, 900)},
	}
	cache.stored[1] = cached

	handler := queries.NewCachedListProductsQueryHandler(svc, cache, decorator.CacheConfig{Enabled: true, TTL: time.Minute}, log, mc, tp)

	list, err := handler.Execute(context.Background(), queries.ListProductsQuery{Filter: model.ProductFilter{Page: 1}})
	require.NoError(t, err)
	require.Equal(t, cached, list)
	require.Equal(t, 0, svc.listCalls)
}

func TestCachedListProductsQueryHandler_FallsThroughOnMiss(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	svc := &mockCatalogService{}
	cache := newMockListCache()

	handler := queries.NewCachedListProductsQueryHandler(svc, cache, decorator.CacheConfig{Enabled: true, TTL: time.Minute}, log, mc, tp)

	_, err := handler.Execute(context.Background(), queries.ListProductsQuery{Filter: model.ProductFilter{Page: 2}})
	require.NoError(t, err)
	require.Equal(t, 1, svc.listCalls)
}

func TestCachedListProductsQueryHandler_CacheErrorFallsThrough(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	svc := &mockCatalogService{}
	cache := newMockListCache()
	cache.getErr = errors.New("cache unavailable")

	handler := queries.NewCachedListProductsQueryHandler(svc, cache, decorator.CacheConfig{Enabled: true, TTL: time.Minute}, log, mc, tp)

	_, err := handler.Execute(context.Background(), queries.ListProductsQuery{Filter: model.ProductFilter{Page: 1}})
	require.NoError(t, err)
	require.Equal(t, 1, svc.listCalls)
}

func TestFetchLivenessQueryHandler(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	handler := queries.NewFetchLivenessQueryHandler(log, mc, tp)

	result, err := handler.Execute(context.Background(), queries.FetchLivenessQuery{})
	require.NoError(t, err)
	require.Equal(t, "ok", result.Status)
}

func TestFetchReadinessQueryHandler(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	cases := []struct {
		name      string
		healthy   bool
		wantReady bool
	}{
		{name: "ready when healthy", healthy: true, wantReady: true},
		{name: "not ready when unhealthy", healthy: false, wantReady: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := queries.NewFetchReadinessQueryHandler(&mockHealthChecker{healthy: tc.healthy}, log, mc, tp)

			result, err := handler.Execute(context.Background(), queries.FetchReadinessQuery{})
			require.NoError(t, err)
			require.Equal(t, tc.wantReady, result.Ready)
		})
	}
}

func TestFetchHealthReportQueryHandler(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	cases := []struct {
		name         string
		dependencies map[string]ports.DependencyStatus
		wantStatus   string
	}{
		{
			name: "healthy when all dependencies are up",
			dependencies: map[string]ports.DependencyStatus{
				"postgres": {Healthy: true, Latency: "1ms"},
				"keydb":    {Healthy: true, Latency: "0ms"},
			},
			wantStatus: "healthy",
		},
		{
			name: "unhealthy when a dependency is down",
			dependencies: map[string]ports.DependencyStatus{
				"postgres": {Healthy: true, Latency: "1ms"},
				"keydb":    {Healthy: false, Message: "cache unreachable"},
			},
			wantStatus: "unhealthy",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			checker := &mockHealthChecker{healthy: true, dependencies: tc.dependencies}
			handler := queries.NewFetchHealthReportQueryHandler(checker, log, mc, tp)

			result, err := handler.Execute(context.Background(), queries.FetchHealthReportQuery{})
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, result.Status)
			require.Len(t, result.Dependencies, len(tc.dependencies))
		})
	}
}

type mockJournalService struct {
	entries []model.JournalEntry
}

func (m *mockJournalService) Append(context.Context, string) (int, error) {
	return 0, nil
}

func (m *mockJournalService) Remove(context.Context, int) error {
	return nil
}

func (m *mockJournalService) Entries(context.Context) ([]model.JournalEntry, error) {
	return m.entries, nil
}

func TestGetJournalQueryHandler(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	svc := &mockJournalService{
		entries: []model.JournalEntry{
			{Seq: 1, Text: "product created"},
			{Seq: 2, Text: "order paid"},
		},
	}

	handler := queries.NewGetJournalQueryHandler(svc, log, mc, tp)

	entries, err := handler.Execute(context.Background(), queries.GetJournalQuery{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "product created", entries[0].Text)
}

type mockCheckoutService struct {
	order *model.Order
}

func (m *mockCheckoutService) PlaceOrder(context.Context, []model.LineItem) (*model.Order, error) {
	return m.order, nil
}

func (m *mockCheckoutService) GetOrder(_ context.Context, id model.OrderID) (*model.Order, error) {
	if m.order == nil || m.order.ID != id {
		return nil, model.ErrOrderNotFound
	}

	return m.order, nil
}

func (m *mockCheckoutService) PayOrder(context.Context, model.OrderID, model.PaymentMethod, string, string) (*model.Order, error) {
	return m.order, nil
}

func TestGetOrderQueryHandler(t *testing.T) {
	t.Parallel()

	log := logger.New("debug", "console")
	tp := infrastructure.NewNoopTracerProvider()
	mc := noop.NewMetricsClient()

	order := model.NewOrder()
	order.AddItem("Book", 1, 1500)

	handler := queries.NewGetOrderQueryHandler(&mockCheckoutService{order: order}, log, mc, tp)

	got, err := handler.Execute(context.Background(), queries.GetOrderQuery{ID: order.ID})
	require.NoError(t, err)
	require.Equal(t, order.ID, got.ID)

	_, err = handler.Execute(context.Background(), queries.GetOrderQuery{ID: model.NewOrderID()})
	require.ErrorIs(t, err, model.ErrOrderNotFound)
}
