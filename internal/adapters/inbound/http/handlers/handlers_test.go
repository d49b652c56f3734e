package handlers_test

import (
	"context"
	"time"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/internal/usecases"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics/noop"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

type mockCatalogService struct {
	createProductFn func(ctx context.Context, name string, color model.Color, size model.Size, price int64) (*model.Product, error)
	getProductFn    func(ctx context.Context, id model.ProductID) (*model.Product, error)
	listProductsFn  func(ctx context.Context, filter model.ProductFilter) (*model.ProductList, error)
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, name string, color model.Color, size model.Size, price int64) (*model.Product, error) {
	if m.createProductFn != nil {
		return m.createProductFn(ctx, name, color, size, price)
	}

	return model.NewProduct(name, color, size, price), nil
}

func (m *mockCatalogService) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	if m.getProductFn != nil {
		return m.getProductFn(ctx, id)
	}

	return &model.Product{
		ID:        id,
		Name:      "Test Shirt",
		Color:     model.ColorBlue,
		Size:      model.SizeMedium,
		Price:     1999,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (m *mockCatalogService) ListProducts(ctx context.Context, filter model.ProductFilter) (*model.ProductList, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(ctx, filter)
	}

	return &model.ProductList{
		Products: []*model.Product{},
		Pagination: model.Pagination{
			Page:       filter.Page,
			Size:       filter.Size,
			TotalPages: 1,
		},
		Filters: filter,
	}, nil
}

type mockCheckoutService struct {
	placeOrderFn func(ctx context.Context, items []model.LineItem) (*model.Order, error)
	getOrderFn   func(ctx context.Context, id model.OrderID) (*model.Order, error)
	payOrderFn   func(ctx context.Context, id model.OrderID, method model.PaymentMethod, securityCode, email string) (*model.Order, error)
}

func (m *mockCheckoutService) PlaceOrder(ctx context.Context, items []model.LineItem) (*model.Order, error) {
	if m.placeOrderFn != nil {
		return m.placeOrderFn(ctx, items)
	}

	order := model.NewOrder()
	for _, item := range items {
		order.AddItem(item.Name, item.Quantity, item.UnitPrice)
	}

	return order, nil
}

func (m *mockCheckoutService) GetOrder(ctx context.Context, id model.OrderID) (*model.Order, error) {
	if m.getOrderFn != nil {
		return m.getOrderFn(ctx, id)
	}

	order := model.NewOrder()
	order.ID = id
	order.AddItem("Test Shirt", 2, 1999)

	return order, nil
}

func (m *mockCheckoutService) PayOrder(ctx context.Context, id model.OrderID, method model.PaymentMethod, securityCode, email string) (*model.Order, error) {
	if m.payOrderFn != nil {
		return m.payOrderFn(ctx, id, method, securityCode, email)
	}

	order := model.NewOrder()
	order.ID = id
	order.AddItem("Test Shirt", 2, 1999)
	_ = order.MarkPaid()

	return order, nil
}

type mockJournalService struct {
	entriesFn func(ctx context.Context) ([]model.JournalEntry, error)
}

func (m *mockJournalService) Append(_ context.Context, _ string) (int, error) {
	return 1, nil
}

func (m *mockJournalService) Remove(_ context.Context, _ int) error {
	return nil
}

func (m *mockJournalService) Entries(ctx context.Context) ([]model.JournalEntry, error) {
	if m.entriesFn != nil {
		return m.entriesFn(ctx)
	}

	return []model.JournalEntry{}, nil
}

type mockHealthChecker struct {
	healthy bool
}

func (m *mockHealthChecker) IsHealthy(_ context.Context) bool {
	return m.healthy
}

func (m *mockHealthChecker) CheckDependencies(_ context.Context) map[string]ports.DependencyStatus {
	return map[string]ports.DependencyStatus{
		"postgres": {Healthy: m.healthy, Latency: "1ms"},
	}
}

type testServices struct {
	catalog  *mockCatalogService
	checkout *mockCheckoutService
	journal  *mockJournalService
	health   *mockHealthChecker
}

func newTestServices() *testServices {
	return &testServices{
		catalog:  &mockCatalogService{},
		checkout: &mockCheckoutService{},
		journal:  &mockJournalService{},
		health:   &mockHealthChecker{healthy: true},
	}
}

func newTestApp(svcs *testServices) *usecases.Application {
	return usecases.NewApplication(
		svcs.catalog,
		svcs.checkout,
		svcs.journal,
		svcs.health,
		usecases.QueryCaches{},
		logger.NewTestLogger(),
		noop.NewMetricsClient(),
		otelNoop.NewTracerProvider(),
	)
}
