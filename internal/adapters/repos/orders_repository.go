package repos

import (
	"context"
	"sync"

	"github.com/storecraft/storefront/internal/domain/model"
)

// InMemoryOrdersRepository keeps orders in process memory. Orders live only
// for the lifetime of the service; durable state is the paid audit trail in
// the journal.
type InMemoryOrdersRepository struct {
	mu     sync.RWMutex
	orders map[model.OrderID]*model.Order
}

// NewInMemoryOrdersRepository creates an empty orders repository.
func NewInMemoryOrdersRepository() *InMemoryOrdersRepository {
	return &InMemoryOrdersRepository{
		orders: make(map[model.OrderID]*model.Order),
	}
}

// Save stores a new order.
func (r *InMemoryOrdersRepository) Save(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = cloneOrder(order)

	return nil
}

// FetchByID retrieves an order by its ID.
func (r *InMemoryOrdersRepository) FetchByID(_ context.Context, id model.OrderID) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}

	return cloneOrder(order), nil
}

// Update persists changes to an existing order.
func (r *InMemoryOrdersRepository) Update(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; !ok {
		return model.ErrOrderNotFound
	}

	r.orders[order.ID] = cloneOrder(order)

	return nil
}

// cloneOrder copies an order so callers cannot mutate stored state through
// a shared item slice.
func cloneOrder(order *model.Order) *model.Order {
	clone := *order
	clone.Items = make([]model.LineItem, len(order.Items))
	copy(clone.Items, order.Items)

	if order.PaidAt != nil {
		paidAt := *order.PaidAt
		clone.PaidAt = &paidAt
	}

	return &clone
}
