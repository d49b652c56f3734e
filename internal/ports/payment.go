package ports

import (
	"context"

	"github.com/storecraft/storefront/internal/domain/model"
)

type (
	// PaymentProcessor defines the interface for charging an order through
	// a single payment method.
	PaymentProcessor interface {
		// Method returns the payment method this processor handles.
		Method() model.PaymentMethod

		// Pay charges the order after verifying the supplied credential,
		// a security code for card payments or an email address for PayPal.
		// Implementations must not mark the order paid.
		Pay(ctx context.Context, order *model.Order, credential string) error
	}

	// OrdersRepository defines the interface for order persistence operations.
	OrdersRepository interface {
		// Save stores a new order.
		Save(ctx context.Context, order *model.Order) error

		// FetchByID retrieves an order by its ID.
		FetchByID(ctx context.Context, id model.OrderID) (*model.Order, error)

		// Update persists changes to an existing order.
		Update(ctx context.Context, order *model.Order) error
	}

	// CheckoutService defines the interface for order placement and payment.
	CheckoutService interface {
		// PlaceOrder creates a new open order with the given line items.
		PlaceOrder(ctx context.Context, items []model.LineItem) (*model.Order, error)

		// GetOrder retrieves an order by its ID.
		GetOrder(ctx context.Context, id model.OrderID) (*model.Order, error)

		// PayOrder charges an open order using the given payment method
		// and marks it paid on success.
		PayOrder(ctx context.Context, id model.OrderID, method model.PaymentMethod, securityCode, email string) (*model.Order, error)
	}
)
