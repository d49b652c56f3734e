package services

import (
	"context"
	"fmt"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/pkg/logger"
)

// CheckoutService places orders and charges them through interchangeable
// payment processors. It only ever talks to the PaymentProcessor port, so
// adding a payment method is a wiring change, not a service change.
type CheckoutService struct {
	orders     ports.OrdersRepository
	processors map[model.PaymentMethod]ports.PaymentProcessor
	journal    ports.JournalService
	logger     logger.Logger
}

func NewCheckoutService(
	orders ports.OrdersRepository,
	processors []ports.PaymentProcessor,
	journal ports.JournalService,
	log logger.Logger,
) *CheckoutService {
	byMethod := make(map[model.PaymentMethod]ports.PaymentProcessor, len(processors))
	for _, processor := range processors {
		byMethod[processor.Method()] = processor
	}

	return &CheckoutService{
		orders:     orders,
		processors: byMethod,
		journal:    journal,
		logger:     log,
	}
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, items []model.LineItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, model.ErrEmptyOrder
	}

	order := model.NewOrder()
	for _, item := range items {
		order.AddItem(item.Name, item.Quantity, item.UnitPrice)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("saving order: %w", err)
	}

	log := s.logger.WithContext(ctx)
	log.Info().
		Str("order_id", order.ID.String()).
		Int("items", len(order.Items)).
		Int64("total_cents", order.TotalPrice()).
		Msg("order placed")

	return order, nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, id model.OrderID) (*model.Order, error) {
	return s.orders.FetchByID(ctx, id)
}

func (s *CheckoutService) PayOrder(ctx context.Context, id model.OrderID, method model.PaymentMethod, securityCode, email string) (*model.Order, error) {
	order, err := s.orders.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.IsPaid() {
		return nil, model.ErrOrderAlreadyPaid
	}

	processor, ok := s.processors[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownMethod, method)
	}

	credential := securityCode
	if method == model.PaymentMethodPaypal {
		credential = email
	}

	if err := processor.Pay(ctx, order, credential); err != nil {
		return nil, err
	}

	if err := order.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("updating paid order: %w", err)
	}

	if s.journal != nil {
		entry := fmt.Sprintf("order %s paid via %s", order.ID, method)
		if _, err := s.journal.Append(ctx, entry); err != nil {
			log := s.logger.WithContext(ctx)
			log.Warn().
				Err(err).
				Str("order_id", order.ID.String()).
				Msg("failed to record payment in journal")
		}
	}

	return order, nil
}
