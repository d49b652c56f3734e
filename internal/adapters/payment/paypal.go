package payment

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/pkg/circuitbreaker"
	"github.com/storecraft/storefront/pkg/logger"
)

// PaypalProcessor charges orders via PayPal, identified by the payer's
// email address rather than a security code.
type PaypalProcessor struct {
	breaker       *circuitbreaker.CircuitBreaker[struct{}]
	chargeTimeout time.Duration
	logger        logger.Logger
}

// NewPaypalProcessor creates a processor for PayPal payments.
func NewPaypalProcessor(breaker *circuitbreaker.CircuitBreaker[struct{}], chargeTimeout time.Duration, log logger.Logger) *PaypalProcessor {
	return &PaypalProcessor{
		breaker:       breaker,
		chargeTimeout: chargeTimeout,
		logger:        log,
	}
}

// Method returns the payment method this processor handles.
func (p *PaypalProcessor) Method() model.PaymentMethod {
	return model.PaymentMethodPaypal
}

// Pay validates the payer's email address and charges the order.
func (p *PaypalProcessor) Pay(ctx context.Context, order *model.Order, email string) error {
	if order.IsPaid() {
		return model.ErrOrderAlreadyPaid
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", model.ErrPaymentDeclined)
	}

	chargeCtx := ctx
	if p.chargeTimeout > 0 {
		var cancel context.CancelFunc
		chargeCtx, cancel = context.WithTimeout(ctx, p.chargeTimeout)
		defer cancel()
	}

	_, err := circuitbreaker.Execute(p.breaker, func() (struct{}, error) {
		if err := chargeCtx.Err(); err != nil {
			return struct{}{}, err
		}

		log := p.logger.WithContext(chargeCtx)
		log.Info().
			Str("order_id", order.ID.String()).
			Str("payer_email", email).
			Int64("amount_cents", order.TotalPrice()).
			Msg("processing paypal payment")

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("charging paypal payment: %w", err)
	}

	return nil
}
