package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/pkg/circuitbreaker"
	"github.com/storecraft/storefront/pkg/logger"
)

// CardProcessor charges orders through a card network after checking the
// request's security code against the configured one.
type CardProcessor struct {
	method        model.PaymentMethod
	resolveCode   CredentialResolver
	breaker       *circuitbreaker.CircuitBreaker[struct{}]
	chargeTimeout time.Duration
	logger        logger.Logger
}

// NewDebitProcessor creates a processor for debit card payments.
func NewDebitProcessor(resolveCode CredentialResolver, breaker *circuitbreaker.CircuitBreaker[struct{}], chargeTimeout time.Duration, log logger.Logger) *CardProcessor {
	return &CardProcessor{
		method:        model.PaymentMethodDebit,
		resolveCode:   resolveCode,
		breaker:       breaker,
		chargeTimeout: chargeTimeout,
		logger:        log,
	}
}

// NewCreditProcessor creates a processor for credit card payments.
func NewCreditProcessor(resolveCode CredentialResolver, breaker *circuitbreaker.CircuitBreaker[struct{}], chargeTimeout time.Duration, log logger.Logger) *CardProcessor {
	return &CardProcessor{
		method:        model.PaymentMethodCredit,
		resolveCode:   resolveCode,
		breaker:       breaker,
		chargeTimeout: chargeTimeout,
		logger:        log,
	}
}

// Method returns the payment method this processor handles.
func (p *CardProcessor) Method() model.PaymentMethod {
	return p.method
}

// Pay verifies the security code and charges the order.
func (p *CardProcessor) Pay(ctx context.Context, order *model.Order, securityCode string) error {
	if order.IsPaid() {
		return model.ErrOrderAlreadyPaid
	}

	expected, err := p.resolveCode(ctx)
	if err != nil {
		return fmt.Errorf("resolving security code: %w", err)
	}

	if securityCode == "" || securityCode != expected {
		return fmt.Errorf("%w: invalid security code", model.ErrPaymentDeclined)
	}

	return p.charge(ctx, order)
}

func (p *CardProcessor) charge(ctx context.Context, order *model.Order) error {
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
			Str("method", p.method.String()).
			Int64("amount_cents", order.TotalPrice()).
			Msg("processing card payment")

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("charging %s payment: %w", p.method, err)
	}

	return nil
}
