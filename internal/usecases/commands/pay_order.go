package commands

import (
	"context"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/pkg/decorator"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	PayOrderCommand struct {
		OrderID      model.OrderID
		Method       model.PaymentMethod
		SecurityCode string
		Email        string
	}

	PayOrderCommandHandler = decorator.CommandHandler[PayOrderCommand, *model.Order]

	payOrderCommandHandler struct {
		checkoutService ports.CheckoutService
	}
)

func NewPayOrderCommandHandler(
	svc ports.CheckoutService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) PayOrderCommandHandler {
	return decorator.ApplyCommandDecorators[PayOrderCommand, *model.Order](
		payOrderCommandHandler{checkoutService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h payOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*model.Order, error) {
	return h.checkoutService.PayOrder(ctx, cmd.OrderID, cmd.Method, cmd.SecurityCode, cmd.Email)
}
