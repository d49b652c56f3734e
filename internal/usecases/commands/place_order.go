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
	PlaceOrderCommand struct {
		Items []model.LineItem
	}

	PlaceOrderCommandHandler = decorator.CommandHandler[PlaceOrderCommand, *model.Order]

	placeOrderCommandHandler struct {
		checkoutService ports.CheckoutService
	}
)

func NewPlaceOrderCommandHandler(
	svc ports.CheckoutService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) PlaceOrderCommandHandler {
	return decorator.ApplyCommandDecorators[PlaceOrderCommand, *model.Order](
		placeOrderCommandHandler{checkoutService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h placeOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*model.Order, error) {
	return h.checkoutService.PlaceOrder(ctx, cmd.Items)
}
