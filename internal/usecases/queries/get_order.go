package queries

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
	GetOrderQuery struct {
		ID model.OrderID
	}

	GetOrderQueryHandler = decorator.QueryHandler[GetOrderQuery, *model.Order]

	getOrderQueryHandler struct {
		checkoutService ports.CheckoutService
	}
)

func NewGetOrderQueryHandler(
	svc ports.CheckoutService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetOrderQueryHandler {
	return decorator.ApplyQueryDecorators[GetOrderQuery, *model.Order](
		getOrderQueryHandler{checkoutService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getOrderQueryHandler) Execute(ctx context.Context, query GetOrderQuery) (*model.Order, error) {
	return h.checkoutService.GetOrder(ctx, query.ID)
}
