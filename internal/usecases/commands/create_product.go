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
	CreateProductCommand struct {
		Name  string
		Color model.Color
		Size  model.Size
		Price int64
	}

	CreateProductCommandHandler = decorator.CommandHandler[CreateProductCommand, *model.Product]

	createProductCommandHandler struct {
		catalogService ports.CatalogService
	}
)

func NewCreateProductCommandHandler(
	svc ports.CatalogService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateProductCommandHandler {
	return decorator.ApplyCommandDecorators[CreateProductCommand, *model.Product](
		createProductCommandHandler{catalogService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*model.Product, error) {
	return h.catalogService.CreateProduct(ctx, cmd.Name, cmd.Color, cmd.Size, cmd.Price)
}
