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
	GetJournalQuery struct{}

	GetJournalQueryHandler = decorator.QueryHandler[GetJournalQuery, []model.JournalEntry]

	getJournalQueryHandler struct {
		journalService ports.JournalService
	}
)

func NewGetJournalQueryHandler(
	svc ports.JournalService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetJournalQueryHandler {
	return decorator.ApplyQueryDecorators[GetJournalQuery, []model.JournalEntry](
		getJournalQueryHandler{journalService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getJournalQueryHandler) Execute(ctx context.Context, _ GetJournalQuery) ([]model.JournalEntry, error) {
	return h.journalService.Entries(ctx)
}
