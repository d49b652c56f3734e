package commands

import (
	"context"

	"github.com/storecraft/storefront/internal/ports"
	"github.com/storecraft/storefront/pkg/decorator"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	AppendJournalEntryCommand struct {
		Text string
	}

	AppendJournalEntryResult struct {
		Seq int `json:"seq"`
	}

	AppendJournalEntryCommandHandler = decorator.CommandHandler[AppendJournalEntryCommand, *AppendJournalEntryResult]

	appendJournalEntryCommandHandler struct {
		journalService ports.JournalService
	}
)

func NewAppendJournalEntryCommandHandler(
	svc ports.JournalService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) AppendJournalEntryCommandHandler {
	return decorator.ApplyCommandDecorators[AppendJournalEntryCommand, *AppendJournalEntryResult](
		appendJournalEntryCommandHandler{journalService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h appendJournalEntryCommandHandler) Handle(ctx context.Context, cmd AppendJournalEntryCommand) (*AppendJournalEntryResult, error) {
	seq, err := h.journalService.Append(ctx, cmd.Text)
	if err != nil {
		return nil, err
	}

	return &AppendJournalEntryResult{Seq: seq}, nil
}
