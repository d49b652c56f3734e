package decorator

import (
	"context"
	"fmt"
	"strings"

	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Command any

	// CommandHandler executes a state-changing action.
	CommandHandler[C Command, R any] interface {
		Handle(context.Context, C) (R, error)
	}
)

// ApplyCommandDecorators wraps handler with logging, metrics and
// tracing, mirroring ApplyQueryDecorators for the write side.
func ApplyCommandDecorators[C Command, R any](
	handler CommandHandler[C, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CommandHandler[C, R] {
	traced := commandTracingDecorator[C, R]{
		base:           handler,
		tracerProvider: tracerProvider,
	}
	measured := commandMetricsDecorator[C, R]{
		base:   traced,
		client: metricsClient,
	}

	return commandLoggingDecorator[C, R]{
		base:   measured,
		logger: log,
	}
}

// generateActionName derives the metric and log label from the
// command or query type, e.g. CreateProductCommand -> createproductcommand.
func generateActionName(handler any) string {
	return strings.Split(fmt.Sprintf("%T", handler), ".")[1]
}
