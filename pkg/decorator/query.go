package decorator

import (
	"context"

	"github.com/storecraft/storefront/pkg/logger"
	"github.com/storecraft/storefront/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Query  any
	Result any

	// QueryHandler executes a read against the application.
	QueryHandler[Q Query, R Result] interface {
		Execute(ctx context.Context, query Q) (R, error)
	}
)

// ApplyQueryDecorators wraps handler with logging, metrics and tracing,
// outermost first, so the log line covers the full handler duration.
func ApplyQueryDecorators[Q Query, R Result](
	handler QueryHandler[Q, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) QueryHandler[Q, R] {
	traced := queryTracingDecorator[Q, R]{
		base:           handler,
		tracerProvider: tracerProvider,
	}
	measured := queryMetricsDecorator[Q, R]{
		base:   traced,
		client: metricsClient,
	}

	return queryLoggingDecorator[Q, R]{
		base:   measured,
		logger: log,
	}
}
