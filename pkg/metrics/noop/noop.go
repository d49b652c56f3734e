// Package noop implements a metrics client that records nothing. It is
// the default when no metrics backend is configured, and it keeps tests
// free of OTEL setup.
package noop

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
)

type MetricsClient struct{}

func NewMetricsClient() MetricsClient {
	return MetricsClient{}
}

func (MetricsClient) Inc(_ context.Context, _ string, _ any, _ ...attribute.KeyValue) {}

func (MetricsClient) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (MetricsClient) Shutdown(_ context.Context) error {
	return nil
}
