package metrics

import (
	"context"
	"net/http"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type (
	// OTELClient records counters through an OTEL meter, registering
	// instruments lazily on first use.
	OTELClient struct {
		meter    metric.Meter
		shutdown func(ctx context.Context) error

		mu       sync.Mutex
		counters map[string]metric.Int64Counter
	}
)

func NewOTELClient(meter metric.Meter, shutdown func(ctx context.Context) error) *OTELClient {
	return &OTELClient{
		meter:    meter,
		shutdown: shutdown,
		counters: make(map[string]metric.Int64Counter),
	}
}

func (c *OTELClient) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	counter, err := c.counter(key)
	if err != nil {
		return
	}

	counter.Add(ctx, toInt64(value), metric.WithAttributes(attributes...))
}

func (c *OTELClient) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (c *OTELClient) Shutdown(ctx context.Context) error {
	if c.shutdown == nil {
		return nil
	}

	return c.shutdown(ctx)
}

func (c *OTELClient) counter(key string) (metric.Int64Counter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.counters[key]; ok {
		return counter, nil
	}

	counter, err := RegisterInt64Counter(c.meter, Descriptor{Description: key, Unit: "1"}, key)
	if err != nil {
		return nil, err
	}

	c.counters[key] = counter

	return counter, nil
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 1
	}
}
