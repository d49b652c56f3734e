package decorator

import (
	"context"
	"strings"
	"time"

	"github.com/storecraft/storefront/pkg/metrics"
)

type (
	commandMetricsDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		client metrics.Client
	}

	queryMetricsDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		client metrics.Client
	}
)

func recordAction(ctx context.Context, client metrics.Client, kind, action string, start time.Time, err error) {
	if client == nil {
		return
	}

	client.Inc(ctx, kind+"."+action+".duration", int64(time.Since(start).Seconds()))

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	client.Inc(ctx, kind+"."+action+"."+outcome, 1)
}

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	start := time.Now()
	actionName := strings.ToLower(generateActionName(cmd))

	defer func() {
		recordAction(ctx, d.client, "commands", actionName, start, err)
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	start := time.Now()
	actionName := strings.ToLower(generateActionName(query))

	defer func() {
		recordAction(ctx, d.client, "queries", actionName, start, err)
	}()

	return d.base.Execute(ctx, query)
}
