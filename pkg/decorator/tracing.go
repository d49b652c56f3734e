package decorator

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/codes"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	commandTracingDecorator[C Command, R any] struct {
		base           CommandHandler[C, R]
		tracerProvider otelTrace.TracerProvider
	}

	queryTracingDecorator[Q Query, R Result] struct {
		base           QueryHandler[Q, R]
		tracerProvider otelTrace.TracerProvider
	}
)

func (d commandTracingDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	if d.tracerProvider == nil {
		return d.base.Handle(ctx, cmd)
	}

	actionName := strings.ToLower(generateActionName(cmd))

	tracer := d.tracerProvider.Tracer("decorator")
	ctx, span := tracer.Start(ctx, fmt.Sprintf("command.%s", actionName))
	defer span.End()

	result, err = d.base.Handle(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}

func (d queryTracingDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	if d.tracerProvider == nil {
		return d.base.Execute(ctx, query)
	}

	actionName := strings.ToLower(generateActionName(query))

	tracer := d.tracerProvider.Tracer("decorator")
	ctx, span := tracer.Start(ctx, fmt.Sprintf("query.%s", actionName))
	defer span.End()

	result, err = d.base.Execute(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}
