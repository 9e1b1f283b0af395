package otel

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var _ propagation.TextMapCarrier = HeadersCarrier(nil)

// HeadersCarrier adapts AMQP message headers to the otel propagation API.
type HeadersCarrier amqp.Table

func (c HeadersCarrier) Get(key string) string {
	s, _ := c[key].(string)
	return s
}

func (c HeadersCarrier) Set(key, value string) {
	c[key] = value
}

func (c HeadersCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// MessageHeaders returns a fresh header table carrying the trace context of ctx.
func MessageHeaders(ctx context.Context) amqp.Table {
	headers := make(amqp.Table)
	otel.GetTextMapPropagator().Inject(ctx, HeadersCarrier(headers))
	return headers
}

// ExtractHeaders restores the trace context stored in headers onto ctx.
func ExtractHeaders(ctx context.Context, headers amqp.Table) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, HeadersCarrier(headers))
}
