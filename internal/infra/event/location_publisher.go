package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/pkg/metrics"
)

const LocationUpsertedKey = "rider.location.upserted"

type LocationPublisher struct {
	publish PublishFunc
	metrics metrics.Metrics
}

func NewLocationPublisher(publish PublishFunc, m metrics.Metrics) *LocationPublisher {
	return &LocationPublisher{publish: publish, metrics: m}
}

func (p *LocationPublisher) PublishLocationUpserted(ctx context.Context, evt outbound.LocationUpserted) error {
	body, err := json.Marshal(evt)
	if err != nil {
		p.metrics.IncEventsPublished("failure")
		return fmt.Errorf("marshal %s: %w", LocationUpsertedKey, err)
	}

	err = p.publish(ctx, Message{ID: evt.EventID, RoutingKey: LocationUpsertedKey, Body: body})
	if err != nil {
		p.metrics.IncEventsPublished("failure")
		return err
	}
	p.metrics.IncEventsPublished("success")
	return nil
}

// NopPublisher drops events. Wired when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishLocationUpserted(context.Context, outbound.LocationUpserted) error {
	return nil
}
