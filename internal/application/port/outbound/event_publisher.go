package outbound

import (
	"context"
	"time"
)

type LocationUpserted struct {
	EventID    string    `json:"eventId"`
	RiderID    int64     `json:"riderId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Created    bool      `json:"created"`
	OccurredAt time.Time `json:"occurredAt"`
}

type LocationEventPublisher interface {
	PublishLocationUpserted(ctx context.Context, evt LocationUpserted) error
}
