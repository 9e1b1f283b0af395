package event

import "context"

// Message is one outgoing broker message.
type Message struct {
	ID         string
	RoutingKey string
	Body       []byte
}

type PublishFunc func(ctx context.Context, msg Message) error
