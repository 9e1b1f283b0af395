package event

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// NewBreaker opens after five consecutive failures and probes again after openFor.
func NewBreaker(name string, openFor time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// WrapCircuitBreaker bounds each publish by timeout and fails fast with
// gobreaker.ErrOpenState while the broker is considered down.
func WrapCircuitBreaker(timeout time.Duration, cb *gobreaker.CircuitBreaker, next PublishFunc) PublishFunc {
	return func(ctx context.Context, msg Message) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		_, err := cb.Execute(func() (interface{}, error) {
			return nil, next(ctx, msg)
		})
		return err
	}
}
