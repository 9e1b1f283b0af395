package event

import (
	"context"
	"math"
	"time"

	"github.com/DioGolang/GoRider/pkg/logger"
)

func WrapExponentialBackoff(
	log logger.Logger,
	name string,
	maxRetries int,
	baseWait time.Duration,
	next PublishFunc,
) PublishFunc {
	return func(ctx context.Context, msg Message) error {
		var err error
		for attempt := 0; attempt <= maxRetries; attempt++ {
			err = next(ctx, msg)
			if err == nil {
				return nil
			}
			if attempt < maxRetries {
				wait := baseWait * time.Duration(math.Pow(2, float64(attempt)))

				log.Warn(ctx, "Transient publish failure, retrying...",
					logger.String("publisher", name),
					logger.String("event_id", msg.ID),
					logger.Int("attempt", attempt+1),
					logger.String("wait", wait.String()),
					logger.WithError(err),
				)

				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-ctx.Done():
					timer.Stop()
					return ctx.Err()
				}
			}
		}

		log.Error(ctx, "Max retries reached, giving up.",
			logger.String("publisher", name),
			logger.String("event_id", msg.ID),
			logger.WithError(err),
		)
		return err
	}
}
