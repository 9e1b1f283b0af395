package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/DioGolang/GoRider/pkg/logger"
	"github.com/DioGolang/GoRider/pkg/metrics"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLockerOptions struct {
	TTL     time.Duration
	MinWait time.Duration
	MaxWait time.Duration
}

var DefaultRedisLockerOptions = RedisLockerOptions{
	TTL:     5 * time.Second,
	MinWait: 10 * time.Millisecond,
	MaxWait: 200 * time.Millisecond,
}

// RedisLocker is a per-rider mutex shared by every instance talking to the
// same Redis. The TTL bounds how long a crashed holder blocks others.
type RedisLocker struct {
	client  redis.UniversalClient
	opts    RedisLockerOptions
	metrics metrics.Metrics
	logger  logger.Logger
}

func NewRedisLocker(c redis.UniversalClient, opts RedisLockerOptions, m metrics.Metrics, log logger.Logger) *RedisLocker {
	return &RedisLocker{client: c, opts: opts, metrics: m, logger: log}
}

func lockKey(riderID int64) string {
	return fmt.Sprintf("gorider:lock:rider:%d:location", riderID)
}

func (l *RedisLocker) Lock(ctx context.Context, riderID int64) (func(), error) {
	key := lockKey(riderID)
	token := uuid.NewString()
	start := time.Now()
	wait := l.opts.MinWait

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.opts.TTL).Result()
		if err != nil {
			l.metrics.ObserveLockWait("redis", false, time.Since(start))
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			l.metrics.ObserveLockWait("redis", true, time.Since(start))
			return l.releaser(ctx, key, token), nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			l.metrics.ObserveLockWait("redis", false, time.Since(start))
			return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
		}
		wait = min(wait*2, l.opts.MaxWait)
	}
}

func (l *RedisLocker) releaser(ctx context.Context, key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			// The request may already be cancelled; the lock must still go.
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				l.logger.Warn(ctx, "Failed to release rider lock",
					logger.String("key", key),
					logger.WithError(err),
				)
			}
		})
	}
}
