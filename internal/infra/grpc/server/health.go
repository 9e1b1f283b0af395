package server

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/DioGolang/GoRider/pkg/logger"
)

type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

// HealthWatcher probes dependencies and mirrors the result into a grpc
// health server: one status per check plus the overall "" service.
type HealthWatcher struct {
	server   *health.Server
	checks   []Check
	interval time.Duration
	timeout  time.Duration
	logger   logger.Logger
}

func NewHealthWatcher(hs *health.Server, interval, timeout time.Duration, log logger.Logger, checks ...Check) *HealthWatcher {
	return &HealthWatcher{server: hs, checks: checks, interval: interval, timeout: timeout, logger: log}
}

// Run probes until ctx is done, then marks every service NOT_SERVING.
func (w *HealthWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			w.server.Shutdown()
			return
		case <-ticker.C:
			w.Probe(ctx)
		}
	}
}

func (w *HealthWatcher) Probe(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING
	for _, c := range w.checks {
		st := healthpb.HealthCheckResponse_SERVING
		cctx, cancel := context.WithTimeout(ctx, w.timeout)
		if err := c.Fn(cctx); err != nil {
			st = healthpb.HealthCheckResponse_NOT_SERVING
			overall = st
			w.logger.Warn(ctx, "Health check failed",
				logger.String("check", c.Name),
				logger.WithError(err),
			)
		}
		cancel()
		w.server.SetServingStatus(c.Name, st)
	}
	w.server.SetServingStatus("", overall)
}
