package location

import (
	"context"
	"time"

	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/pkg/metrics"
)

type UpsertLocationMetricsDecorator struct {
	Next    UpsertUseCase
	Metrics metrics.Metrics
}

func (d *UpsertLocationMetricsDecorator) Execute(ctx context.Context, input UpsertInput) (*entity.RiderLocation, error) {
	start := time.Now()
	loc, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("UpsertLocation", err == nil, time.Since(start))
	return loc, err
}
