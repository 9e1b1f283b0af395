package location

import (
	"context"
	"time"

	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/pkg/metrics"
)

type SearchLocationMetricsDecorator struct {
	Next    SearchUseCase
	Metrics metrics.Metrics
}

func (d *SearchLocationMetricsDecorator) Execute(ctx context.Context, input SearchInput) ([]entity.RiderLocation, error) {
	start := time.Now()
	out, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("SearchLocation", err == nil, time.Since(start))
	return out, err
}
