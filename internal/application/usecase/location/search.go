package location

import (
	"context"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/internal/domain/geo"
	"github.com/DioGolang/GoRider/pkg/metrics"
)

// SearchUseCaseImpl scans every known location. Fine for a fleet of a few
// thousand riders; beyond that it needs a spatial index.
type SearchUseCaseImpl struct {
	Locations  outbound.LocationRepository
	Distance   geo.DistanceFunc
	Translator *usecase.ErrorTranslator
	Metrics    metrics.Metrics
}

func NewSearchUseCase(locations outbound.LocationRepository, translator *usecase.ErrorTranslator, m metrics.Metrics) *SearchUseCaseImpl {
	return &SearchUseCaseImpl{
		Locations:  locations,
		Distance:   geo.Haversine,
		Translator: translator,
		Metrics:    m,
	}
}

func (uc *SearchUseCaseImpl) Execute(ctx context.Context, input SearchInput) ([]entity.RiderLocation, error) {
	all, err := uc.Locations.ListWithRider(ctx)
	if err != nil {
		return nil, uc.Translator.Translate(ctx, "location.search", err)
	}

	radius := input.radius()
	nearby := make([]entity.RiderLocation, 0, len(all))
	for _, loc := range all {
		if uc.Distance(input.Latitude, input.Longitude, loc.Latitude, loc.Longitude) <= radius {
			nearby = append(nearby, loc)
		}
	}

	uc.Metrics.RecordSearch(len(nearby))
	return nearby, nil
}
