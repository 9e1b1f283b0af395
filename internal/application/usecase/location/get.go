package location

import (
	"context"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
)

type GetUseCaseImpl struct {
	Locations  outbound.LocationRepository
	Translator *usecase.ErrorTranslator
}

func NewGetUseCase(locations outbound.LocationRepository, translator *usecase.ErrorTranslator) *GetUseCaseImpl {
	return &GetUseCaseImpl{Locations: locations, Translator: translator}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, riderID int64) (*entity.RiderLocation, error) {
	loc, err := uc.Locations.FindByRiderIDWithRider(ctx, riderID)
	if err != nil {
		return nil, uc.Translator.Translate(ctx, "location.get", err)
	}
	if loc == nil {
		return nil, entity.NewNotFoundError("Location of rider ID#%d not found.", riderID)
	}
	return loc, nil
}
