package rider

import (
	"context"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
)

type GetUseCaseImpl struct {
	Repo       outbound.RiderRepository
	Translator *usecase.ErrorTranslator
}

func NewGetUseCase(repo outbound.RiderRepository, translator *usecase.ErrorTranslator) *GetUseCaseImpl {
	return &GetUseCaseImpl{Repo: repo, Translator: translator}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, id int64) (*entity.Rider, error) {
	r, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(ctx, uc.Translator, "rider.get", id, nil, err)
	}
	return r, nil
}
