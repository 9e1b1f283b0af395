package rider

import (
	"context"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
)

type ListUseCaseImpl struct {
	Repo       outbound.RiderRepository
	Translator *usecase.ErrorTranslator
}

func NewListUseCase(repo outbound.RiderRepository, translator *usecase.ErrorTranslator) *ListUseCaseImpl {
	return &ListUseCaseImpl{Repo: repo, Translator: translator}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context) ([]entity.Rider, error) {
	riders, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, uc.Translator.Translate(ctx, "rider.list", err)
	}
	if riders == nil {
		riders = []entity.Rider{}
	}
	return riders, nil
}
