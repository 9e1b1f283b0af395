package rider

import (
	"context"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
)

// DeleteUseCaseImpl removes a rider. Its location goes with it (ON DELETE CASCADE).
type DeleteUseCaseImpl struct {
	Repo       outbound.RiderRepository
	Translator *usecase.ErrorTranslator
}

func NewDeleteUseCase(repo outbound.RiderRepository, translator *usecase.ErrorTranslator) *DeleteUseCaseImpl {
	return &DeleteUseCaseImpl{Repo: repo, Translator: translator}
}

func (uc *DeleteUseCaseImpl) Execute(ctx context.Context, id int64) error {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return translate(ctx, uc.Translator, "rider.delete", id, nil, err)
	}
	return nil
}
