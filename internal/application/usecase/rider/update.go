package rider

import (
	"context"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
)

type UpdateUseCaseImpl struct {
	Repo       outbound.RiderRepository
	Validator  entity.RiderValidator
	Translator *usecase.ErrorTranslator
}

func NewUpdateUseCase(repo outbound.RiderRepository, validator entity.RiderValidator, translator *usecase.ErrorTranslator) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{Repo: repo, Validator: validator, Translator: translator}
}

// Execute applies the supplied fields only. An empty patch returns the rider unchanged.
func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, input UpdateInput) (*entity.Rider, error) {
	patch, err := uc.Validator.ValidatePatch(input.Rider)
	if err != nil {
		return nil, err
	}

	var r *entity.Rider
	if patch.IsEmpty() {
		r, err = uc.Repo.FindByID(ctx, input.ID)
	} else {
		r, err = uc.Repo.Update(ctx, input.ID, patch)
	}
	if err != nil {
		return nil, translate(ctx, uc.Translator, "rider.update", input.ID, patch.Email, err)
	}
	return r, nil
}
