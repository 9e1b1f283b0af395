package rider

import (
	"context"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
)

type CreateUseCaseImpl struct {
	Repo       outbound.RiderRepository
	Validator  entity.RiderValidator
	Translator *usecase.ErrorTranslator
}

func NewCreateUseCase(repo outbound.RiderRepository, validator entity.RiderValidator, translator *usecase.ErrorTranslator) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{Repo: repo, Validator: validator, Translator: translator}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input entity.RiderInput) (*entity.Rider, error) {
	fields, err := uc.Validator.Validate(input)
	if err != nil {
		return nil, err
	}
	r, err := uc.Repo.Create(ctx, fields)
	if err != nil {
		return nil, translate(ctx, uc.Translator, "rider.create", 0, &fields.Email, err)
	}
	return r, nil
}
