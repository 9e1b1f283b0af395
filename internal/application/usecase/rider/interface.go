package rider

import (
	"context"

	"github.com/DioGolang/GoRider/internal/domain/entity"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input entity.RiderInput) (*entity.Rider, error)
}

type ListUseCase interface {
	Execute(ctx context.Context) ([]entity.Rider, error)
}

type GetUseCase interface {
	Execute(ctx context.Context, id int64) (*entity.Rider, error)
}

type UpdateUseCase interface {
	Execute(ctx context.Context, input UpdateInput) (*entity.Rider, error)
}

type DeleteUseCase interface {
	Execute(ctx context.Context, id int64) error
}
