package location

import (
	"context"

	"github.com/DioGolang/GoRider/internal/domain/entity"
)

type UpsertUseCase interface {
	Execute(ctx context.Context, input UpsertInput) (*entity.RiderLocation, error)
}

type SearchUseCase interface {
	Execute(ctx context.Context, input SearchInput) ([]entity.RiderLocation, error)
}

type GetUseCase interface {
	Execute(ctx context.Context, riderID int64) (*entity.RiderLocation, error)
}
