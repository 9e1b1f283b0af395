package outbound

import (
	"context"

	"github.com/DioGolang/GoRider/internal/domain/entity"
)

// RiderRepository persists riders. Failures are *StoreError.
type RiderRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, fields entity.RiderFields) (*entity.Rider, error)
	FindAll(ctx context.Context) ([]entity.Rider, error)
	// FindByID returns a NoRows StoreError when the rider does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Rider, error)
	Update(ctx context.Context, id int64, patch entity.RiderPatch) (*entity.Rider, error)
	Delete(ctx context.Context, id int64) error
}
