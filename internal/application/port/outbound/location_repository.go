package outbound

import (
	"context"

	"github.com/DioGolang/GoRider/internal/domain/entity"
)

// LocationRepository persists rider locations. Failures are *StoreError.
type LocationRepository interface {
	// FindByRiderID returns nil, nil when the rider has no location yet.
	FindByRiderID(ctx context.Context, riderID int64) (*entity.RiderLocation, error)
	// FindByRiderIDWithRider is FindByRiderID with the owning rider embedded.
	FindByRiderIDWithRider(ctx context.Context, riderID int64) (*entity.RiderLocation, error)
	Create(ctx context.Context, riderID int64, coords entity.Coordinates) (*entity.RiderLocation, error)
	// Update writes only the fields present in patch.
	Update(ctx context.Context, riderID int64, patch entity.CoordinatesPatch) (*entity.RiderLocation, error)
	ListWithRider(ctx context.Context) ([]entity.RiderLocation, error)
}
