package location

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/pkg/logger"
	"github.com/DioGolang/GoRider/pkg/metrics"
)

const (
	pathCreate = "create"
	pathUpdate = "update"
)

type UpsertUseCaseImpl struct {
	Riders     outbound.RiderRepository
	Locations  outbound.LocationRepository
	Locker     outbound.RiderLocker
	Publisher  outbound.LocationEventPublisher
	Translator *usecase.ErrorTranslator
	Metrics    metrics.Metrics
	Logger     logger.Logger
}

func NewUpsertUseCase(
	riders outbound.RiderRepository,
	locations outbound.LocationRepository,
	locker outbound.RiderLocker,
	publisher outbound.LocationEventPublisher,
	translator *usecase.ErrorTranslator,
	m metrics.Metrics,
	log logger.Logger,
) *UpsertUseCaseImpl {
	return &UpsertUseCaseImpl{
		Riders:     riders,
		Locations:  locations,
		Locker:     locker,
		Publisher:  publisher,
		Translator: translator,
		Metrics:    m,
		Logger:     log,
	}
}

func (uc *UpsertUseCaseImpl) Execute(ctx context.Context, input UpsertInput) (*entity.RiderLocation, error) {
	exists, err := uc.Riders.Exists(ctx, input.RiderID)
	if err != nil {
		return nil, uc.Translator.Translate(ctx, "location.upsert.rider_exists", err)
	}
	if !exists {
		return nil, entity.NewNotFoundError("Rider with ID#%d not found.", input.RiderID)
	}

	loc, created, err := uc.write(ctx, input)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, loc, created)
	return loc, nil
}

// write runs the lookup and the chosen write while holding the rider's lock.
func (uc *UpsertUseCaseImpl) write(ctx context.Context, input UpsertInput) (*entity.RiderLocation, bool, error) {
	unlock, err := uc.Locker.Lock(ctx, input.RiderID)
	if err != nil {
		return nil, false, uc.Translator.Translate(ctx, "location.upsert.lock", err)
	}
	defer unlock()

	current, err := uc.Locations.FindByRiderID(ctx, input.RiderID)
	if err != nil {
		return nil, false, uc.Translator.Translate(ctx, "location.upsert.find", err)
	}

	if current != nil {
		patch, err := entity.ValidateCoordinatesPatch(input.Coordinates)
		if err != nil {
			return nil, false, err
		}
		loc, err := uc.Locations.Update(ctx, input.RiderID, patch)
		if err != nil {
			return nil, false, uc.Translator.Translate(ctx, "location.upsert.update", err)
		}
		uc.Metrics.RecordLocationUpserted(pathUpdate)
		return loc, false, nil
	}

	coords, err := entity.ValidateCoordinates(input.Coordinates)
	if err != nil {
		return nil, false, err
	}
	loc, err := uc.Locations.Create(ctx, input.RiderID, coords)
	if err != nil {
		return nil, false, uc.Translator.Translate(ctx, "location.upsert.create", err)
	}
	uc.Metrics.RecordLocationUpserted(pathCreate)
	return loc, true, nil
}

// publish never fails the upsert; the write is already committed.
func (uc *UpsertUseCaseImpl) publish(ctx context.Context, loc *entity.RiderLocation, created bool) {
	evt := outbound.LocationUpserted{
		EventID:    uuid.NewString(),
		RiderID:    loc.RiderID,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		Created:    created,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.Publisher.PublishLocationUpserted(ctx, evt); err != nil {
		uc.Logger.Warn(ctx, "Failed to publish location event",
			logger.String("event_id", evt.EventID),
			logger.Int64("rider_id", evt.RiderID),
			logger.WithError(err),
		)
	}
}
