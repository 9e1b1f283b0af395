// Package mocks holds testify mocks for the outbound ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/domain/entity"
)

type RiderRepository struct {
	mock.Mock
}

func (m *RiderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *RiderRepository) Create(ctx context.Context, fields entity.RiderFields) (*entity.Rider, error) {
	args := m.Called(ctx, fields)
	return rider(args.Get(0)), args.Error(1)
}

func (m *RiderRepository) FindAll(ctx context.Context) ([]entity.Rider, error) {
	args := m.Called(ctx)
	riders, _ := args.Get(0).([]entity.Rider)
	return riders, args.Error(1)
}

func (m *RiderRepository) FindByID(ctx context.Context, id int64) (*entity.Rider, error) {
	args := m.Called(ctx, id)
	return rider(args.Get(0)), args.Error(1)
}

func (m *RiderRepository) Update(ctx context.Context, id int64, patch entity.RiderPatch) (*entity.Rider, error) {
	args := m.Called(ctx, id, patch)
	return rider(args.Get(0)), args.Error(1)
}

func (m *RiderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type LocationRepository struct {
	mock.Mock
}

func (m *LocationRepository) FindByRiderID(ctx context.Context, riderID int64) (*entity.RiderLocation, error) {
	args := m.Called(ctx, riderID)
	return location(args.Get(0)), args.Error(1)
}

func (m *LocationRepository) FindByRiderIDWithRider(ctx context.Context, riderID int64) (*entity.RiderLocation, error) {
	args := m.Called(ctx, riderID)
	return location(args.Get(0)), args.Error(1)
}

func (m *LocationRepository) Create(ctx context.Context, riderID int64, coords entity.Coordinates) (*entity.RiderLocation, error) {
	args := m.Called(ctx, riderID, coords)
	return location(args.Get(0)), args.Error(1)
}

func (m *LocationRepository) Update(ctx context.Context, riderID int64, patch entity.CoordinatesPatch) (*entity.RiderLocation, error) {
	args := m.Called(ctx, riderID, patch)
	return location(args.Get(0)), args.Error(1)
}

func (m *LocationRepository) ListWithRider(ctx context.Context) ([]entity.RiderLocation, error) {
	args := m.Called(ctx)
	locations, _ := args.Get(0).([]entity.RiderLocation)
	return locations, args.Error(1)
}

type RiderLocker struct {
	mock.Mock
}

func (m *RiderLocker) Lock(ctx context.Context, riderID int64) (func(), error) {
	args := m.Called(ctx, riderID)
	unlock, _ := args.Get(0).(func())
	return unlock, args.Error(1)
}

type LocationEventPublisher struct {
	mock.Mock
}

func (m *LocationEventPublisher) PublishLocationUpserted(ctx context.Context, evt outbound.LocationUpserted) error {
	return m.Called(ctx, evt).Error(0)
}

func rider(v any) *entity.Rider {
	r, _ := v.(*entity.Rider)
	return r
}

func location(v any) *entity.RiderLocation {
	l, _ := v.(*entity.RiderLocation)
	return l
}
