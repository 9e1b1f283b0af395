package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DioGolang/GoRider/internal/domain/entity"
)

const locationColumns = `id, rider_id, latitude, longitude, created_at, updated_at`

// locationRiderRow is one row of rider_locations joined with its rider.
type locationRiderRow struct {
	entity.RiderLocation
	RiderFirstName    string    `db:"r_first_name"`
	RiderLastName     string    `db:"r_last_name"`
	RiderEmail        string    `db:"r_email"`
	RiderLicensePlate string    `db:"r_license_plate"`
	RiderPhoneNumber  string    `db:"r_phone_number"`
	RiderCreatedAt    time.Time `db:"r_created_at"`
	RiderUpdatedAt    time.Time `db:"r_updated_at"`
}

func (row locationRiderRow) toEntity() entity.RiderLocation {
	loc := row.RiderLocation
	loc.Rider = &entity.Rider{
		ID:           loc.RiderID,
		FirstName:    row.RiderFirstName,
		LastName:     row.RiderLastName,
		Email:        row.RiderEmail,
		LicensePlate: row.RiderLicensePlate,
		PhoneNumber:  row.RiderPhoneNumber,
		CreatedAt:    row.RiderCreatedAt,
		UpdatedAt:    row.RiderUpdatedAt,
	}
	return loc
}

const selectLocationWithRider = `
	SELECT l.id, l.rider_id, l.latitude, l.longitude, l.created_at, l.updated_at,
		r.first_name AS r_first_name, r.last_name AS r_last_name, r.email AS r_email,
		r.license_plate AS r_license_plate, r.phone_number AS r_phone_number,
		r.created_at AS r_created_at, r.updated_at AS r_updated_at
	FROM rider_locations l
	JOIN riders r ON r.id = l.rider_id`

type LocationRepositoryImpl struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) *LocationRepositoryImpl {
	return &LocationRepositoryImpl{db: db}
}

func (r *LocationRepositoryImpl) FindByRiderID(ctx context.Context, riderID int64) (*entity.RiderLocation, error) {
	var loc entity.RiderLocation
	err := r.db.GetContext(ctx, &loc, `SELECT `+locationColumns+` FROM rider_locations WHERE rider_id = $1`, riderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err)
	}
	return &loc, nil
}

func (r *LocationRepositoryImpl) FindByRiderIDWithRider(ctx context.Context, riderID int64) (*entity.RiderLocation, error) {
	var row locationRiderRow
	err := r.db.GetContext(ctx, &row, selectLocationWithRider+` WHERE l.rider_id = $1`, riderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err)
	}
	loc := row.toEntity()
	return &loc, nil
}

func (r *LocationRepositoryImpl) Create(ctx context.Context, riderID int64, c entity.Coordinates) (*entity.RiderLocation, error) {
	var loc entity.RiderLocation
	err := r.db.GetContext(ctx, &loc, `
		INSERT INTO rider_locations (rider_id, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING `+locationColumns,
		riderID, c.Latitude, c.Longitude,
	)
	if err != nil {
		return nil, storeError(err)
	}
	return &loc, nil
}

// Update writes the patched coordinates only; a nil field keeps its stored value.
func (r *LocationRepositoryImpl) Update(ctx context.Context, riderID int64, p entity.CoordinatesPatch) (*entity.RiderLocation, error) {
	var loc entity.RiderLocation
	err := r.db.GetContext(ctx, &loc, `
		UPDATE rider_locations SET
			latitude   = COALESCE($2, latitude),
			longitude  = COALESCE($3, longitude),
			updated_at = NOW()
		WHERE rider_id = $1
		RETURNING `+locationColumns,
		riderID, p.Latitude, p.Longitude,
	)
	if err != nil {
		return nil, storeError(err)
	}
	return &loc, nil
}

func (r *LocationRepositoryImpl) ListWithRider(ctx context.Context) ([]entity.RiderLocation, error) {
	var rows []locationRiderRow
	if err := r.db.SelectContext(ctx, &rows, selectLocationWithRider+` ORDER BY l.id`); err != nil {
		return nil, storeError(err)
	}
	out := make([]entity.RiderLocation, len(rows))
	for i, row := range rows {
		out[i] = row.toEntity()
	}
	return out, nil
}
