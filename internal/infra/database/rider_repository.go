package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/DioGolang/GoRider/internal/domain/entity"
)

const riderColumns = `id, first_name, last_name, email, license_plate, phone_number, created_at, updated_at`

type RiderRepositoryImpl struct {
	db *sqlx.DB
}

func NewRiderRepository(db *sqlx.DB) *RiderRepositoryImpl {
	return &RiderRepositoryImpl{db: db}
}

func (r *RiderRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM riders WHERE id = $1)`, id)
	if err != nil {
		return false, storeError(err)
	}
	return exists, nil
}

func (r *RiderRepositoryImpl) Create(ctx context.Context, f entity.RiderFields) (*entity.Rider, error) {
	var rider entity.Rider
	err := r.db.GetContext(ctx, &rider, `
		INSERT INTO riders (first_name, last_name, email, license_plate, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+riderColumns,
		f.FirstName, f.LastName, f.Email, f.LicensePlate, f.PhoneNumber,
	)
	if err != nil {
		return nil, storeError(err)
	}
	return &rider, nil
}

func (r *RiderRepositoryImpl) FindAll(ctx context.Context) ([]entity.Rider, error) {
	riders := []entity.Rider{}
	if err := r.db.SelectContext(ctx, &riders, `SELECT `+riderColumns+` FROM riders ORDER BY id`); err != nil {
		return nil, storeError(err)
	}
	return riders, nil
}

func (r *RiderRepositoryImpl) FindByID(ctx context.Context, id int64) (*entity.Rider, error) {
	var rider entity.Rider
	if err := r.db.GetContext(ctx, &rider, `SELECT `+riderColumns+` FROM riders WHERE id = $1`, id); err != nil {
		return nil, storeError(err)
	}
	return &rider, nil
}

// Update leaves columns whose patch field is nil untouched.
func (r *RiderRepositoryImpl) Update(ctx context.Context, id int64, p entity.RiderPatch) (*entity.Rider, error) {
	var rider entity.Rider
	err := r.db.GetContext(ctx, &rider, `
		UPDATE riders SET
			first_name    = COALESCE($2, first_name),
			last_name     = COALESCE($3, last_name),
			email         = COALESCE($4, email),
			license_plate = COALESCE($5, license_plate),
			phone_number  = COALESCE($6, phone_number),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING `+riderColumns,
		id, p.FirstName, p.LastName, p.Email, p.LicensePlate, p.PhoneNumber,
	)
	if err != nil {
		return nil, storeError(err)
	}
	return &rider, nil
}

func (r *RiderRepositoryImpl) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.db.GetContext(ctx, &deleted, `DELETE FROM riders WHERE id = $1 RETURNING id`, id)
	return storeError(err)
}
