package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
)

// constraintFields maps constraint names from the migrations to wire field names.
var constraintFields = map[string]string{
	"riders_email_key":              "email",
	"rider_locations_rider_id_key":  "riderId",
	"rider_locations_rider_id_fkey": "riderId",
}

// storeError converts a driver failure into the port's StoreError.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &outbound.StoreError{Code: outbound.StoreNoRows, Message: err.Error(), Err: err}
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return &outbound.StoreError{Code: outbound.StoreUnknown, Message: err.Error(), Err: err}
	}

	serr := &outbound.StoreError{
		Code:    outbound.StoreUnknown,
		RawCode: string(pqErr.Code),
		Field:   constraintFields[pqErr.Constraint],
		Message: pqErr.Message,
		Err:     err,
	}
	switch pqErr.Code.Name() {
	case "unique_violation":
		serr.Code = outbound.StoreUniqueViolation
	case "foreign_key_violation":
		serr.Code = outbound.StoreForeignKeyViolation
	case "invalid_text_representation", "numeric_value_out_of_range",
		"not_null_violation", "string_data_right_truncation", "check_violation":
		serr.Code = outbound.StoreInvalidValue
		if serr.Field == "" {
			serr.Field = pqErr.Column
		}
	}
	return serr
}
