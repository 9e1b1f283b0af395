package usecase

import (
	"context"
	"errors"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/pkg/logger"
)

// ErrorTranslator maps repository failures onto the domain taxonomy.
type ErrorTranslator struct {
	Logger logger.Logger
}

func NewErrorTranslator(log logger.Logger) *ErrorTranslator {
	return &ErrorTranslator{Logger: log}
}

// Translate returns nil for nil, passes *entity.Error through untouched and
// converts everything else. op names the failing operation in logs.
func (t *ErrorTranslator) Translate(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if derr, ok := entity.AsError(err); ok {
		return derr
	}

	var serr *outbound.StoreError
	if !errors.As(err, &serr) {
		t.Logger.Error(ctx, "Unexpected failure",
			logger.String("op", op),
			logger.WithError(err),
		)
		return entity.NewInternalError(err)
	}

	switch serr.Code {
	case outbound.StoreUniqueViolation:
		return &entity.Error{
			Kind:     entity.KindConflict,
			Messages: []string{"A record with this " + fieldOr(serr.Field, "field") + " already exists."},
			Err:      err,
		}
	case outbound.StoreForeignKeyViolation:
		return &entity.Error{
			Kind:     entity.KindInvalidReference,
			Messages: []string{"Foreign key constraint failed on " + fieldOr(serr.Field, "the field") + "."},
			Err:      err,
		}
	case outbound.StoreInvalidValue:
		return &entity.Error{
			Kind:     entity.KindMalformed,
			Messages: []string{"Invalid data format."},
			Err:      err,
		}
	case outbound.StoreNoRows:
		return &entity.Error{
			Kind:     entity.KindNotFound,
			Messages: []string{"Record not found."},
			Err:      err,
		}
	case outbound.StoreUnknown:
		t.Logger.Error(ctx, "Unmapped store failure",
			logger.String("op", op),
			logger.String("raw_code", serr.RawCode),
			logger.String("detail", serr.Message),
			logger.WithError(err),
		)
		return entity.NewInternalError(err)
	default:
		t.Logger.Error(ctx, "Unknown store code",
			logger.String("op", op),
			logger.Int("code", int(serr.Code)),
			logger.String("raw_code", serr.RawCode),
			logger.WithError(err),
		)
		return entity.NewInternalError(err)
	}
}

func fieldOr(field, fallback string) string {
	if field == "" {
		return fallback
	}
	return field
}
