package rider

import (
	"context"
	"errors"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
)

// translate gives the two store failures callers can act on a rider specific
// message and defers everything else to the shared translator.
func translate(ctx context.Context, t *usecase.ErrorTranslator, op string, id int64, email *string, err error) error {
	var serr *outbound.StoreError
	if errors.As(err, &serr) {
		switch {
		case serr.Code == outbound.StoreUniqueViolation && serr.Field == "email" && email != nil:
			return &entity.Error{
				Kind:     entity.KindConflict,
				Messages: []string{"Email#" + *email + " already exists."},
				Err:      err,
			}
		case serr.Code == outbound.StoreNoRows && id > 0:
			return notFound(id, err)
		}
	}
	return t.Translate(ctx, op, err)
}

func notFound(id int64, cause error) *entity.Error {
	e := entity.NewNotFoundError("Rider with ID#%d not found.", id)
	e.Err = cause
	return e
}
