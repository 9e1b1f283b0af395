package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DioGolang/GoRider/internal/application/port/outbound/mocks"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/pkg/logger"
)

func TestGet(t *testing.T) {
	ctx := context.Background()
	found := &entity.RiderLocation{ID: 3, RiderID: 9, Rider: &entity.Rider{ID: 9}}

	tests := []struct {
		name    string
		riderID int64
		repoOut *entity.RiderLocation
		wantErr string
	}{
		{"Returns the location with its rider", 9, found, ""},
		{"Missing location is NotFound", 10, nil, "Location of rider ID#10 not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.LocationRepository)
			repo.On("FindByRiderIDWithRider", ctx, tt.riderID).Return(tt.repoOut, nil)
			uc := NewGetUseCase(repo, usecase.NewErrorTranslator(logger.NewNop()))

			loc, err := uc.Execute(ctx, tt.riderID)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Same(t, found, loc)
				return
			}
			derr, ok := entity.AsError(err)
			require.True(t, ok)
			assert.Equal(t, entity.KindNotFound, derr.Kind)
			assert.Equal(t, []string{tt.wantErr}, derr.Messages)
		})
	}
}
