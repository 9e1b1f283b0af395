package rider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/port/outbound/mocks"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/pkg/logger"
)

func ptr(s string) *string { return &s }

func translator() *usecase.ErrorTranslator {
	return usecase.NewErrorTranslator(logger.NewNop())
}

func validInput() entity.RiderInput {
	return entity.RiderInput{
		FirstName:    ptr("John"),
		LastName:     ptr("Doe"),
		Email:        ptr("john@example.com"),
		LicensePlate: ptr("ABC-123"),
		PhoneNumber:  ptr("0812345678"),
	}
}

func requireDomainError(t *testing.T, err error, kind entity.Kind, messages ...string) {
	t.Helper()
	derr, ok := entity.AsError(err)
	require.True(t, ok, "expected a domain error, got %v", err)
	assert.Equal(t, kind, derr.Kind)
	assert.Equal(t, messages, derr.Messages)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	fields := entity.RiderFields{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		LicensePlate: "ABC-123",
		PhoneNumber:  "0812345678",
	}

	t.Run("Should persist a valid rider", func(t *testing.T) {
		repo := new(mocks.RiderRepository)
		want := &entity.Rider{ID: 1, FirstName: "John"}
		repo.On("Create", ctx, fields).Return(want, nil)

		got, err := NewCreateUseCase(repo, entity.RiderValidator{}, translator()).Execute(ctx, validInput())

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("Should reject invalid input without touching storage", func(t *testing.T) {
		repo := new(mocks.RiderRepository)
		in := validInput()
		in.Email = ptr("not-an-email")
		in.FirstName = nil

		_, err := NewCreateUseCase(repo, entity.RiderValidator{}, translator()).Execute(ctx, in)

		requireDomainError(t, err, entity.KindValidation,
			"firstName: First name is required", "email: Invalid email format")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should report a duplicate email", func(t *testing.T) {
		repo := new(mocks.RiderRepository)
		repo.On("Create", ctx, fields).Return(nil, &outbound.StoreError{
			Code: outbound.StoreUniqueViolation, RawCode: "23505", Field: "email",
		})

		_, err := NewCreateUseCase(repo, entity.RiderValidator{}, translator()).Execute(ctx, validInput())

		requireDomainError(t, err, entity.KindConflict, "Email#john@example.com already exists.")
	})
}

func TestList_NeverReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.RiderRepository)
	repo.On("FindAll", ctx).Return(nil, nil)

	riders, err := NewListUseCase(repo, translator()).Execute(ctx)

	require.NoError(t, err)
	assert.NotNil(t, riders)
}

func TestGet_MissingRider(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.RiderRepository)
	repo.On("FindByID", ctx, int64(4)).Return(nil, &outbound.StoreError{Code: outbound.StoreNoRows})

	_, err := NewGetUseCase(repo, translator()).Execute(ctx, 4)

	requireDomainError(t, err, entity.KindNotFound, "Rider with ID#4 not found.")
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		input    entity.RiderInput
		setup    func(repo *mocks.RiderRepository)
		kind     entity.Kind
		messages []string
	}{
		{
			name:  "Should update only the supplied fields",
			input: entity.RiderInput{LastName: ptr("Smith")},
			setup: func(repo *mocks.RiderRepository) {
				repo.On("Update", ctx, int64(1), entity.RiderPatch{LastName: ptr("Smith")}).
					Return(&entity.Rider{ID: 1, LastName: "Smith"}, nil)
			},
		},
		{
			name:  "Should read the rider back when nothing changes",
			input: entity.RiderInput{},
			setup: func(repo *mocks.RiderRepository) {
				repo.On("FindByID", ctx, int64(1)).Return(&entity.Rider{ID: 1}, nil)
			},
		},
		{
			name:  "Should report a duplicate email",
			input: entity.RiderInput{Email: ptr("taken@example.com")},
			setup: func(repo *mocks.RiderRepository) {
				repo.On("Update", ctx, int64(1), mock.Anything).Return(nil, &outbound.StoreError{
					Code: outbound.StoreUniqueViolation, Field: "email",
				})
			},
			kind:     entity.KindConflict,
			messages: []string{"Email#taken@example.com already exists."},
		},
		{
			name:  "Should report a missing rider",
			input: entity.RiderInput{FirstName: ptr("Jane")},
			setup: func(repo *mocks.RiderRepository) {
				repo.On("Update", ctx, int64(1), mock.Anything).Return(nil, &outbound.StoreError{Code: outbound.StoreNoRows})
			},
			kind:     entity.KindNotFound,
			messages: []string{"Rider with ID#1 not found."},
		},
		{
			name:     "Should reject an invalid phone number",
			input:    entity.RiderInput{PhoneNumber: ptr("12")},
			setup:    func(*mocks.RiderRepository) {},
			kind:     entity.KindValidation,
			messages: []string{"phoneNumber: Phone Number is invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.RiderRepository)
			tt.setup(repo)

			r, err := NewUpdateUseCase(repo, entity.RiderValidator{}, translator()).Execute(ctx, UpdateInput{ID: 1, Rider: tt.input})

			if tt.messages == nil {
				require.NoError(t, err)
				assert.Equal(t, int64(1), r.ID)
				repo.AssertExpectations(t)
				return
			}
			requireDomainError(t, err, tt.kind, tt.messages...)
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete an existing rider", func(t *testing.T) {
		repo := new(mocks.RiderRepository)
		repo.On("Delete", ctx, int64(2)).Return(nil)

		assert.NoError(t, NewDeleteUseCase(repo, translator()).Execute(ctx, 2))
	})

	t.Run("Should report a missing rider", func(t *testing.T) {
		repo := new(mocks.RiderRepository)
		repo.On("Delete", ctx, int64(2)).Return(&outbound.StoreError{Code: outbound.StoreNoRows})

		err := NewDeleteUseCase(repo, translator()).Execute(ctx, 2)

		requireDomainError(t, err, entity.KindNotFound, "Rider with ID#2 not found.")
	})

	t.Run("Should hide unexpected failures", func(t *testing.T) {
		repo := new(mocks.RiderRepository)
		repo.On("Delete", ctx, int64(2)).Return(errors.New("conn reset"))

		err := NewDeleteUseCase(repo, translator()).Execute(ctx, 2)

		requireDomainError(t, err, entity.KindInternal, entity.GenericInternalMessage)
	})
}
