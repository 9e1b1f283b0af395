package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DioGolang/GoRider/internal/application/usecase/location"
	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/internal/infra/web/handler"
	"github.com/DioGolang/GoRider/pkg/logger"
	"github.com/DioGolang/GoRider/pkg/metrics"
)

type upsertMock struct{ mock.Mock }

func (m *upsertMock) Execute(ctx context.Context, in location.UpsertInput) (*entity.RiderLocation, error) {
	args := m.Called(ctx, in)
	loc, _ := args.Get(0).(*entity.RiderLocation)
	return loc, args.Error(1)
}

type searchMock struct{ mock.Mock }

func (m *searchMock) Execute(ctx context.Context, in location.SearchInput) ([]entity.RiderLocation, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).([]entity.RiderLocation)
	return out, args.Error(1)
}

type getLocationMock struct{ mock.Mock }

func (m *getLocationMock) Execute(ctx context.Context, riderID int64) (*entity.RiderLocation, error) {
	args := m.Called(ctx, riderID)
	loc, _ := args.Get(0).(*entity.RiderLocation)
	return loc, args.Error(1)
}

type createRiderMock struct{ mock.Mock }

func (m *createRiderMock) Execute(ctx context.Context, in entity.RiderInput) (*entity.Rider, error) {
	args := m.Called(ctx, in)
	r, _ := args.Get(0).(*entity.Rider)
	return r, args.Error(1)
}

type deleteRiderMock struct{ mock.Mock }

func (m *deleteRiderMock) Execute(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type testServer struct {
	upsert  *upsertMock
	search  *searchMock
	get     *getLocationMock
	create  *createRiderMock
	delete  *deleteRiderMock
	logs    *observer.ObservedLogs
	handler http.Handler
}

func newTestServer() *testServer {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))
	s := &testServer{
		upsert: new(upsertMock),
		search: new(searchMock),
		get:    new(getLocationMock),
		create: new(createRiderMock),
		delete: new(deleteRiderMock),
		logs:   logs,
	}
	rt := &Router{
		Config: RouterConfig{ServiceName: "gorider-test"},
		Riders: &handler.Rider{
			Create: s.create,
			Delete: s.delete,
			Logger: log,
		},
		Locations: &handler.Location{
			Upsert:   s.upsert,
			Search:   s.search,
			Get:      s.get,
			RadiusKm: 5,
			Logger:   log,
		},
		Recorder: metrics.Nop{},
		Logger:   log,
	}
	s.handler = rt.Handler()
	return s
}

func (s *testServer) do(t *testing.T, method, target, body string) (int, handler.Response) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, rec.Code, resp.StatusCode)
	return rec.Code, resp
}

func ptr(s string) *string { return &s }

func TestSearch(t *testing.T) {
	t.Run("Should search with the configured radius", func(t *testing.T) {
		s := newTestServer()
		s.search.On("Execute", mock.Anything, location.SearchInput{Latitude: 13.75, Longitude: 100.5, RadiusKm: 5}).
			Return([]entity.RiderLocation{{ID: 1, RiderID: 7}}, nil)

		code, resp := s.do(t, http.MethodGet, "/riders/search?latitude=13.75&longitude=100.5", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"Fetch rider within 5 Km. successfully."}, resp.Message)
		assert.Len(t, resp.Data, 1)
	})

	t.Run("Should report every invalid query parameter", func(t *testing.T) {
		s := newTestServer()

		code, resp := s.do(t, http.MethodGet, "/riders/search?latitude=95", "")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Bad Request", resp.Error)
		assert.Equal(t, []string{
			"latitude: Latitude must be between -90 and 90.",
			"longitude: Longitude is required.",
		}, resp.Message)
		s.search.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("Should return an empty list, not null", func(t *testing.T) {
		s := newTestServer()
		s.search.On("Execute", mock.Anything, mock.Anything).Return([]entity.RiderLocation{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/riders/search?latitude=0&longitude=0", nil)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)

		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})
}

func TestUpsertLocation(t *testing.T) {
	t.Run("Should pass numbers and numeric strings through as raw text", func(t *testing.T) {
		s := newTestServer()
		want := location.UpsertInput{
			RiderID:     7,
			Coordinates: entity.CoordinatesInput{Latitude: ptr("-20.1923"), Longitude: ptr("150.775565")},
		}
		s.upsert.On("Execute", mock.Anything, want).
			Return(&entity.RiderLocation{ID: 1, RiderID: 7, Latitude: -20.1923, Longitude: 150.775565}, nil)

		code, resp := s.do(t, http.MethodPost, "/riders/7/locations", `{"latitude": -20.1923, "longitude": "150.775565"}`)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"Upsert rider location successfully."}, resp.Message)
	})

	t.Run("Should allow trailing whitespace after the object", func(t *testing.T) {
		s := newTestServer()
		want := location.UpsertInput{
			RiderID:     7,
			Coordinates: entity.CoordinatesInput{Latitude: ptr("1"), Longitude: ptr("2")},
		}
		s.upsert.On("Execute", mock.Anything, want).Return(&entity.RiderLocation{ID: 1, RiderID: 7, Latitude: 1, Longitude: 2}, nil)

		code, _ := s.do(t, http.MethodPost, "/riders/7/locations", "{\"latitude\":1,\"longitude\":2}\n\t ")

		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("Should treat an empty body as no fields", func(t *testing.T) {
		s := newTestServer()
		s.upsert.On("Execute", mock.Anything, location.UpsertInput{RiderID: 7}).
			Return(nil, entity.NewValidationError("latitude: Latitude is required.", "longitude: Longitude is required."))

		code, resp := s.do(t, http.MethodPost, "/riders/7/locations", "")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Len(t, resp.Message, 2)
	})

	tests := []struct {
		name    string
		target  string
		body    string
		err     error
		code    int
		message string
	}{
		{"Non numeric rider id", "/riders/abc/locations", `{}`, nil, http.StatusBadRequest, "riderId must be an integer"},
		{"Malformed JSON", "/riders/7/locations", `{"latitude":`, nil, http.StatusBadRequest, "unexpected EOF"},
		{"Trailing garbage", "/riders/7/locations", `{"latitude":1} garbage`, nil, http.StatusBadRequest, "body must contain a single JSON object"},
		{"Second JSON value", "/riders/7/locations", `{"latitude":1}{"longitude":2}`, nil, http.StatusBadRequest, "body must contain a single JSON object"},
		{"Unknown rider", "/riders/7/locations", `{"latitude":1,"longitude":2}`, entity.NewNotFoundError("Rider with ID#%d not found.", 7), http.StatusNotFound, "Rider with ID#7 not found."},
		{"Duplicate location", "/riders/7/locations", `{"latitude":1,"longitude":2}`, entity.NewConflictError("A record with this riderId already exists."), http.StatusConflict, "A record with this riderId already exists."},
		{"Unexpected failure", "/riders/7/locations", `{"latitude":1,"longitude":2}`, errors.New("pq: connection refused"), http.StatusInternalServerError, entity.GenericInternalMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			if tt.err != nil {
				s.upsert.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			code, resp := s.do(t, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.code, code)
			assert.Equal(t, http.StatusText(tt.code), resp.Error)
			require.Len(t, resp.Message, 1)
			assert.Equal(t, tt.message, resp.Message[0])
			assert.Nil(t, resp.Data)
		})
	}
}

func TestInternalErrorsAreLoggedNotLeaked(t *testing.T) {
	s := newTestServer()
	s.get.On("Execute", mock.Anything, int64(3)).Return(nil, errors.New("pq: password authentication failed"))

	code, resp := s.do(t, http.MethodGet, "/riders/3/locations", "")

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, []string{entity.GenericInternalMessage}, resp.Message)
	failures := s.logs.FilterMessage("Request failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Contains(t, failures[0].ContextMap()["error"], "password authentication failed")
}

func TestRiderEndpoints(t *testing.T) {
	t.Run("Should create a rider", func(t *testing.T) {
		s := newTestServer()
		in := entity.RiderInput{
			FirstName:    ptr("John"),
			LastName:     ptr("Doe"),
			Email:        ptr("john@example.com"),
			LicensePlate: ptr("ABC-123"),
			PhoneNumber:  ptr("0812345678"),
		}
		s.create.On("Execute", mock.Anything, in).Return(&entity.Rider{ID: 1}, nil)

		code, resp := s.do(t, http.MethodPost, "/riders",
			`{"firstName":"John","lastName":"Doe","email":"john@example.com","licensePlate":"ABC-123","phoneNumber":"0812345678"}`)

		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, []string{"Create rider successfully."}, resp.Message)
	})

	t.Run("Should delete a rider without data", func(t *testing.T) {
		s := newTestServer()
		s.delete.On("Execute", mock.Anything, int64(2)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/riders/2", nil)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"statusCode":200,"message":["Delete rider ID#2 successfully."]}`, rec.Body.String())
	})

	t.Run("Should reject a non numeric id", func(t *testing.T) {
		s := newTestServer()

		code, resp := s.do(t, http.MethodDelete, "/riders/-1", "")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, []string{"id must be an integer"}, resp.Message)
	})
}
