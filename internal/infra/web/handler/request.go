package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DioGolang/GoRider/internal/domain/entity"
)

const maxBodyBytes = 1 << 20

var digits = regexp.MustCompile(`^\d+$`)

// pathID reads the positive integer {id} path parameter. label names it in
// the validation message.
func pathID(r *http.Request, label string) (int64, error) {
	raw := chi.URLParam(r, "id")
	if !digits.MatchString(raw) {
		return 0, entity.NewValidationError(label + " must be an integer")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, entity.NewValidationError(label + " must be an integer")
	}
	return id, nil
}

const errTrailingData = "body must contain a single JSON object"

// bodyFields decodes a JSON object keeping each value raw, so field checks can
// tell a missing key from a value of the wrong shape. An empty body is {}.
func bodyFields(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return fields, nil
		}
		return nil, entity.NewValidationError(err.Error())
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, entity.NewValidationError(errTrailingData)
	}
	return fields, nil
}

// field returns nil for an absent key, the unquoted text of a JSON string and
// the literal text of anything else. null becomes the empty string.
func field(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	raw = bytes.TrimSpace(raw)
	var s string
	switch {
	case bytes.Equal(raw, []byte("null")):
	case len(raw) > 0 && raw[0] == '"':
		if err := json.Unmarshal(raw, &s); err != nil {
			s = string(raw)
		}
	default:
		s = string(raw)
	}
	return &s
}

func coordinatesFromBody(fields map[string]json.RawMessage) entity.CoordinatesInput {
	return entity.CoordinatesInput{
		Latitude:  field(fields, "latitude"),
		Longitude: field(fields, "longitude"),
	}
}

func coordinatesFromQuery(r *http.Request) entity.CoordinatesInput {
	q := r.URL.Query()
	get := func(key string) *string {
		if !q.Has(key) {
			return nil
		}
		v := q.Get(key)
		return &v
	}
	return entity.CoordinatesInput{Latitude: get("latitude"), Longitude: get("longitude")}
}

func riderFromBody(fields map[string]json.RawMessage) entity.RiderInput {
	return entity.RiderInput{
		FirstName:    field(fields, "firstName"),
		LastName:     field(fields, "lastName"),
		Email:        field(fields, "email"),
		LicensePlate: field(fields, "licensePlate"),
		PhoneNumber:  field(fields, "phoneNumber"),
	}
}
