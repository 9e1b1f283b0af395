package handler

import (
	"net/http"
	"strconv"

	"github.com/DioGolang/GoRider/internal/application/usecase/location"
	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/pkg/logger"
)

type Location struct {
	Upsert   location.UpsertUseCase
	Search   location.SearchUseCase
	Get      location.GetUseCase
	RadiusKm float64
	Logger   logger.Logger
}

// HandleSearch answers GET /riders/search?latitude=&longitude= with every
// rider inside the configured radius.
func (h *Location) HandleSearch(w http.ResponseWriter, r *http.Request) {
	coords, err := entity.ValidateCoordinates(coordinatesFromQuery(r))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}

	out, err := h.Search.Execute(r.Context(), location.SearchInput{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		RadiusKm:  h.RadiusKm,
	})
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}

	radius := h.RadiusKm
	if radius <= 0 {
		radius = location.DefaultRadiusKm
	}
	respond(w, http.StatusOK,
		"Fetch rider within "+strconv.FormatFloat(radius, 'f', -1, 64)+" Km. successfully.", out)
}

func (h *Location) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	riderID, err := pathID(r, "riderId")
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	fields, err := bodyFields(w, r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}

	out, err := h.Upsert.Execute(r.Context(), location.UpsertInput{
		RiderID:     riderID,
		Coordinates: coordinatesFromBody(fields),
	})
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	respond(w, http.StatusOK, "Upsert rider location successfully.", out)
}

func (h *Location) HandleGet(w http.ResponseWriter, r *http.Request) {
	riderID, err := pathID(r, "riderId")
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	out, err := h.Get.Execute(r.Context(), riderID)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	respond(w, http.StatusOK, "Fetch rider location successfully.", out)
}
