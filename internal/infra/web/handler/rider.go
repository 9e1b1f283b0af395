package handler

import (
	"fmt"
	"net/http"

	"github.com/DioGolang/GoRider/internal/application/usecase/rider"
	"github.com/DioGolang/GoRider/pkg/logger"
)

type Rider struct {
	Create rider.CreateUseCase
	List   rider.ListUseCase
	Get    rider.GetUseCase
	Update rider.UpdateUseCase
	Delete rider.DeleteUseCase
	Logger logger.Logger
}

func (h *Rider) HandleCreate(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(w, r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	out, err := h.Create.Execute(r.Context(), riderFromBody(fields))
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	respond(w, http.StatusCreated, "Create rider successfully.", out)
}

func (h *Rider) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.List.Execute(r.Context())
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	respond(w, http.StatusOK, "Fetch all rider successfully.", out)
}

func (h *Rider) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	out, err := h.Get.Execute(r.Context(), id)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	respond(w, http.StatusOK, fmt.Sprintf("Fetch rider ID#%d successfully.", id), out)
}

func (h *Rider) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	fields, err := bodyFields(w, r)
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	out, err := h.Update.Execute(r.Context(), rider.UpdateInput{ID: id, Rider: riderFromBody(fields)})
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	respond(w, http.StatusOK, fmt.Sprintf("Update rider ID#%d successfully.", id), out)
}

func (h *Rider) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	if err := h.Delete.Execute(r.Context(), id); err != nil {
		respondError(w, r, h.Logger, err)
		return
	}
	respond(w, http.StatusOK, fmt.Sprintf("Delete rider ID#%d successfully.", id), nil)
}
