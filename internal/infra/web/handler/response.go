package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/pkg/logger"
)

// Response is the envelope of every JSON reply.
type Response struct {
	StatusCode int      `json:"statusCode"`
	Message    []string `json:"message"`
	Error      string   `json:"error,omitempty"`
	Data       any      `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respond(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{StatusCode: status, Message: []string{message}, Data: data})
}

func statusFor(kind entity.Kind) int {
	switch kind {
	case entity.KindValidation, entity.KindMalformed, entity.KindInvalidReference:
		return http.StatusBadRequest
	case entity.KindNotFound:
		return http.StatusNotFound
	case entity.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an envelope. Anything outside the domain
// taxonomy becomes a 500 with the generic message and is logged in full.
func respondError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	derr, ok := entity.AsError(err)
	if !ok {
		derr = entity.NewInternalError(err)
	}

	status := statusFor(derr.Kind)
	if status == http.StatusInternalServerError {
		log.Error(r.Context(), "Request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.WithError(err),
		)
	}

	writeJSON(w, status, Response{
		StatusCode: status,
		Message:    derr.Messages,
		Error:      http.StatusText(status),
	})
}
