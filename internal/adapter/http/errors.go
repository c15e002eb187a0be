package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"kwai-ads/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, errorResponse{Error: msg})
}

// respondError maps use case errors to status codes. Unexpected errors are
// logged and hidden behind a generic message.
func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		_ = writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, domain.ErrAccountNotLinked):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrPassInProgress):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
