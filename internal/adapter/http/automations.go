package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"kwai-ads/internal/core/port"
)

const maxRequestBody = 1 << 20

// handleListAutomations returns the caller's rules on linked accounts.
func (h *Handler) handleListAutomations(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	rules, err := h.svc.List(r.Context(), p.UserID)
	if err != nil {
		h.respondError(w, "list automations", err)
		return
	}
	if err = writeJSON(w, http.StatusOK, rules); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleCreateAutomation decodes a port.CreateAutomation body and stores the
// rule. Malformed JSON and invalid rules result in HTTP 400; the stored rule
// is returned with HTTP 201.
func (h *Handler) handleCreateAutomation(w http.ResponseWriter, r *http.Request) {
	var in port.CreateAutomation
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	p, _ := PrincipalFrom(r.Context())
	rule, err := h.svc.Create(r.Context(), p.UserID, in)
	if err != nil {
		h.respondError(w, "create automation", err)
		return
	}
	if err = writeJSON(w, http.StatusCreated, rule); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleDeleteAutomation removes the rule bound to the {id} path parameter.
// Rules of other users are reported as missing.
func (h *Handler) handleDeleteAutomation(w http.ResponseWriter, r *http.Request) {
	id, ok := automationID(w, r)
	if !ok {
		return
	}
	p, _ := PrincipalFrom(r.Context())
	if err := h.svc.Delete(r.Context(), p.UserID, id); err != nil {
		h.respondError(w, "delete automation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListExecutions returns the execution log of a rule. It accepts an
// optional `limit` query parameter.
func (h *Handler) handleListExecutions(w http.ResponseWriter, r *http.Request) {
	id, ok := automationID(w, r)
	if !ok {
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	p, _ := PrincipalFrom(r.Context())
	execs, err := h.svc.Executions(r.Context(), p.UserID, id, limit)
	if err != nil {
		h.respondError(w, "list executions", err)
		return
	}
	if err = writeJSON(w, http.StatusOK, execs); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleRunPass runs one pass synchronously and returns its report.
func (h *Handler) handleRunPass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.passTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.passTimeout)
		defer cancel()
	}
	report, err := h.svc.RunPass(ctx)
	if err != nil {
		h.respondError(w, "run pass", err)
		return
	}
	if err = writeJSON(w, http.StatusOK, report); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func automationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid automation id")
		return uuid.Nil, false
	}
	return id, true
}
