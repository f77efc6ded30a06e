package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/techfolio/api/internal/model"
	"github.com/techfolio/api/internal/observability"
	"github.com/techfolio/api/internal/service"
)

// ContactHandler exposes the public Get in Touch endpoint.
type ContactHandler struct{ S *service.ContactService }

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(s *service.ContactService) *ContactHandler { return &ContactHandler{s} }

// Submit accepts a guest contact-form post. The field names mirror the form
// contract exactly, including "name1".
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name1   string `json:"name1"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	id, err := h.S.Submit(r.Context(), req.Name1, req.Email, req.Phone, req.Message)
	switch {
	case errors.Is(err, model.ErrContactRequired), errors.Is(err, model.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
	case err != nil:
		observability.GetLogger(r.Context()).Error("contact submit failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", "backing store unavailable")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "success", "docname": id})
	}
}
