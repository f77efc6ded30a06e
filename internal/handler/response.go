package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/techfolio/api/internal/model"
	"github.com/techfolio/api/internal/observability"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the service error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeStoreError maps read-path failures. A missing singleton is a fatal
// configuration error; anything else is treated as the store being down.
// Neither is retried here.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	log := observability.GetLogger(r.Context())
	if errors.Is(err, model.ErrProfileNotFound) {
		log.Error("techfolio singleton missing", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "not_configured", model.ErrProfileNotFound.Error())
		return
	}
	log.Error("store error", zap.Error(err))
	writeError(w, http.StatusServiceUnavailable, "store_unavailable", "backing store unavailable")
}
