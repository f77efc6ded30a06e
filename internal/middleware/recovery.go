package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/techfolio/api/internal/observability"
)

// Recovery converts panics into a JSON 500 instead of tearing down the
// connection.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					observability.GetLogger(r.Context()).Error("panic_recovered",
						zap.Any("error", rec),
						zap.String("path", r.URL.Path),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error":   "internal_error",
						"message": "internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
