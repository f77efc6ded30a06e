package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/techfolio/api/internal/config"
	"github.com/techfolio/api/internal/middleware"
	"github.com/techfolio/api/internal/observability"
	"github.com/techfolio/api/internal/service"
)

// NewRouter builds the HTTP router with all public techfolio routes.
func NewRouter(cfg *config.Config, p *service.ProfileService, c *service.ContactService, db *sql.DB) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RealIP)
	r.Use(chimw.Timeout(15 * time.Second))
	r.Use(middleware.Recovery())
	r.Use(observability.MetricsMiddleware(cfg.ServiceName))

	ph := NewProfileHandler(p)
	ch := NewContactHandler(c)

	// Read routes — all guest-accessible, no auth by contract.
	path := "/api/v1"
	r.Get(path+"/techfolio", ph.Techfolio)
	r.Get(path+"/contact", ph.Contact)
	r.Get(path+"/skills", ph.Skills)
	r.Get(path+"/experiences", ph.Experiences)
	r.Get(path+"/services", ph.Services)
	r.Get(path+"/social_media", ph.SocialMedia)

	// Write route — unauthenticated by contract, rate limited by IP instead.
	r.With(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)).
		Post(path+"/submit_get_in_touch", ch.Submit)

	// Health
	healthPath := "/health"
	r.Get(healthPath, Health())
	r.Get(healthPath+"/ready", Ready(db))

	return otelhttp.NewHandler(r, cfg.ServiceName)
}
