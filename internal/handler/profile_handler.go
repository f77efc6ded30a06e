package handler

import (
	"net/http"

	"github.com/techfolio/api/internal/service"
)

// ProfileHandler exposes the six public read projections. All routes are
// guest-accessible.
type ProfileHandler struct{ S *service.ProfileService }

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(s *service.ProfileService) *ProfileHandler { return &ProfileHandler{s} }

// Techfolio returns the profile header plus active social links.
func (h *ProfileHandler) Techfolio(w http.ResponseWriter, r *http.Request) {
	v, err := h.S.Techfolio(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Contact returns the contact card.
func (h *ProfileHandler) Contact(w http.ResponseWriter, r *http.Request) {
	v, err := h.S.Contact(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Skills returns the active skills.
func (h *ProfileHandler) Skills(w http.ResponseWriter, r *http.Request) {
	list, err := h.S.Skills(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"skills": list})
}

// Experiences returns every experience entry in stored order.
func (h *ProfileHandler) Experiences(w http.ResponseWriter, r *http.Request) {
	list, err := h.S.Experiences(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"experience": list})
}

// Services returns every service entry in stored order.
func (h *ProfileHandler) Services(w http.ResponseWriter, r *http.Request) {
	list, err := h.S.Services(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": list})
}

// SocialMedia returns the active social links under the renamed keys.
func (h *ProfileHandler) SocialMedia(w http.ResponseWriter, r *http.Request) {
	list, err := h.S.SocialMedia(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"social_media": list})
}
