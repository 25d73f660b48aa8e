package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all marketplace routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/marketplace", func(r chi.Router) {
		r.Get("/options", h.HandleGetOptions)
		r.Get("/partners", h.HandleGetPartners)
	})
}
