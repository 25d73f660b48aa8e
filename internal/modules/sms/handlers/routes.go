package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all SMS routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/sms", func(r chi.Router) {
		r.Post("/parse", h.HandleParse)
		r.Post("/analyze", h.HandleAnalyze)
		r.Get("/demo", h.HandleGetDemo)
	})
}
