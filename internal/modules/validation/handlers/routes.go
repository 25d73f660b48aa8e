package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all validation routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/validation", func(r chi.Router) {
		r.Post("/nin", h.HandleValidateNIN)
		r.Post("/email", h.HandleValidateEmail)
		r.Post("/corporate-email", h.HandleValidateCorporateEmail)
		r.Post("/freelance-link", h.HandleValidateFreelanceLink)
	})
}
