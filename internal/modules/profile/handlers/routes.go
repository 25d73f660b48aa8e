package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all profile routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Post("/build", h.HandleBuild)
		r.Post("/compute", h.HandleCompute)

		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				h.HandleGet(w, r, chi.URLParam(r, "userID"))
			})
			recompute := func(w http.ResponseWriter, r *http.Request) {
				h.HandleRecompute(w, r, chi.URLParam(r, "userID"))
			}
			r.Post("/", recompute)
			r.Put("/", recompute)
			r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
				h.HandleDelete(w, r, chi.URLParam(r, "userID"))
			})
		})
	})
}
