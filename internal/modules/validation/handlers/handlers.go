// Package handlers provides HTTP handlers for the onboarding validators.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/creditgo/creditgo/internal/modules/validation"
)

// Handler handles validation HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new validation handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "validation").Logger(),
	}
}

// NINResponse is returned by POST /api/validation/nin
type NINResponse struct {
	Formatted string `json:"formatted"`
	IsValid   bool   `json:"is_valid"`
}

// EmailResponse is returned by POST /api/validation/email
type EmailResponse struct {
	validation.EmailValidation
	IsFreeProvider bool `json:"is_free_provider"`
}

// HandleValidateNIN handles POST /api/validation/nin
func (h *Handler) HandleValidateNIN(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NIN string `json:"nin"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	h.writeJSON(w, http.StatusOK, NINResponse{
		IsValid:   validation.ValidateNIN(req.NIN),
		Formatted: validation.FormatNIN(req.NIN),
	})
}

// HandleValidateEmail handles POST /api/validation/email
func (h *Handler) HandleValidateEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	result := validation.ValidateEmailFormat(req.Email)
	h.writeJSON(w, http.StatusOK, EmailResponse{
		EmailValidation: result,
		IsFreeProvider:  result.IsValid && validation.IsFreeEmailProvider(req.Email),
	})
}

// HandleValidateCorporateEmail handles POST /api/validation/corporate-email
func (h *Handler) HandleValidateCorporateEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	h.writeJSON(w, http.StatusOK, validation.ValidateCorporateEmail(req.Email))
}

// HandleValidateFreelanceLink handles POST /api/validation/freelance-link
func (h *Handler) HandleValidateFreelanceLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if !h.decode(w, r, &req) {
		return
	}

	h.writeJSON(w, http.StatusOK, validation.ValidateFreelanceLink(req.URL))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.log.Debug().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
