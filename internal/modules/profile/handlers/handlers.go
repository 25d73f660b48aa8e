// Package handlers provides HTTP handlers for financial profile operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/creditgo/creditgo/internal/modules/credit"
	"github.com/creditgo/creditgo/internal/modules/profile"
	"github.com/creditgo/creditgo/internal/modules/sms"
)

// Handler handles profile HTTP requests
type Handler struct {
	service *profile.Service
	builder *profile.Builder
	log     zerolog.Logger
}

// NewHandler creates a new profile handler
func NewHandler(service *profile.Service, builder *profile.Builder, log zerolog.Logger) *Handler {
	if builder == nil {
		builder = profile.NewBuilder(nil)
	}
	return &Handler{
		service: service,
		builder: builder,
		log:     log.With().Str("handler", "profile").Logger(),
	}
}

// HandleBuild handles POST /api/profile/build
// Builds a profile from already-analyzed inputs without storing anything
func (h *Handler) HandleBuild(w http.ResponseWriter, r *http.Request) {
	var in profile.BuildInput
	if !h.decodeJSON(w, r, &in) {
		return
	}
	if in.MonthlyIncome < 0 {
		h.writeError(w, http.StatusBadRequest, "monthly_income must not be negative")
		return
	}

	p := h.builder.Build(in)

	h.writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
		"profile": p,
		"tier":    credit.GetCreditTier(p.CreditScore),
	}))
}

// HandleCompute handles POST /api/profile/compute
// Runs parse, analyze and build for the posted user and messages
func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, envelope(h.service.Compute(req)))
}

// HandleRecompute handles POST and PUT /api/profile/{userID}
// Recomputes the profile and replaces the stored state
func (h *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request, userID string) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	state, result, err := h.service.Recompute(userID, req)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to recompute profile")
		h.writeError(w, http.StatusInternalServerError, "Failed to store profile")
		return
	}

	h.writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
		"state": state,
		"tier":  result.Tier,
	}))
}

// HandleGet handles GET /api/profile/{userID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request, userID string) {
	state, err := h.service.Get(userID)
	if errors.Is(err, profile.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		h.writeError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	var tier *credit.CreditTier
	if state.FinancialProfile != nil {
		t := credit.GetCreditTier(state.FinancialProfile.CreditScore)
		tier = &t
	}

	h.writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
		"state": state,
		"tier":  tier,
	}))
}

// HandleDelete handles DELETE /api/profile/{userID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request, userID string) {
	if err := h.service.Delete(userID); err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to delete profile")
		h.writeError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (profile.Request, bool) {
	var req profile.Request
	if !h.decodeJSON(w, r, &req) {
		return req, false
	}
	if len(req.Messages) > sms.MaxMessagesPerRequest {
		h.writeError(w, http.StatusRequestEntityTooLarge, "Too many messages")
		return req, false
	}
	if req.User.MonthlyIncome < 0 {
		h.writeError(w, http.StatusBadRequest, "monthly_income must not be negative")
		return req, false
	}
	if req.User.MonthlyExpenses != nil && *req.User.MonthlyExpenses < 0 {
		h.writeError(w, http.StatusBadRequest, "monthly_expenses must not be negative")
		return req, false
	}
	return req, true
}

// decodeJSON reads a size-limited JSON body into v and writes the error response on failure
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, sms.MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		h.log.Error().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func envelope(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
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
