// Package handlers provides HTTP handlers for the financing marketplace.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/creditgo/creditgo/internal/modules/marketplace"
)

// Handler handles marketplace HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new marketplace handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "marketplace").Logger(),
	}
}

// HandleGetOptions handles GET /api/marketplace/options
// Query parameters: category, q, affordable_only, safe_amount
func (h *Handler) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := marketplace.Filter{
		Category: marketplace.Category(query.Get("category")),
		Query:    query.Get("q"),
	}
	if filter.Category == "all" {
		filter.Category = ""
	}
	if filter.Category != "" && !marketplace.ValidCategory(filter.Category) {
		h.writeError(w, http.StatusBadRequest, "Unknown category")
		return
	}

	if raw := query.Get("affordable_only"); raw != "" {
		affordableOnly, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "affordable_only must be a boolean")
			return
		}
		filter.AffordableOnly = affordableOnly
	}

	safeAmount := 0.0
	if raw := query.Get("safe_amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			h.writeError(w, http.StatusBadRequest, "safe_amount must be a non-negative number")
			return
		}
		safeAmount = parsed
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": marketplace.Recommend(filter, safeAmount),
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetPartners handles GET /api/marketplace/partners
func (h *Handler) HandleGetPartners(w http.ResponseWriter, r *http.Request) {
	partners := marketplace.Partners()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"partners":   partners,
			"categories": marketplace.Categories(),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(partners),
		},
	})
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
