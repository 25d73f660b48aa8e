// Package handlers provides HTTP handlers for message parsing and analysis.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/creditgo/creditgo/internal/domain"
	"github.com/creditgo/creditgo/internal/modules/analysis"
	"github.com/creditgo/creditgo/internal/modules/sms"
)

// ParseRecorder receives parse counts; *metrics.Collector satisfies it.
type ParseRecorder interface {
	RecordParse(messages, credits, debits int)
}

// Handler handles SMS HTTP requests
type Handler struct {
	metrics ParseRecorder
	log     zerolog.Logger
}

// NewHandler creates a new SMS handler. metrics may be nil.
func NewHandler(metrics ParseRecorder, log zerolog.Logger) *Handler {
	return &Handler{
		metrics: metrics,
		log:     log.With().Str("handler", "sms").Logger(),
	}
}

// ParseRequest is the body accepted by the parse and analyze endpoints
type ParseRequest struct {
	Messages   []domain.RawMessage `json:"messages"`
	BankFilter bool                `json:"bank_filter"`
}

// HandleParse handles POST /api/sms/parse
// Returns the extracted transactions, most recent first
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	transactions := h.parse(req)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"transactions": transactions,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"messages":  len(req.Messages),
			"extracted": len(transactions),
		},
	})
}

// HandleAnalyze handles POST /api/sms/analyze
// Parses the messages and returns the aggregate analysis
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result := analysis.Analyze(h.parse(req))

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": result,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"messages":  len(req.Messages),
		},
	})
}

// HandleGetDemo handles GET /api/sms/demo
func (h *Handler) HandleGetDemo(w http.ResponseWriter, r *http.Request) {
	messages := sms.DemoMessages()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"messages": messages,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(messages),
		},
	})
}

func (h *Handler) parse(req ParseRequest) []domain.Transaction {
	var transactions []domain.Transaction
	if req.BankFilter {
		transactions = sms.ParseBankMessages(req.Messages)
	} else {
		transactions = sms.Parse(req.Messages)
	}

	if h.metrics != nil {
		credits := 0
		for _, tx := range transactions {
			if tx.Type == domain.TransactionCredit {
				credits++
			}
		}
		h.metrics.RecordParse(len(req.Messages), credits, len(transactions)-credits)
	}

	return transactions
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (ParseRequest, bool) {
	var req ParseRequest
	r.Body = http.MaxBytesReader(w, r.Body, sms.MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return req, false
		}
		h.log.Error().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if len(req.Messages) > sms.MaxMessagesPerRequest {
		h.writeError(w, http.StatusRequestEntityTooLarge, "Too many messages")
		return req, false
	}
	return req, true
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
