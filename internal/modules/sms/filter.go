package sms

import (
	"strings"

	"github.com/creditgo/creditgo/internal/domain"
)

// FilterBankAlerts keeps messages that look like bank or fintech transaction
// alerts: the sender is a known bank ID (or mentions "bank") or the body uses
// banking vocabulary, and the body contains something amount-like.
func FilterBankAlerts(messages []domain.RawMessage) []domain.RawMessage {
	alerts := make([]domain.RawMessage, 0, len(messages))
	for _, msg := range messages {
		if IsBankAlert(msg) {
			alerts = append(alerts, msg)
		}
	}
	return alerts
}

// IsBankAlert applies the bank alert filter to a single message
func IsBankAlert(msg domain.RawMessage) bool {
	body := strings.ToLower(msg.Body)
	sender := strings.ToLower(msg.Address)

	fromBank := containsAny(sender, bankSenders) || strings.Contains(sender, "bank")
	bankContent := containsAny(body, bankContentKeywords)

	return (fromBank || bankContent) && amountHint.MatchString(body)
}
