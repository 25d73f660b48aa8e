// Package sms turns bank alert text messages into typed transactions.
//
// Parsing never fails: messages that cannot be classified, or that carry no
// usable amount, are dropped silently.
package sms

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/creditgo/creditgo/internal/domain"
)

// ruleSet bundles the patterns used by one parser variant
type ruleSet struct {
	amountPatterns    []*regexp.Regexp
	refPatterns       []*regexp.Regexp
	sourceRules       []sourceRule
	maxDescriptionLen int // 0 = unlimited
	idFor             func(msg domain.RawMessage) string
}

var baseRuleSet = ruleSet{
	amountPatterns: baseAmountPatterns,
	refPatterns:    baseRefPatterns,
	sourceRules:    baseSourceRules,
	idFor: func(domain.RawMessage) string {
		return "txn_" + uuid.NewString()
	},
}

var bankRuleSet = ruleSet{
	amountPatterns:    bankAmountPatterns,
	refPatterns:       bankRefPatterns,
	sourceRules:       bankSourceRules,
	maxDescriptionLen: maxBankDescriptionLen,
	idFor: func(msg domain.RawMessage) string {
		if msg.ID != "" {
			return "sms_" + msg.ID
		}
		return "sms_" + uuid.NewString()
	},
}

// Parse converts raw messages into transactions, most recent first.
func Parse(messages []domain.RawMessage) []domain.Transaction {
	return parseWith(messages, baseRuleSet)
}

// ParseBankMessages is the device-store variant: messages must first pass
// FilterBankAlerts, then the extended amount, reference and source rules apply.
func ParseBankMessages(messages []domain.RawMessage) []domain.Transaction {
	return parseWith(FilterBankAlerts(messages), bankRuleSet)
}

func parseWith(messages []domain.RawMessage, rules ruleSet) []domain.Transaction {
	transactions := make([]domain.Transaction, 0, len(messages))
	for _, msg := range messages {
		if tx, ok := parseMessage(msg, rules); ok {
			transactions = append(transactions, tx)
		}
	}

	// Equal timestamps keep their input order
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	return transactions
}

func parseMessage(msg domain.RawMessage, rules ruleSet) (domain.Transaction, bool) {
	body := strings.ToLower(msg.Body)

	txType, ok := Classify(body)
	if !ok {
		return domain.Transaction{}, false
	}

	amount, ok := extractAmount(msg.Body, rules.amountPatterns)
	if !ok {
		return domain.Transaction{}, false
	}

	return domain.Transaction{
		ID:          rules.idFor(msg),
		Type:        txType,
		Amount:      amount,
		Description: extractDescription(msg.Body, rules),
		Date:        msg.Date,
		Source:      detectSource(body, rules.sourceRules),
	}, true
}

// Classify reports whether a lowercased body reads as a credit or a debit.
// Credit keywords take precedence when both sets match.
func Classify(lowerBody string) (domain.TransactionType, bool) {
	if containsAny(lowerBody, creditKeywords) {
		return domain.TransactionCredit, true
	}
	if containsAny(lowerBody, debitKeywords) {
		return domain.TransactionDebit, true
	}
	return "", false
}

// extractAmount uses the first pattern that matches. A match whose numeral is
// not a positive number discards the message rather than trying later patterns.
func extractAmount(body string, patterns []*regexp.Regexp) (float64, bool) {
	for _, p := range patterns {
		numeral, ok := firstGroup(p, body)
		if !ok {
			continue
		}
		return ParseAmount(numeral)
	}
	return 0, false
}

// ParseAmount parses a numeral such as "300,000.00". Commas are thousands
// separators; a trailing sentence dot is ignored.
func ParseAmount(numeral string) (float64, bool) {
	cleaned := strings.TrimSuffix(strings.ReplaceAll(numeral, ",", ""), ".")
	if cleaned == "" {
		return 0, false
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || !amount.IsPositive() {
		return 0, false
	}

	return amount.InexactFloat64(), true
}

func extractDescription(body string, rules ruleSet) string {
	for _, p := range rules.refPatterns {
		ref, ok := firstGroup(p, body)
		if !ok {
			continue
		}
		ref = strings.TrimSpace(ref)
		if rules.maxDescriptionLen > 0 {
			if runes := []rune(ref); len(runes) > rules.maxDescriptionLen {
				ref = string(runes[:rules.maxDescriptionLen])
			}
		}
		return ref
	}
	return defaultDescription
}

func detectSource(lowerBody string, rules []sourceRule) string {
	for _, rule := range rules {
		if strings.Contains(lowerBody, rule.keyword) {
			return rule.source
		}
	}
	return ""
}

func firstGroup(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil || len(m) < 2 {
		return "", false
	}
	return m[1], true
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
