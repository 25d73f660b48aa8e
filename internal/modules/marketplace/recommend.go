package marketplace

import (
	"sort"
	"strings"
)

// Filter narrows the options shown to a user. Zero values match everything.
type Filter struct {
	Category       Category `json:"category,omitempty"`
	Query          string   `json:"query,omitempty"`
	AffordableOnly bool     `json:"affordable_only"`
}

// Recommendation is a ranked option list for one safe monthly amount
type Recommendation struct {
	Options         []FinancingOption `json:"options"`
	AffordableCount int               `json:"affordable_count"`
	SafeAmount      float64           `json:"safe_amount"`
}

// Recommend filters the catalog options and ranks them for safeAmount.
// An option is affordable when its monthly payment does not exceed safeAmount.
// Affordable options come first; within each group cheaper plans come first.
func Recommend(filter Filter, safeAmount float64) Recommendation {
	return rank(Options(), filter, safeAmount)
}

func rank(options []FinancingOption, filter Filter, safeAmount float64) Recommendation {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := make([]FinancingOption, 0, len(options))
	for _, opt := range options {
		if filter.Category != "" && opt.Category != filter.Category {
			continue
		}
		if query != "" && !matchesQuery(opt, query) {
			continue
		}

		opt.IsAffordable = opt.MonthlyPayment <= safeAmount
		if filter.AffordableOnly && !opt.IsAffordable {
			continue
		}
		matched = append(matched, opt)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].IsAffordable != matched[j].IsAffordable {
			return matched[i].IsAffordable
		}
		return matched[i].MonthlyPayment < matched[j].MonthlyPayment
	})

	return Recommendation{
		Options:         matched,
		AffordableCount: AffordableCount(matched, safeAmount),
		SafeAmount:      safeAmount,
	}
}

func matchesQuery(opt FinancingOption, query string) bool {
	return strings.Contains(strings.ToLower(opt.Name), query) ||
		strings.Contains(strings.ToLower(opt.Provider), query) ||
		strings.Contains(strings.ToLower(opt.Description), query)
}

// AffordableCount counts options whose monthly payment fits within safeAmount
func AffordableCount(options []FinancingOption, safeAmount float64) int {
	count := 0
	for _, opt := range options {
		if opt.MonthlyPayment <= safeAmount {
			count++
		}
	}
	return count
}
