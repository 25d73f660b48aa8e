// Package analysis aggregates parsed transactions into income statistics.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/creditgo/creditgo/internal/domain"
)

const (
	salarySource = "Salary"

	// Consistency levels for the salary heuristic
	consistencyRegular   = 0.9
	consistencyIrregular = 0.6

	daysPerMonth = 30
)

// Analyze rebuilds the income statistics for a transaction collection.
// The result holds its own copy of the transactions.
func Analyze(transactions []domain.Transaction) domain.TransactionAnalysis {
	credits := make([]float64, 0, len(transactions))
	debits := make([]float64, 0, len(transactions))
	sources := make([]string, 0)
	seen := make(map[string]bool)
	salaryCredits := 0

	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionCredit:
			credits = append(credits, tx.Amount)
			if tx.Source == salarySource {
				salaryCredits++
			}
			if tx.Source != "" && !seen[tx.Source] {
				seen[tx.Source] = true
				sources = append(sources, tx.Source)
			}
		case domain.TransactionDebit:
			debits = append(debits, tx.Amount)
		}
	}

	totalCredits := floats.Sum(credits)

	copied := make([]domain.Transaction, len(transactions))
	copy(copied, transactions)

	return domain.TransactionAnalysis{
		TotalCredits:         totalCredits,
		TotalDebits:          floats.Sum(debits),
		AverageMonthlyIncome: totalCredits / float64(MonthsSpanned(transactions)),
		IncomeConsistency:    incomeConsistency(len(transactions), salaryCredits),
		DetectedSources:      sources,
		Transactions:         copied,
	}
}

// MonthsSpanned counts 30-day months covered by the transaction dates, at least 1.
func MonthsSpanned(transactions []domain.Transaction) int {
	if len(transactions) < 2 {
		return 1
	}

	earliest, latest := transactions[0].Date, transactions[0].Date
	for _, tx := range transactions[1:] {
		if tx.Date.Before(earliest) {
			earliest = tx.Date
		}
		if tx.Date.After(latest) {
			latest = tx.Date
		}
	}

	days := math.Max(1, math.Ceil(latest.Sub(earliest).Hours()/24))
	return int(math.Max(1, math.Ceil(days/daysPerMonth)))
}

func incomeConsistency(count, salaryCredits int) float64 {
	switch {
	case count == 0:
		return 0
	case salaryCredits >= 2:
		return consistencyRegular
	default:
		return consistencyIrregular
	}
}
