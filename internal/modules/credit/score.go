package credit

import (
	"math"

	"github.com/creditgo/creditgo/internal/domain"
)

const (
	baseScore         = 30
	identityPoints    = 20
	employmentPoints  = 15
	consistencyScale  = 20
	multiSourcePoints = 10
	cashFlowPoints    = 5
	minScore          = 0
	maxScore          = 100
)

// incomeBand awards points once stated income reaches a threshold.
// Bands are checked from the highest threshold down.
type incomeBand struct {
	threshold float64
	points    int
}

var incomeBands = []incomeBand{
	{1_000_000, 10},
	{500_000, 7},
	{300_000, 5},
	{150_000, 3},
}

// CalculateCreditScore returns a score in [0, 100]. Analysis may be nil and
// income may be zero; both simply contribute nothing.
func CalculateCreditScore(identityVerified, employmentVerified bool, analysis *domain.TransactionAnalysis, income float64) int {
	score := baseScore

	if identityVerified {
		score += identityPoints
	}
	if employmentVerified {
		score += employmentPoints
	}

	if analysis != nil {
		consistency := analysis.IncomeConsistency
		if math.IsNaN(consistency) {
			consistency = 0
		}
		consistency = math.Max(0, math.Min(1, consistency))
		score += int(math.Floor(consistency * consistencyScale))

		if len(analysis.DetectedSources) > 1 {
			score += multiSourcePoints
		}
		if analysis.TotalCredits > analysis.TotalDebits {
			score += cashFlowPoints
		}
	}

	score += incomePoints(income)

	return clampScore(score)
}

func incomePoints(income float64) int {
	for _, band := range incomeBands {
		if income >= band.threshold {
			return band.points
		}
	}
	return 0
}

func clampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
