package credit

import "github.com/creditgo/creditgo/internal/domain"

const lowRiskConsistency = 0.8

// AssessRiskLevel buckets a borrower: low when fully verified with steady
// income, high when nothing is verified, medium otherwise.
func AssessRiskLevel(identityVerified, employmentVerified bool, analysis *domain.TransactionAnalysis) domain.RiskLevel {
	consistency := 0.0
	if analysis != nil {
		consistency = analysis.IncomeConsistency
	}

	switch {
	case identityVerified && employmentVerified && consistency >= lowRiskConsistency:
		return domain.RiskLow
	case !identityVerified && !employmentVerified:
		return domain.RiskHigh
	default:
		return domain.RiskMedium
	}
}
