package profile

import (
	"time"

	"github.com/creditgo/creditgo/internal/domain"
)

// Badge identifiers
const (
	BadgeIdentityVerified = "identity_verified"
	BadgeEmployed         = "employed"
	BadgeFreelancer       = "freelancer"
	BadgeBusinessOwner    = "business_owner"
	BadgeConsistentIncome = "consistent_income"
	BadgePositiveCashflow = "positive_cashflow"
	BadgeMultipleIncome   = "multiple_income"
)

const consistentIncomeThreshold = 0.8

var badgeCatalog = map[string]domain.CreditBadge{
	BadgeIdentityVerified: {
		ID:          BadgeIdentityVerified,
		Name:        "Identity Verified",
		Description: "Identity verification completed",
		Icon:        "shield-check",
	},
	BadgeEmployed: {
		ID:          BadgeEmployed,
		Name:        "Employed Professional",
		Description: "Verified corporate email",
		Icon:        "building",
	},
	BadgeFreelancer: {
		ID:          BadgeFreelancer,
		Name:        "Freelancer Verified",
		Description: "Professional profile confirmed",
		Icon:        "user-check",
	},
	BadgeBusinessOwner: {
		ID:          BadgeBusinessOwner,
		Name:        "Verified Business",
		Description: "Business details confirmed",
		Icon:        "briefcase",
	},
	BadgeConsistentIncome: {
		ID:          BadgeConsistentIncome,
		Name:        "Consistent Income",
		Description: "Regular income pattern detected",
		Icon:        "trending-up",
	},
	BadgePositiveCashflow: {
		ID:          BadgePositiveCashflow,
		Name:        "Cash Flow Positive",
		Description: "Healthy financial balance",
		Icon:        "wallet",
	},
	BadgeMultipleIncome: {
		ID:          BadgeMultipleIncome,
		Name:        "Multiple Income Streams",
		Description: "Diversified income sources",
		Icon:        "coins",
	},
}

var employmentBadges = map[domain.EmploymentType]string{
	domain.EmploymentSalaried:   BadgeEmployed,
	domain.EmploymentFreelancer: BadgeFreelancer,
	domain.EmploymentBusiness:   BadgeBusinessOwner,
}

// GenerateBadges recomputes the badge set from scratch. The order is fixed:
// identity, employment, consistency, cash flow, income streams.
func GenerateBadges(
	identityVerified bool,
	employmentVerified bool,
	employmentType domain.EmploymentType,
	analysis *domain.TransactionAnalysis,
	earnedAt time.Time,
) []domain.CreditBadge {
	ids := make([]string, 0, 5)

	if identityVerified {
		ids = append(ids, BadgeIdentityVerified)
	}
	if employmentVerified {
		if id, ok := employmentBadges[employmentType]; ok {
			ids = append(ids, id)
		}
	}
	if analysis != nil {
		if analysis.IncomeConsistency >= consistentIncomeThreshold {
			ids = append(ids, BadgeConsistentIncome)
		}
		if analysis.TotalCredits > analysis.TotalDebits {
			ids = append(ids, BadgePositiveCashflow)
		}
		if len(analysis.DetectedSources) > 1 {
			ids = append(ids, BadgeMultipleIncome)
		}
	}

	badges := make([]domain.CreditBadge, 0, len(ids))
	for _, id := range ids {
		badge := badgeCatalog[id]
		badge.EarnedAt = earnedAt
		badges = append(badges, badge)
	}
	return badges
}
