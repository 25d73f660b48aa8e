// Package profile composes the credit calculators into a FinancialProfile and
// manages the persisted per-user state built from it.
package profile

import (
	"time"

	"github.com/creditgo/creditgo/internal/domain"
	"github.com/creditgo/creditgo/internal/modules/credit"
)

// BuildInput is everything the profile builder reads. Analysis and
// MonthlyExpenses are optional.
type BuildInput struct {
	Analysis           *domain.TransactionAnalysis `json:"analysis,omitempty"`
	MonthlyExpenses    *float64                    `json:"monthly_expenses,omitempty"`
	EmploymentType     domain.EmploymentType       `json:"employment_type"`
	MonthlyIncome      float64                     `json:"monthly_income"`
	IdentityVerified   bool                        `json:"identity_verified"`
	EmploymentVerified bool                        `json:"employment_verified"`
}

// InputFrom combines user-entered figures with an optional analysis
func InputFrom(inputs domain.FinancialInputs, analysis *domain.TransactionAnalysis) BuildInput {
	return BuildInput{
		Analysis:           analysis,
		MonthlyExpenses:    inputs.MonthlyExpenses,
		EmploymentType:     inputs.EmploymentType,
		MonthlyIncome:      inputs.StatedMonthlyIncome,
		IdentityVerified:   inputs.IsIdentityVerified,
		EmploymentVerified: inputs.IsEmploymentVerified,
	}
}

// Builder produces financial profiles. The clock only stamps badges.
type Builder struct {
	now func() time.Time
}

// NewBuilder returns a builder using now for badge timestamps (time.Now if nil)
func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now}
}

// Build computes a fresh profile. Identical inputs give equal profiles apart
// from badge timestamps.
func (b *Builder) Build(in BuildInput) domain.FinancialProfile {
	amounts := credit.CalculateSafeAmount(credit.SafeAmountInput{
		Analysis:           in.Analysis,
		MonthlyExpenses:    in.MonthlyExpenses,
		StatedIncome:       in.MonthlyIncome,
		IdentityVerified:   in.IdentityVerified,
		EmploymentVerified: in.EmploymentVerified,
	})

	score := credit.CalculateCreditScore(in.IdentityVerified, in.EmploymentVerified, in.Analysis, in.MonthlyIncome)

	return domain.FinancialProfile{
		TotalIncome:          amounts.Breakdown.Income,
		EstimatedExpenses:    amounts.Breakdown.Expenses,
		DisposableIncome:     amounts.Breakdown.Disposable,
		SafeMonthlyRepayment: amounts.SafeAmount,
		MaxMonthlyRepayment:  amounts.MaxAmount,
		RepaymentRatio:       amounts.Breakdown.SafeRatio,
		CreditScore:          score,
		Tier:                 credit.GetCreditTier(score).Tier,
		RiskLevel:            credit.AssessRiskLevel(in.IdentityVerified, in.EmploymentVerified, in.Analysis),
		Badges: GenerateBadges(
			in.IdentityVerified,
			in.EmploymentVerified,
			in.EmploymentType,
			in.Analysis,
			b.now(),
		),
	}
}

// BuildFinancialProfile builds with the wall clock
func BuildFinancialProfile(in BuildInput) domain.FinancialProfile {
	return NewBuilder(nil).Build(in)
}
