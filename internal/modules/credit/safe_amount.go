// Package credit computes repayment capacity and the credit score.
//
// Repayment ratios follow the Nigerian micro-lending convention of a 15-20%
// debt-service ratio, nudged upwards by verification and income evidence.
package credit

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/creditgo/creditgo/internal/domain"
)

var (
	baseSafeRatio = decimal.RequireFromString("0.15")
	baseMaxRatio  = decimal.RequireFromString("0.20")

	safeRatioCap = decimal.RequireFromString("0.22")
	maxRatioCap  = decimal.RequireFromString("0.28")

	// Lower bound on base income as a share of the stated figure
	statedIncomeFloor = decimal.RequireFromString("0.8")

	defaultExpenseRatio = decimal.RequireFromString("0.60")
	disposableShare     = decimal.RequireFromString("0.5")
	incomeShareCap      = decimal.RequireFromString("0.25")
)

// ratioBonus is an additive adjustment to the safe and max ratios
type ratioBonus struct {
	safe decimal.Decimal
	max  decimal.Decimal
}

func bonus(safeDelta, maxDelta string) ratioBonus {
	return ratioBonus{safe: decimal.RequireFromString(safeDelta), max: decimal.RequireFromString(maxDelta)}
}

var (
	identityBonus          = bonus("0.02", "0.02")
	employmentBonus        = bonus("0.03", "0.03")
	highConsistencyBonus   = bonus("0.02", "0.03")
	mediumConsistencyBonus = bonus("0.01", "0.01")
	multiSourceBonus       = bonus("0.01", "0.02")
)

// SafeAmountInput carries everything the calculator reads.
// Analysis and MonthlyExpenses are optional.
type SafeAmountInput struct {
	Analysis           *domain.TransactionAnalysis
	MonthlyExpenses    *float64
	StatedIncome       float64
	IdentityVerified   bool
	EmploymentVerified bool
}

// Breakdown explains how the repayment amounts were reached
type Breakdown struct {
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	Disposable float64 `json:"disposable"`
	SafeRatio  float64 `json:"safe_ratio"`
	MaxRatio   float64 `json:"max_ratio"`
}

// SafeAmountResult holds whole-naira repayment amounts; SafeAmount <= MaxAmount.
type SafeAmountResult struct {
	Breakdown  Breakdown `json:"breakdown"`
	SafeAmount float64   `json:"safe_amount"`
	MaxAmount  float64   `json:"max_amount"`
}

// CalculateSafeAmount derives the safe and maximum monthly repayment.
//
// Base income is the stated income, pulled down towards the observed monthly
// average when an analysis reports one, but never below 80% of the stated figure.
// An analysis with no observed income leaves the stated figure untouched.
// Missing or non-positive expenses are estimated at 60% of base income.
func CalculateSafeAmount(in SafeAmountInput) SafeAmountResult {
	stated := money(in.StatedIncome)

	base := stated
	if in.Analysis != nil && in.Analysis.AverageMonthlyIncome > 0 {
		observed := money(in.Analysis.AverageMonthlyIncome)
		base = decimal.Min(stated, decimal.Max(observed, stated.Mul(statedIncomeFloor)))
	}

	safeRatio, maxRatio := repaymentRatios(in)

	expenses := base.Mul(defaultExpenseRatio)
	if in.MonthlyExpenses != nil && *in.MonthlyExpenses > 0 {
		expenses = money(*in.MonthlyExpenses)
	}
	disposable := base.Sub(expenses)

	safeAmount := base.Mul(safeRatio).Floor()
	maxFromDisposable := disposable.Mul(disposableShare).Floor()
	maxAmount := decimal.Max(safeAmount, decimal.Min(maxFromDisposable, base.Mul(incomeShareCap).Floor()))

	return SafeAmountResult{
		SafeAmount: nonNegative(safeAmount).InexactFloat64(),
		MaxAmount:  nonNegative(maxAmount).InexactFloat64(),
		Breakdown: Breakdown{
			Income:     base.Floor().InexactFloat64(),
			Expenses:   expenses.Floor().InexactFloat64(),
			Disposable: nonNegative(disposable.Floor()).InexactFloat64(),
			SafeRatio:  safeRatio.InexactFloat64(),
			MaxRatio:   maxRatio.InexactFloat64(),
		},
	}
}

// repaymentRatios sums the applicable bonuses onto the base ratios and caps them
func repaymentRatios(in SafeAmountInput) (safeRatio, maxRatio decimal.Decimal) {
	safeRatio, maxRatio = baseSafeRatio, baseMaxRatio

	apply := func(b ratioBonus) {
		safeRatio = safeRatio.Add(b.safe)
		maxRatio = maxRatio.Add(b.max)
	}

	if in.IdentityVerified {
		apply(identityBonus)
	}
	if in.EmploymentVerified {
		apply(employmentBonus)
	}

	if a := in.Analysis; a != nil {
		switch {
		case a.IncomeConsistency >= 0.9:
			apply(highConsistencyBonus)
		case a.IncomeConsistency >= 0.7:
			apply(mediumConsistencyBonus)
		}
		if len(a.DetectedSources) >= 2 {
			apply(multiSourceBonus)
		}
	}

	return decimal.Min(safeRatio, safeRatioCap), decimal.Min(maxRatio, maxRatioCap)
}

// money converts an input amount, treating NaN, infinities and negatives as zero
func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
