// Package domain provides core domain models and types.
package domain

import "time"

// TransactionType distinguishes money received from money spent
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// EmploymentType is the employment category chosen during onboarding
type EmploymentType string

const (
	EmploymentSalaried   EmploymentType = "salaried"
	EmploymentFreelancer EmploymentType = "freelancer"
	EmploymentBusiness   EmploymentType = "business"
	EmploymentNone       EmploymentType = "none"
)

// RawMessage is a text message as supplied by the demo dataset or a device reader.
// ID and Address are only populated by device readers.
type RawMessage struct {
	Date    time.Time `json:"date"`
	ID      string    `json:"id,omitempty"`
	Body    string    `json:"body"`
	Address string    `json:"address,omitempty"`
}

// Transaction is a credit or debit extracted from a single message.
// Amount is always > 0.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Source      string          `json:"source,omitempty"`
	Category    string          `json:"category,omitempty"`
	Amount      float64         `json:"amount"`
}

// TransactionAnalysis aggregates a transaction collection.
// It is rebuilt from scratch on every analysis, never updated in place.
type TransactionAnalysis struct {
	DetectedSources      []string      `json:"detected_sources"`
	Transactions         []Transaction `json:"transactions"`
	TotalCredits         float64       `json:"total_credits"`
	TotalDebits          float64       `json:"total_debits"`
	AverageMonthlyIncome float64       `json:"average_monthly_income"`
	IncomeConsistency    float64       `json:"income_consistency"` // 0..1
}

// FinancialInputs are the user-supplied figures read by the engine.
// MonthlyExpenses is nil when the user skipped the expenses step.
type FinancialInputs struct {
	MonthlyExpenses      *float64       `json:"monthly_expenses,omitempty"`
	EmploymentType       EmploymentType `json:"employment_type"`
	StatedMonthlyIncome  float64        `json:"stated_monthly_income"`
	IsIdentityVerified   bool           `json:"is_identity_verified"`
	IsEmploymentVerified bool           `json:"is_employment_verified"`
}

// CreditBadge is a piece of evidence earned from verification flags or analysis
type CreditBadge struct {
	EarnedAt    time.Time `json:"earned_at"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// RiskLevel is a coarse lending risk bucket
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FinancialProfile is the value object rendered by the client.
// Invariants: SafeMonthlyRepayment <= MaxMonthlyRepayment, 0 <= RepaymentRatio <= 0.28,
// 0 <= CreditScore <= 100.
type FinancialProfile struct {
	Tier                 string        `json:"tier"`
	RiskLevel            RiskLevel     `json:"risk_level"`
	Badges               []CreditBadge `json:"badges"`
	TotalIncome          float64       `json:"total_income"`
	EstimatedExpenses    float64       `json:"estimated_expenses"`
	DisposableIncome     float64       `json:"disposable_income"`
	SafeMonthlyRepayment float64       `json:"safe_monthly_repayment"`
	MaxMonthlyRepayment  float64       `json:"max_monthly_repayment"`
	RepaymentRatio       float64       `json:"repayment_ratio"`
	CreditScore          int           `json:"credit_score"`
}

// VerificationStatus tracks which onboarding checks have passed
type VerificationStatus struct {
	Identity      bool `json:"identity"`
	Employment    bool `json:"employment"`
	Income        bool `json:"income"`
	SMSPermission bool `json:"sms_permission"`
}

// User is the onboarding record owned by the client
type User struct {
	CreatedAt               time.Time      `json:"created_at"`
	MonthlyExpenses         *float64       `json:"monthly_expenses,omitempty"`
	ID                      string         `json:"id"`
	NIN                     string         `json:"nin,omitempty"`
	PhoneNumber             string         `json:"phone_number,omitempty"`
	Email                   string         `json:"email,omitempty"`
	FirstName               string         `json:"first_name,omitempty"`
	LastName                string         `json:"last_name,omitempty"`
	EmploymentType          EmploymentType `json:"employment_type"`
	WorkEmail               string         `json:"work_email,omitempty"`
	BusinessName            string         `json:"business_name,omitempty"`
	ProfessionalProfileLink string         `json:"professional_profile_link,omitempty"`
	MonthlyIncome           float64        `json:"monthly_income"`
	IsIdentityVerified      bool           `json:"is_identity_verified"`
	IsEmploymentVerified    bool           `json:"is_employment_verified"`
}

// Inputs projects the user record onto the engine inputs
func (u User) Inputs() FinancialInputs {
	return FinancialInputs{
		StatedMonthlyIncome:  u.MonthlyIncome,
		MonthlyExpenses:      u.MonthlyExpenses,
		EmploymentType:       u.EmploymentType,
		IsIdentityVerified:   u.IsIdentityVerified,
		IsEmploymentVerified: u.IsEmploymentVerified,
	}
}

// AppState is the persisted snapshot kept per user in the key-value store.
// It is replaced wholesale on every recomputation.
type AppState struct {
	UpdatedAt            time.Time          `json:"updated_at"`
	User                 User               `json:"user"`
	FinancialProfile     *FinancialProfile  `json:"financial_profile"`
	Transactions         []Transaction      `json:"transactions"`
	VerificationStatus   VerificationStatus `json:"verification_status"`
	IsOnboardingComplete bool               `json:"is_onboarding_complete"`
}
