package marketplace

import (
	"github.com/creditgo/creditgo/internal/utils"
)

const (
	defaultMonthlyPayment = 10000
	defaultMaxPayment     = 100000
	planMonths            = 6
)

// FinancingOption is a partner offer expressed as a fixed monthly plan
type FinancingOption struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       Category `json:"category"`
	Provider       string   `json:"provider"`
	ImageURL       string   `json:"image_url,omitempty"`
	Features       []string `json:"features"`
	TotalPrice     float64  `json:"total_price"`
	MonthlyPayment float64  `json:"monthly_payment"`
	InterestRate   float64  `json:"interest_rate"`
	Duration       int      `json:"duration"` // months
	IsAffordable   bool     `json:"is_affordable"`
}

// OptionFromPartner maps a partner onto a six-month plan filed under its
// primary category. Missing minimum or maximum payments use catalog defaults.
func OptionFromPartner(p Partner) FinancingOption {
	monthly := p.MinPayment
	if monthly <= 0 {
		monthly = defaultMonthlyPayment
	}
	maxPayment := p.MaxPayment
	if maxPayment <= 0 {
		maxPayment = defaultMaxPayment
	}

	var category Category
	if len(p.Categories) > 0 {
		category = p.Categories[0]
	}

	return FinancingOption{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       category,
		Provider:       p.Name,
		ImageURL:       p.Logo,
		TotalPrice:     maxPayment * planMonths,
		MonthlyPayment: monthly,
		Duration:       planMonths,
		Features: []string{
			"Flexible payments",
			"From " + utils.FormatNaira(p.MinPayment) + "/mo",
		},
	}
}

// Options returns one financing option per catalog partner
func Options() []FinancingOption {
	options := make([]FinancingOption, 0, len(partners))
	for _, p := range partners {
		options = append(options, OptionFromPartner(p))
	}
	return options
}
