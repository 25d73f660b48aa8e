// Package marketplace lists financing partners and ranks their offers against
// what a user can safely repay each month.
package marketplace

// Category groups partners by what they finance
type Category string

const (
	CategoryDevices   Category = "devices"
	CategorySolar     Category = "solar"
	CategoryRent      Category = "rent"
	CategoryEducation Category = "education"
	CategoryHealth    Category = "health"
	CategoryBusiness  Category = "business"
)

// CategoryInfo describes a category for display
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
}

// Partner is a financing provider. Zero MinPayment or MaxPayment means the
// provider did not publish that figure.
type Partner struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Logo        string     `json:"logo"`
	Categories  []Category `json:"categories"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	Rating      float64    `json:"rating"`
	MinPayment  float64    `json:"min_payment"`
	MaxPayment  float64    `json:"max_payment"`
}

var categories = []CategoryInfo{
	{CategoryDevices, "Devices", "laptop", "Phones, laptops & gadgets", "#3b82f6"},
	{CategorySolar, "Solar", "sun", "Power solutions", "#f59e0b"},
	{CategoryRent, "Rent", "home", "Housing finance", "#8b5cf6"},
	{CategoryEducation, "Education", "graduation-cap", "Tuition & courses", "#06b6d4"},
	{CategoryHealth, "Health", "heart-pulse", "Medical expenses", "#ec4899"},
	{CategoryBusiness, "Business", "briefcase", "Working capital", "#10b981"},
}

// Terms and pricing vary by provider and change over time.
var partners = []Partner{
	// Devices
	{
		ID:          "easybuy",
		Name:        "Easybuy",
		Logo:        "https://logo.clearbit.com/easybuy.com.ng",
		Categories:  []Category{CategoryDevices},
		Description: "Get smartphones, laptops, and electronics on flexible payment plans. Pay in installments over 3-12 months.",
		Website:     "https://easybuy.com.ng",
		Rating:      4.5,
		MinPayment:  15000,
		MaxPayment:  200000,
	},
	{
		ID:          "cdcare",
		Name:        "CDcare",
		Logo:        "https://logo.clearbit.com/cdcare.ng",
		Categories:  []Category{CategoryDevices},
		Description: "Nigeria's leading device financing platform. Buy now, pay later for gadgets and appliances.",
		Website:     "https://cdcare.ng",
		Rating:      4.3,
		MinPayment:  20000,
		MaxPayment:  150000,
	},
	{
		ID:          "keza",
		Name:        "Keza Africa",
		Logo:        "https://logo.clearbit.com/keza.africa",
		Categories:  []Category{CategoryDevices},
		Description: "Finance phones and laptops with flexible repayment. Zero interest on select items.",
		Website:     "https://keza.africa",
		Rating:      4.4,
		MinPayment:  10000,
		MaxPayment:  100000,
	},
	{
		ID:          "mkopa",
		Name:        "M-KOPA",
		Logo:        "https://logo.clearbit.com/m-kopa.com",
		Categories:  []Category{CategorySolar, CategoryDevices},
		Description: "Pay-as-you-go financing for solar systems and smartphones. Africa's largest connected asset platform.",
		Website:     "https://m-kopa.com",
		Rating:      4.6,
		MinPayment:  5000,
		MaxPayment:  80000,
	},
	{
		ID:          "credpal",
		Name:        "CredPal",
		Logo:        "https://logo.clearbit.com/credpal.com",
		Categories:  []Category{CategoryDevices},
		Description: "Buy now, pay later across partner merchants. Flexible installment payments (subject to approval).",
		Website:     "https://credpal.com",
		Rating:      4.3,
		MinPayment:  10000,
		MaxPayment:  250000,
	},
	{
		ID:          "payqart",
		Name:        "PayQart",
		Logo:        "https://logo.clearbit.com/payqart.com",
		Categories:  []Category{CategoryDevices},
		Description: "Installment payments for gadgets and essentials through partner merchants (subject to eligibility).",
		Website:     "https://payqart.com",
		Rating:      4.1,
		MinPayment:  8000,
		MaxPayment:  200000,
	},
	// Solar
	{
		ID:          "sunking",
		Name:        "Sun King",
		Logo:        "https://logo.clearbit.com/sunking.com",
		Categories:  []Category{CategorySolar},
		Description: "Solar home systems with affordable payment plans. Light up your home with pay-as-you-go solar.",
		Website:     "https://sunking.com",
		Rating:      4.5,
		MinPayment:  3000,
		MaxPayment:  50000,
	},
	{
		ID:          "lumos",
		Name:        "Lumos",
		Logo:        "https://logo.clearbit.com/lumos.com.ng",
		Categories:  []Category{CategorySolar},
		Description: "Solar home systems with pay-as-you-go style repayment (availability varies by location).",
		Website:     "https://lumos.com.ng",
		Rating:      4.2,
		MinPayment:  5000,
		MaxPayment:  120000,
	},
	{
		ID:          "arnergy",
		Name:        "Arnergy",
		Logo:        "https://logo.clearbit.com/arnergy.com",
		Categories:  []Category{CategorySolar},
		Description: "Premium solar solutions for homes and businesses. Reliable power with smart financing.",
		Website:     "https://arnergy.com",
		Rating:      4.7,
		MinPayment:  30000,
		MaxPayment:  300000,
	},
	{
		ID:          "auxano",
		Name:        "Auxano Solar",
		Logo:        "https://logo.clearbit.com/auxanosolar.com",
		Categories:  []Category{CategorySolar},
		Description: "Affordable solar power for Nigerian homes. Spread your payment over 12-24 months.",
		Website:     "https://auxanosolar.com",
		Rating:      4.2,
		MinPayment:  15000,
		MaxPayment:  150000,
	},
	{
		ID:          "rubitec",
		Name:        "Rubitec Solar",
		Logo:        "https://logo.clearbit.com/rubitecsolar.com",
		Categories:  []Category{CategorySolar},
		Description: "Solar and inverter solutions for homes and small businesses. Financing may be available via partner plans.",
		Website:     "https://rubitecsolar.com",
		Rating:      4.1,
		MinPayment:  20000,
		MaxPayment:  250000,
	},
	// Rent
	{
		ID:          "spleet",
		Name:        "Spleet",
		Logo:        "https://logo.clearbit.com/spleet.africa",
		Categories:  []Category{CategoryRent},
		Description: "Pay rent monthly instead of yearly. Find verified properties and flexible housing.",
		Website:     "https://spleet.africa",
		Rating:      4.4,
		MinPayment:  50000,
		MaxPayment:  500000,
	},
	{
		ID:          "ule",
		Name:        "Ule",
		Logo:        "https://logo.clearbit.com/ule.ng",
		Categories:  []Category{CategoryRent},
		Description: "Rent now, pay later. Spread your rent payment over 12 months with low interest.",
		Website:     "https://ule.ng",
		Rating:      4.1,
		MinPayment:  40000,
		MaxPayment:  400000,
	},
	{
		ID:          "muster",
		Name:        "Muster",
		Logo:        "https://logo.clearbit.com/muster.com.ng",
		Categories:  []Category{CategoryRent},
		Description: "Rent financing for Nigerian professionals. Get into your dream apartment today.",
		Website:     "https://muster.com.ng",
		Rating:      4.3,
		MinPayment:  60000,
		MaxPayment:  600000,
	},
	// Education
	{
		ID:          "nelfund",
		Name:        "NELFUND",
		Logo:        "https://nelfund.gov.ng/assets/img/logo.png",
		Categories:  []Category{CategoryEducation},
		Description: "Nigerian Education Loan Fund. Government-backed student loans with low interest.",
		Website:     "https://nelfund.gov.ng",
		Rating:      4.0,
		MaxPayment:  100000,
	},
	{
		ID:          "edubanc",
		Name:        "Edubanc",
		Logo:        "https://logo.clearbit.com/edubanc.ng",
		Categories:  []Category{CategoryEducation},
		Description: "School fees financing for students and parents. Pay in installments.",
		Website:     "https://edubanc.ng",
		Rating:      4.2,
		MinPayment:  25000,
		MaxPayment:  200000,
	},
	{
		ID:          "schoolable",
		Name:        "Schoolable",
		Logo:        "https://logo.clearbit.com/schoolable.co",
		Categories:  []Category{CategoryEducation},
		Description: "Education financing made simple. Pay school fees in monthly installments.",
		Website:     "https://schoolable.co",
		Rating:      4.3,
		MinPayment:  20000,
		MaxPayment:  250000,
	},
	{
		ID:          "altschool",
		Name:        "AltSchool Africa",
		Logo:        "https://logo.clearbit.com/altschoolafrica.com",
		Categories:  []Category{CategoryEducation},
		Description: "Affordable digital skills programs. Flexible learning paths for software, product, and data.",
		Website:     "https://altschoolafrica.com",
		Rating:      4.5,
		MinPayment:  15000,
		MaxPayment:  150000,
	},
	{
		ID:          "ulesson",
		Name:        "uLesson",
		Logo:        "https://logo.clearbit.com/ulesson.com",
		Categories:  []Category{CategoryEducation},
		Description: "Learning platform for students with low-cost subscription options for exam prep and core subjects.",
		Website:     "https://ulesson.com",
		Rating:      4.4,
		MinPayment:  2000,
		MaxPayment:  30000,
	},
	// Health
	{
		ID:          "reliance-hmo",
		Name:        "Reliance HMO",
		Logo:        "https://logo.clearbit.com/reliancehmo.com",
		Categories:  []Category{CategoryHealth},
		Description: "Affordable health insurance with flexible payment plans. Quality healthcare for all.",
		Website:     "https://reliancehmo.com",
		Rating:      4.4,
		MinPayment:  5000,
		MaxPayment:  50000,
	},
	{
		ID:          "hygeia",
		Name:        "Hygeia HMO",
		Logo:        "https://logo.clearbit.com/hygeiahmo.com",
		Categories:  []Category{CategoryHealth},
		Description: "Comprehensive health coverage with monthly payment options.",
		Website:     "https://hygeiahmo.com",
		Rating:      4.3,
		MinPayment:  8000,
		MaxPayment:  80000,
	},
	// Business
	{
		ID:          "carbon",
		Name:        "Carbon",
		Logo:        "https://logo.clearbit.com/getcarbon.co",
		Categories:  []Category{CategoryBusiness},
		Description: "Quick business and personal loans in minutes. No collateral required.",
		Website:     "https://getcarbon.co",
		Rating:      4.1,
		MinPayment:  10000,
		MaxPayment:  500000,
	},
	{
		ID:          "fairmoney",
		Name:        "FairMoney",
		Logo:        "https://logo.clearbit.com/fairmoney.io",
		Categories:  []Category{CategoryBusiness},
		Description: "Instant loans for entrepreneurs. Get funds in 5 minutes.",
		Website:     "https://fairmoney.io",
		Rating:      4.0,
		MinPayment:  5000,
		MaxPayment:  300000,
	},
	{
		ID:          "lendha",
		Name:        "Lendha",
		Logo:        "https://logo.clearbit.com/lendha.com",
		Categories:  []Category{CategoryBusiness},
		Description: "Working capital and asset financing for SMEs. Grow your business today.",
		Website:     "https://lendha.com",
		Rating:      4.2,
		MinPayment:  50000,
		MaxPayment:  1000000,
	},
}

// Partners returns a copy of the partner catalog
func Partners() []Partner {
	out := make([]Partner, len(partners))
	for i, p := range partners {
		p.Categories = append([]Category(nil), p.Categories...)
		out[i] = p
	}
	return out
}

// Categories returns the display info for every category, in catalog order
func Categories() []CategoryInfo {
	return append([]CategoryInfo(nil), categories...)
}

// ValidCategory reports whether c names a known category
func ValidCategory(c Category) bool {
	for _, info := range categories {
		if info.ID == c {
			return true
		}
	}
	return false
}
