package sms

import "regexp"

// Keyword sets are matched against the lowercased message body.
// Credit keywords are checked first, so a message matching both sets is a credit.
var (
	creditKeywords = []string{
		"credit", "credited", "received", "deposit",
		"payment received", "salary", "transfer from", "inflow",
	}

	debitKeywords = []string{
		"debit", "debited", "withdrawal", "transfer to",
		"payment", "purchase", "pos", "atm",
	}
)

// sourceRule tags a transaction with a display source when its keyword appears
type sourceRule struct {
	keyword string
	source  string
}

// Ordered: first match wins.
var baseSourceRules = []sourceRule{
	{"salary", "Salary"},
	{"fiverr", "Fiverr"},
	{"upwork", "Upwork"},
	{"paystack", "Paystack"},
	{"pos", "POS"},
	{"atm", "ATM"},
}

var bankSourceRules = []sourceRule{
	{"salary", "Salary"},
	{"fiverr", "Fiverr"},
	{"upwork", "Upwork"},
	{"paystack", "Paystack"},
	{"flutterwave", "Flutterwave"},
	{"paypal", "PayPal"},
	{"pos", "POS"},
	{"atm", "ATM"},
	{"transfer", "Transfer"},
}

// Amount patterns are tried in order; the first one that matches wins.
var (
	baseAmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)NGN\s?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)N\s?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)([\d,]+\.?\d*)\s?naira`),
	}

	bankAmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)NGN\s?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)₦\s?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)N\s?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)([\d,]+\.?\d*)\s?naira`),
		regexp.MustCompile(`(?i)amount[:\s]+([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)sum of[:\s]+([\d,]+\.?\d*)`),
	}
)

var (
	baseRefPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Ref:\s*([^.]+)`),
	}

	bankRefPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ref[:\s]+([^\n.]+)`),
		regexp.MustCompile(`(?i)reference[:\s]+([^\n.]+)`),
		regexp.MustCompile(`(?i)desc[:\s]+([^\n.]+)`),
		regexp.MustCompile(`(?i)from[:\s]+([^\n.]+)`),
		regexp.MustCompile(`(?i)to[:\s]+([^\n.]+)`),
	}
)

// Bank alert filter vocabulary.
var (
	bankContentKeywords = []string{
		"credit", "debit", "credited", "debited", "transfer", "payment",
		"ngn", "balance", "alert", "transaction", "withdrawal", "deposit",
	}

	// Common Nigerian bank and fintech sender IDs
	bankSenders = []string{
		"gtbank", "gtb", "gtbalert", "gtworld",
		"zenith", "zenithbank", "zenithalert",
		"access", "accessbank", "accessalert",
		"firstbank", "firstbankng", "firstbankalert", "first",
		"uba", "ubabank",
		"sterling", "sterlingbank",
		"fcmb",
		"fidelity", "fidelitysms",
		"union", "unionbank",
		"wema", "wemabank",
		"polaris", "polarisbank",
		"stanbic", "stanbicibtc",
		"ecobank",
		"keystone", "keystonebank",
		"heritage", "heritagebank",
		"jaiz", "jaizbank",
		"providus", "providusbank",
		"suntrust", "suntrustbank",
		"titan", "titantrust",
		"opay", "opayng",
		"palmpay",
		"moniepoint",
		"kuda",
		"carbon",
		"fairmoney",
	}

	amountHint = regexp.MustCompile(`(?i)ngn|₦|\bnaira\b|\bamt\b|\bamount\b|\d{1,3}(,\d{3})*(\.\d{2})?`)
)

const (
	defaultDescription    = "Transaction"
	maxBankDescriptionLen = 50
)
