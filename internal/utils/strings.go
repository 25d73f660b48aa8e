package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// StripNonDigits drops every character that is not an ASCII digit.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmountInput reads a free-text amount such as "₦300,000" the way the
// onboarding forms do: everything but digits is removed. Unparseable input is 0.
func ParseAmountInput(s string) float64 {
	digits := StripNonDigits(s)
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatNaira renders a whole-naira amount, e.g. 300000 -> "₦300,000".
func FormatNaira(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(0).IntPart()
	if rounded < 0 {
		return "-₦" + humanize.Comma(-rounded)
	}
	return "₦" + humanize.Comma(rounded)
}

// FormatPhoneNumber groups an 11-digit local number as "0803 123 4567".
// Anything else is returned unchanged.
func FormatPhoneNumber(phone string) string {
	cleaned := StripNonDigits(phone)
	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "0") {
		return cleaned[:4] + " " + cleaned[4:7] + " " + cleaned[7:]
	}
	return phone
}

// Capitalize upper-cases the first letter and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
