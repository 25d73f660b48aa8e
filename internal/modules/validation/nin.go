package validation

import "github.com/creditgo/creditgo/internal/utils"

// NINLength is the number of digits in a National Identification Number
const NINLength = 11

// ValidateNIN reports whether s holds exactly 11 digits once separators are removed.
func ValidateNIN(s string) bool {
	return len(utils.StripNonDigits(s)) == NINLength
}

// FormatNIN groups the digits as XXX-XXXX-XXXX. Partial input is grouped as
// far as it goes and digits beyond the eleventh are dropped.
func FormatNIN(s string) string {
	digits := utils.StripNonDigits(s)
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 7:
		return digits[:3] + "-" + digits[3:]
	default:
		end := len(digits)
		if end > NINLength {
			end = NINLength
		}
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:end]
	}
}
