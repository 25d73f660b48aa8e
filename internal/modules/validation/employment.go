package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/creditgo/creditgo/internal/utils"
)

var looseEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CorporateEmailValidation is the outcome of ValidateCorporateEmail
type CorporateEmailValidation struct {
	Company string `json:"company,omitempty"`
	IsValid bool   `json:"is_valid"`
}

// ValidateCorporateEmail accepts work addresses whose domain is on the corporate
// allow-list. The company name is derived from the first label of the domain.
func ValidateCorporateEmail(email string) CorporateEmailValidation {
	if !looseEmail.MatchString(email) {
		return CorporateEmailValidation{}
	}

	domain, _ := emailDomain(email)
	if _, ok := matchDomain(domain, CorporateDomains); !ok {
		return CorporateEmailValidation{}
	}

	return CorporateEmailValidation{
		IsValid: true,
		Company: utils.Capitalize(firstLabel(domain)),
	}
}

// FreelanceLinkValidation is the outcome of ValidateFreelanceLink
type FreelanceLinkValidation struct {
	Platform string `json:"platform,omitempty"`
	IsValid  bool   `json:"is_valid"`
}

// ValidateFreelanceLink accepts profile URLs hosted on a known freelance or
// professional platform. A missing scheme is treated as https.
func ValidateFreelanceLink(link string) FreelanceLinkValidation {
	raw := link
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return FreelanceLinkValidation{}
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	platform, ok := matchDomain(host, FreelancePlatforms)
	if !ok {
		return FreelanceLinkValidation{}
	}

	return FreelanceLinkValidation{
		IsValid:  true,
		Platform: utils.Capitalize(firstLabel(platform)),
	}
}

func firstLabel(domain string) string {
	label, _, _ := strings.Cut(domain, ".")
	return label
}
