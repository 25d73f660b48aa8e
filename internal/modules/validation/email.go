// Package validation holds the onboarding field validators. Every validator
// returns a result value; none of them fail.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// User-facing messages produced by ValidateEmailFormat, in check order.
const (
	ErrEmailContainsSpaces   = "Email address cannot contain spaces"
	ErrEmailMissingAt        = `Please include an "@" in the email address`
	ErrEmailMultipleAt       = `Email address should contain only one "@" symbol`
	ErrEmailMissingLocalPart = `Please enter text before the "@" symbol`
	ErrEmailMissingDomain    = `Please enter a domain after the "@" symbol`
	ErrEmailIncompleteDomain = "Please enter a complete domain (e.g., company.com)"
	ErrEmailDomainDotEdge    = "Domain cannot start or end with a dot"
	ErrEmailDomainDoubleDot  = "Domain cannot contain consecutive dots"
	ErrEmailInvalid          = "Please enter a valid email address"
)

var emailShape = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@` +
		`[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*` +
		`\.[a-zA-Z]{2,}$`,
)

// EmailValidation is the outcome of ValidateEmailFormat.
// Error is empty for valid input and for input that has not been typed yet.
type EmailValidation struct {
	Error   string `json:"error,omitempty"`
	IsValid bool   `json:"is_valid"`
}

// ValidateEmailFormat runs the offline structural checks on an email address.
// Surrounding whitespace is ignored.
func ValidateEmailFormat(email string) EmailValidation {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return EmailValidation{}
	}

	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return invalidEmail(ErrEmailContainsSpaces)
	}
	if !strings.Contains(trimmed, "@") {
		return invalidEmail(ErrEmailMissingAt)
	}

	parts := strings.Split(trimmed, "@")
	if len(parts) != 2 {
		return invalidEmail(ErrEmailMultipleAt)
	}

	local, domain := parts[0], parts[1]
	switch {
	case local == "":
		return invalidEmail(ErrEmailMissingLocalPart)
	case domain == "":
		return invalidEmail(ErrEmailMissingDomain)
	case !strings.Contains(domain, "."):
		return invalidEmail(ErrEmailIncompleteDomain)
	case strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, "."):
		return invalidEmail(ErrEmailDomainDotEdge)
	case strings.Contains(domain, ".."):
		return invalidEmail(ErrEmailDomainDoubleDot)
	}

	if !emailShape.MatchString(trimmed) {
		return invalidEmail(ErrEmailInvalid)
	}

	return EmailValidation{IsValid: true}
}

func invalidEmail(msg string) EmailValidation {
	return EmailValidation{Error: msg}
}

// IsFreeEmailProvider reports whether the address belongs to a consumer webmail domain
func IsFreeEmailProvider(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}
	for _, p := range FreeEmailProviders {
		if domain == p {
			return true
		}
	}
	return false
}

// emailDomain returns the lowercased text between the first and second "@"
func emailDomain(email string) (string, bool) {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return "", false
	}
	return strings.ToLower(parts[1]), true
}
