package validation

import "strings"

// CorporateDomains are employer email domains accepted for employment verification.
// Subdomains of a listed domain match as well.
var CorporateDomains = []string{
	"mtn.ng", "mtn.com",
	"dangote.com",
	"gtbank.com", "gtco.com",
	"accessbankplc.com",
	"zenithbank.com",
	"firstbanknigeria.com",
	"ubagroup.com",
	"sterlingbank.com",
	"flutterwave.com",
	"paystack.com",
	"interswitch.com",
	"andela.com",
	"microsoft.com", "google.com", "amazon.com", "meta.com",
	"kpmg.com", "pwc.com", "ey.com", "deloitte.com",
	"shell.com", "totalenergies.com", "chevron.com",
}

// FreelancePlatforms are the professional profile hosts accepted for freelancers.
var FreelancePlatforms = []string{
	"linkedin.com",
	"upwork.com",
	"fiverr.com",
	"toptal.com",
	"freelancer.com",
	"guru.com",
	"behance.net",
	"dribbble.com",
	"github.com",
	"medium.com",
}

// FreeEmailProviders are consumer webmail domains
var FreeEmailProviders = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "live.com",
	"aol.com", "icloud.com", "mail.com", "protonmail.com", "zoho.com",
	"yandex.com", "gmx.com", "inbox.com",
}

// matchDomain returns the first allow-list entry equal to host or a parent of it
func matchDomain(host string, allowed []string) (string, bool) {
	for _, d := range allowed {
		if host == d || strings.HasSuffix(host, "."+d) {
			return d, true
		}
	}
	return "", false
}
