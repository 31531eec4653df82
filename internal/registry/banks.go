package registry

import "strings"

// BankProfile describes a known institution: display name plus the country,
// currency and short code used for enrichment after detection.
type BankProfile struct {
	Name     string
	Country  string
	Currency string
	Code     string
}

type bankPattern struct {
	patterns []string
	profile  BankProfile
}

// bankPatterns maps lowercase substrings found in statement text to bank
// profiles. Evaluated in order; long-form names come before abbreviations so
// "abu dhabi commercial bank" never falls through to a looser match.
var bankPatterns = []bankPattern{
	// UAE
	{[]string{"abu dhabi commercial bank", "adcb"}, BankProfile{"Abu Dhabi Commercial Bank", "UAE", "AED", "ADCB"}},
	{[]string{"first abu dhabi bank", "fab"}, BankProfile{"First Abu Dhabi Bank", "UAE", "AED", "FAB"}},
	{[]string{"emirates nbd", "enbd"}, BankProfile{"Emirates NBD", "UAE", "AED", "ENBD"}},
	{[]string{"mashreq bank", "mashreq"}, BankProfile{"Mashreq Bank", "UAE", "AED", "MASHREQ"}},
	{[]string{"commercial bank of dubai", "cbd"}, BankProfile{"Commercial Bank of Dubai", "UAE", "AED", "CBD"}},
	{[]string{"hsbc"}, BankProfile{"HSBC Bank Middle East", "UAE", "AED", "HSBC"}},
	{[]string{"rak bank", "rakbank"}, BankProfile{"RAKBank", "UAE", "AED", "RAKBANK"}},
	{[]string{"abu dhabi islamic bank", "adib"}, BankProfile{"Abu Dhabi Islamic Bank", "UAE", "AED", "ADIB"}},
	// US
	{[]string{"bank of america", "bofa", "boa", "b of a"}, BankProfile{"Bank of America", "USA", "USD", "BOA"}},
	{[]string{"chase", "jp morgan chase", "jpmorgan"}, BankProfile{"Chase Bank", "USA", "USD", "CHASE"}},
	{[]string{"wells fargo", "wells"}, BankProfile{"Wells Fargo", "USA", "USD", "WF"}},
	{[]string{"citibank", "citi"}, BankProfile{"Citibank", "USA", "USD", "CITI"}},
	// UK
	{[]string{"barclays"}, BankProfile{"Barclays", "UK", "GBP", "BARCLAYS"}},
	{[]string{"lloyds"}, BankProfile{"Lloyds Bank", "UK", "GBP", "LLOYDS"}},
	// India
	{[]string{"state bank of india", "sbi"}, BankProfile{"State Bank of India", "India", "INR", "SBI"}},
	{[]string{"hdfc bank", "hdfc"}, BankProfile{"HDFC Bank", "India", "INR", "HDFC"}},
	{[]string{"icici bank", "icici"}, BankProfile{"ICICI Bank", "India", "INR", "ICICI"}},
	// Europe
	{[]string{"deutsche bank"}, BankProfile{"Deutsche Bank", "Germany", "EUR", "DB"}},
	{[]string{"bnp paribas"}, BankProfile{"BNP Paribas", "France", "EUR", "BNP"}},
	{[]string{"ing bank"}, BankProfile{"ING Bank", "Netherlands", "EUR", "ING"}},
}

// UnknownBank is returned when no pattern matches.
var UnknownBank = BankProfile{
	Name:     "Unknown Bank",
	Country:  "Unknown",
	Currency: "USD",
	Code:     "UNKNOWN",
}

// DetectBank scans free text for a known bank name or abbreviation.
func DetectBank(text string) (BankProfile, bool) {
	lower := strings.ToLower(text)
	for _, bp := range bankPatterns {
		for _, pattern := range bp.patterns {
			if strings.Contains(lower, pattern) {
				return bp.profile, true
			}
		}
	}
	return UnknownBank, false
}
