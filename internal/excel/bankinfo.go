package excel

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dvloznov/statement-analyzer/internal/registry"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

const (
	infoScanRows = 20
	infoScanCols = 10
)

var holderTitles = []string{"mr", "ms", "mrs", "dr"}

// holderStopWords disqualify a cell from being a person's name even when it
// is title-cased.
var holderStopWords = []string{
	"bank", "statement", "account", "branch", "summary",
	"transaction", "balance", "date", "description",
}

// accountCandidate pulls digit runs (with optional separators) out of cells
// like "Account: 1234 5678 9012".
var accountCandidate = regexp.MustCompile(`\d[\d \-]{8,18}\d`)

// ExtractBankInfo scans the top-left corner of the sheet for the metadata
// banks print above the transaction table: the bank name, the account
// holder and the account number. Whatever is not found stays at its
// defaults; the account number is always masked.
func ExtractBankInfo(sheet Sheet) statement.BankInfo {
	info := statement.BankInfo{
		BankName:      registry.UnknownBank.Name,
		AccountHolder: "Unknown",
		AccountNumber: statement.MaskedPlaceholder,
		Currency:      registry.UnknownBank.Currency,
		Country:       registry.UnknownBank.Country,
		BankCode:      registry.UnknownBank.Code,
	}

	maxRow := min(sheet.MaxRow(), infoScanRows)
	maxCol := min(sheet.MaxCol(), infoScanCols)
	bankFound, holderFound, numberFound := false, false, false

	for row := 1; row <= maxRow; row++ {
		for col := 1; col <= maxCol; col++ {
			cell := strings.TrimSpace(sheet.Cell(row, col))
			if cell == "" {
				continue
			}

			if !bankFound {
				if profile, ok := registry.DetectBank(cell); ok {
					info.BankName = profile.Name
					info.Currency = profile.Currency
					info.Country = profile.Country
					info.BankCode = profile.Code
					bankFound = true
				}
			}
			if !holderFound && looksLikeHolderName(cell) {
				info.AccountHolder = cell
				holderFound = true
			}
			if !numberFound {
				for _, candidate := range accountCandidate.FindAllString(cell, -1) {
					if masked, ok := statement.MaskAccountNumber(candidate); ok {
						info.AccountNumber = masked
						numberFound = true
						break
					}
				}
			}
		}
	}
	return info
}

// looksLikeHolderName accepts short title-cased phrases and anything led by
// a salutation. Cells with digits are never names.
func looksLikeHolderName(cell string) bool {
	if strings.ContainsFunc(cell, unicode.IsDigit) {
		return false
	}

	lower := strings.ToLower(cell)
	for _, w := range holderStopWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	for _, t := range holderTitles {
		if strings.HasPrefix(lower, t+".") || strings.HasPrefix(lower, t+" ") {
			return true
		}
	}

	words := strings.Fields(cell)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r := []rune(w)
		if !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}
