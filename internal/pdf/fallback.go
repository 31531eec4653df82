package pdf

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/statement-analyzer/internal/dates"
	"github.com/dvloznov/statement-analyzer/internal/registry"
)

const (
	// fallbackMaxTransactions caps the pattern-matched result. Past that
	// point the scanner is more likely matching noise than transactions.
	fallbackMaxTransactions = 100

	fallbackMaxDescription = 100
)

var (
	fallbackDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		regexp.MustCompile(`\d{4}[/-]\d{1,2}[/-]\d{1,2}`),
	}
	fallbackAmountPattern = regexp.MustCompile(`-?\d+[,.]?\d*\.?\d{2}`)
	fallbackDescStrip     = regexp.MustCompile(`[\d/\-,.\s]+`)
)

var fallbackSkipWords = []string{"TOTAL", "BALANCE", "OPENING", "CLOSING", "DATE", "DESCRIPTION"}

// fallbackExtract scans the raw text line by line for a date plus an amount,
// treating the rest of the line as the description. It is deliberately
// crude: its job is to salvage something when the model path is down.
func fallbackExtract(text string) *extractedStatement {
	stmt := &extractedStatement{
		BankInfo: extractedBankInfo{
			BankName:      registry.UnknownBank.Name,
			AccountHolder: "Unknown",
			AccountNumber: "Unknown",
			Currency:      registry.UnknownBank.Currency,
		},
	}

	head := text
	if len(head) > 2000 {
		head = head[:2000]
	}
	if profile, ok := registry.DetectBank(head); ok {
		stmt.BankInfo.BankName = profile.Name
		stmt.BankInfo.Currency = profile.Currency
	}

	for _, line := range strings.Split(text, "\n") {
		if len(stmt.Transactions) == fallbackMaxTransactions {
			break
		}

		line = strings.TrimSpace(line)
		if len(line) < 10 || isSkippableLine(line) {
			continue
		}

		dateStr := ""
		for _, pattern := range fallbackDatePatterns {
			if m := pattern.FindString(line); m != "" {
				dateStr = m
				break
			}
		}
		if dateStr == "" {
			continue
		}

		// Search for the amount in the line with the date removed, so the
		// date's own digits can never be mistaken for money.
		rest := strings.Replace(line, dateStr, "", 1)
		amountStr := fallbackAmountPattern.FindString(rest)
		if amountStr == "" {
			continue
		}
		amount, err := decimal.NewFromString(strings.ReplaceAll(amountStr, ",", ""))
		if err != nil {
			continue
		}

		desc := strings.TrimSpace(fallbackDescStrip.ReplaceAllString(line, " "))
		if desc == "" {
			continue
		}
		if len(desc) > fallbackMaxDescription {
			desc = desc[:fallbackMaxDescription]
		}

		stmt.Transactions = append(stmt.Transactions, extractedTransaction{
			Date:        dates.Normalize(dateStr),
			Description: desc,
			Amount:      amount,
		})
	}
	return stmt
}

func isSkippableLine(line string) bool {
	upper := strings.ToUpper(line)
	for _, word := range fallbackSkipWords {
		if strings.Contains(upper, word) {
			return true
		}
	}
	return false
}
