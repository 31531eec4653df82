package excel

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/statement-analyzer/internal/dates"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

// summaryMarkers flag rows that belong to the statement's bookkeeping, not
// to its transaction history. A marker in either the date or description
// cell drops the row.
var summaryMarkers = []string{"TOTAL", "SUMMARY", "BALANCE", "OPENING", "CLOSING", "MONTHLY"}

// amountPlaceholders are cell values banks use for "no value here".
var amountPlaceholders = map[string]bool{"": true, "-": true, "None": true}

// BuildTransactions walks the data rows below the detected header and emits
// one transaction per usable row. Rows without a date, summary rows, rows
// whose amount cannot be read and zero-amount rows are skipped; a bad row
// never aborts the sheet. offset is the number of transactions already
// collected from earlier sheets, so synthesized descriptions keep counting
// across the workbook.
func BuildTransactions(sheet Sheet, cm statement.ColumnMap, offset int) []statement.Transaction {
	var txs []statement.Transaction

	for row := cm.HeaderRow + 1; row <= sheet.MaxRow(); row++ {
		rawDate := strings.TrimSpace(sheet.Cell(row, cm.DateCol))
		if rawDate == "" {
			continue
		}

		desc := strings.TrimSpace(sheet.Cell(row, cm.DescriptionCol))
		if isSummaryRow(rawDate) || isSummaryRow(desc) {
			continue
		}

		amount, ok := resolveAmount(
			sheet.Cell(row, cm.DebitCol),
			sheet.Cell(row, cm.CreditCol),
			sheet.Cell(row, cm.AmountCol),
			cm,
		)
		if !ok || amount.IsZero() {
			continue
		}

		if desc == "" {
			desc = "Transaction " + strconv.Itoa(offset+len(txs)+1)
		}

		txs = append(txs, statement.Transaction{
			Date:        dates.Normalize(rawDate),
			Amount:      amount,
			Description: desc,
		})
	}
	return txs
}

func isSummaryRow(cell string) bool {
	upper := strings.ToUpper(cell)
	for _, marker := range summaryMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// resolveAmount reads the money columns. A detected combined amount column
// is authoritative and keeps its own sign; otherwise a debit value becomes a
// negative amount and a credit value a positive one.
func resolveAmount(debit, credit, amount string, cm statement.ColumnMap) (decimal.Decimal, bool) {
	if cm.AmountCol != 0 {
		if v, ok := parseAmount(amount); ok {
			return v, true
		}
	}
	if cm.DebitCol != 0 {
		if v, ok := parseAmount(debit); ok {
			return v.Abs().Neg(), true
		}
	}
	if cm.CreditCol != 0 {
		if v, ok := parseAmount(credit); ok {
			return v.Abs(), true
		}
	}
	return decimal.Decimal{}, false
}

// parseAmount reads a money cell, tolerating thousands separators and
// currency labels like "AED 1,250.00".
func parseAmount(cell string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(cell)
	if amountPlaceholders[s] {
		return decimal.Decimal{}, false
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if v, err := decimal.NewFromString(s); err == nil {
		return v, true
	}

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v, true
}
