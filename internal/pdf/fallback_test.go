package pdf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFallbackExtract(t *testing.T) {
	text := `--- PAGE 1 ---
Emirates NBD Account Statement
DATE DESCRIPTION AMOUNT
01/02/2024 CARREFOUR HYPERMARKET 150.50
02/02/2024 ADNOC FUEL STATION 85.00
TOTAL 235.50
`

	stmt := fallbackExtract(text)

	if stmt.BankInfo.BankName != "Emirates NBD" {
		t.Errorf("bank = %q, want Emirates NBD", stmt.BankInfo.BankName)
	}
	if stmt.BankInfo.Currency != "AED" {
		t.Errorf("currency = %q, want AED", stmt.BankInfo.Currency)
	}
	if len(stmt.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(stmt.Transactions))
	}

	first := stmt.Transactions[0]
	if first.Date != "2024-02-01" {
		t.Errorf("date = %q, want 2024-02-01", first.Date)
	}
	if !first.Amount.Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("amount = %s, want 150.50", first.Amount)
	}
	if !strings.Contains(first.Description, "CARREFOUR") {
		t.Errorf("description = %q, want carrefour mention", first.Description)
	}
}

func TestFallbackExtractDateDigitsNotAmount(t *testing.T) {
	// The year must not be read as the amount once the date is matched.
	stmt := fallbackExtract("05/03/2024 SOME MERCHANT PAYMENT 42.75\n")

	if len(stmt.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(stmt.Transactions))
	}
	if !stmt.Transactions[0].Amount.Equal(decimal.RequireFromString("42.75")) {
		t.Errorf("amount = %s, want 42.75", stmt.Transactions[0].Amount)
	}
}

func TestFallbackExtractSkipsShortAndSummaryLines(t *testing.T) {
	text := strings.Join([]string{
		"short",
		"01/02/2024 OPENING BALANCE 1000.00",
		"02/02/2024 CLOSING ENTRY 900.00",
		"03/02/2024 GROCERY PURCHASE 55.25",
	}, "\n")

	stmt := fallbackExtract(text)

	if len(stmt.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(stmt.Transactions))
	}
	if !strings.Contains(stmt.Transactions[0].Description, "GROCERY") {
		t.Errorf("description = %q", stmt.Transactions[0].Description)
	}
}

func TestFallbackExtractCapsResults(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 150; i++ {
		fmt.Fprintf(&sb, "01/02/2024 MERCHANT NUMBER PURCHASE 10.%02d\n", i%100)
	}

	stmt := fallbackExtract(sb.String())

	if len(stmt.Transactions) != fallbackMaxTransactions {
		t.Errorf("expected cap of %d transactions, got %d", fallbackMaxTransactions, len(stmt.Transactions))
	}
}

func TestFallbackExtractNoMatches(t *testing.T) {
	stmt := fallbackExtract("nothing that looks like transactions here\n")
	if len(stmt.Transactions) != 0 {
		t.Errorf("expected no transactions, got %d", len(stmt.Transactions))
	}
	if stmt.BankInfo.BankName != "Unknown Bank" {
		t.Errorf("bank = %q, want Unknown Bank", stmt.BankInfo.BankName)
	}
}
