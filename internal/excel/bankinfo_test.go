package excel

import (
	"testing"

	"github.com/dvloznov/statement-analyzer/internal/statement"
)

func TestExtractBankInfo(t *testing.T) {
	sheet := NewGridSheet("Sheet1", [][]string{
		{"Emirates NBD Bank Statement"},
		{"Mr. Ali Hassan"},
		{"Account: 1234567890123456"},
		{"Date", "Description", "Debit", "Credit"},
	})

	info := ExtractBankInfo(sheet)

	if info.BankName != "Emirates NBD" {
		t.Errorf("bank name = %q, want Emirates NBD", info.BankName)
	}
	if info.Currency != "AED" {
		t.Errorf("currency = %q, want AED", info.Currency)
	}
	if info.Country != "UAE" {
		t.Errorf("country = %q, want UAE", info.Country)
	}
	if info.AccountHolder != "Mr. Ali Hassan" {
		t.Errorf("account holder = %q, want Mr. Ali Hassan", info.AccountHolder)
	}
	if info.AccountNumber != "1234-****-3456" {
		t.Errorf("account number = %q, want masked form", info.AccountNumber)
	}
}

func TestExtractBankInfoDefaults(t *testing.T) {
	sheet := NewGridSheet("Sheet1", [][]string{
		{"Date", "Description", "Debit", "Credit"},
		{"01/02/2024", "coffee", "5", ""},
	})

	info := ExtractBankInfo(sheet)

	if info.BankName != "Unknown Bank" {
		t.Errorf("bank name = %q, want Unknown Bank", info.BankName)
	}
	if info.AccountHolder != "Unknown" {
		t.Errorf("account holder = %q, want Unknown", info.AccountHolder)
	}
	if info.AccountNumber != statement.MaskedPlaceholder {
		t.Errorf("account number = %q, want placeholder", info.AccountNumber)
	}
	if info.Currency != "USD" {
		t.Errorf("currency = %q, want USD default", info.Currency)
	}
}

func TestLooksLikeHolderName(t *testing.T) {
	tests := []struct {
		cell string
		want bool
	}{
		{"Mr. Ali Hassan", true},
		{"Ms Fatima Noor", true},
		{"John Smith", true},
		{"Anna Maria Lopez Garcia", true},
		{"john smith", false},
		{"Account 123", false},
		{"Statement", false},
		{"One Two Three Four Five", false},
	}
	for _, tt := range tests {
		if got := looksLikeHolderName(tt.cell); got != tt.want {
			t.Errorf("looksLikeHolderName(%q) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}
