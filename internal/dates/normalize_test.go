package dates

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"day first slash", "25/12/2024", "2024-12-25"},
		{"day first slash padded", "01/02/2024", "2024-02-01"},
		{"day first single digits", "5/3/2024", "2024-03-05"},
		{"month first two digit year", "03/04/23", "2023-03-04"},
		{"two digit year pivot past", "03/04/99", "1999-03-04"},
		{"iso unchanged", "2024-12-25", "2024-12-25"},
		{"iso padded", "2024-1-5", "2024-01-05"},
		{"day first dash", "25-12-2024", "2024-12-25"},
		{"surrounding whitespace", "  25/12/2024 ", "2024-12-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeUnparseable(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	for _, in := range []string{"", "not a date", "32nd of May", "12345678"} {
		if got := Normalize(in); got != today {
			t.Errorf("Normalize(%q) = %q, want today's date %q", in, got, today)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"25/12/2024", "03/04/23", "2024-06-15", "7-8-2023"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2025-02"); got != "February 2025" {
		t.Errorf("MonthLabel(2025-02) = %q, want February 2025", got)
	}
	if got := MonthLabel("garbage"); got != "garbage" {
		t.Errorf("MonthLabel(garbage) = %q, want input echoed", got)
	}
}
