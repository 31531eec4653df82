package excel

import "testing"

func TestDetectColumnsStandardLayout(t *testing.T) {
	sheet := NewGridSheet("Sheet1", [][]string{
		{"Date", "Description", "Type", "Debit", "Credit"},
		{"01/02/2024", "Carrefour", "POS", "50", ""},
	})

	cm := DetectColumns(sheet)

	if cm.HeaderRow != 1 {
		t.Errorf("header row = %d, want 1", cm.HeaderRow)
	}
	if cm.DateCol != 1 || cm.DescriptionCol != 2 || cm.TypeCol != 3 || cm.DebitCol != 4 || cm.CreditCol != 5 {
		t.Errorf("unexpected column map: %+v", cm)
	}
}

func TestDetectColumnsHeaderBelowPreamble(t *testing.T) {
	sheet := NewGridSheet("Sheet1", [][]string{
		{"Emirates NBD"},
		{"Account Statement"},
		{""},
		{"Mr. Ali Hassan"},
		{"Transaction Date", "Narration", "Reference", "Debit", "Credit", "Balance"},
		{"01/02/2024", "Carrefour", "TX1", "50", "", "950"},
	})

	cm := DetectColumns(sheet)

	if cm.HeaderRow != 5 {
		t.Errorf("header row = %d, want 5", cm.HeaderRow)
	}
	if cm.DateCol != 1 {
		t.Errorf("date col = %d, want 1", cm.DateCol)
	}
	if cm.DescriptionCol != 2 {
		t.Errorf("description col = %d, want 2", cm.DescriptionCol)
	}
	if cm.ReferenceCol != 3 {
		t.Errorf("reference col = %d, want 3", cm.ReferenceCol)
	}
}

func TestDetectColumnsLastKeywordWins(t *testing.T) {
	// "Particular Date" reads as a description column because later
	// keywords override earlier ones inside a single cell.
	sheet := NewGridSheet("Sheet1", [][]string{
		{"Date", "Particulars", "Debit", "Credit"},
	})

	cm := DetectColumns(sheet)
	if cm.DescriptionCol != 2 {
		t.Errorf("description col = %d, want 2", cm.DescriptionCol)
	}

	sheet = NewGridSheet("Sheet1", [][]string{
		{"Value Date", "Transaction Description", "Amount", "Balance"},
	})
	cm = DetectColumns(sheet)
	if cm.DateCol != 1 || cm.DescriptionCol != 2 || cm.AmountCol != 3 {
		t.Errorf("unexpected column map: %+v", cm)
	}
}

func TestDetectColumnsFirstClaimWins(t *testing.T) {
	sheet := NewGridSheet("Sheet1", [][]string{
		{"Date", "Posting Date", "Description", "Amount"},
	})

	cm := DetectColumns(sheet)
	if cm.DateCol != 1 {
		t.Errorf("date col = %d, want first claiming column 1", cm.DateCol)
	}
}

func TestDetectColumnsDefaultFallback(t *testing.T) {
	sheet := NewGridSheet("Sheet1", [][]string{
		{"01/02/2024", "Carrefour", "", "50", ""},
		{"02/02/2024", "ADNOC", "", "120", ""},
	})

	cm := DetectColumns(sheet)

	want := DetectColumns(NewGridSheet("empty", nil))
	if cm != want {
		t.Errorf("fallback mismatch: got %+v, want %+v", cm, want)
	}
	if cm.HeaderRow != 1 || cm.DateCol != 1 || cm.DescriptionCol != 2 || cm.DebitCol != 4 || cm.CreditCol != 5 {
		t.Errorf("unexpected fallback map: %+v", cm)
	}
}

func TestDetectColumnsRequiresThreeHits(t *testing.T) {
	// Two keyword cells are not enough to call a row the header.
	sheet := NewGridSheet("Sheet1", [][]string{
		{"Date", "Description"},
		{"Date", "Description", "Debit"},
	})

	cm := DetectColumns(sheet)
	if cm.HeaderRow != 2 {
		t.Errorf("header row = %d, want 2 (first row with three hits)", cm.HeaderRow)
	}
}
