package excel

import (
	"strings"

	"github.com/dvloznov/statement-analyzer/internal/statement"
)

const (
	headerScanRows = 20
	headerScanCols = 10

	// A row needs this many keyword hits to count as the header.
	headerMinHits = 3
)

// headerKeywords are the terms that mark a cell as a column header. Order
// matters: when a cell contains several of them, the last match decides the
// role ("particular date" reads as a description column, not a date one).
var headerKeywords = []struct {
	term string
	role string
}{
	{"date", "date"},
	{"description", "description"},
	{"particular", "description"},
	{"narration", "description"},
	{"type", "type"},
	{"reference", "reference"},
	{"debit", "debit"},
	{"credit", "credit"},
	{"amount", "amount"},
	{"balance", "balance"},
}

// DetectColumns locates the header row and maps columns to roles. When no
// row in the scanned window scores enough keyword hits, it falls back to the
// conventional bank layout: row 1 headers, date in column 1, description in
// column 2, debit in 4 and credit in 5.
func DetectColumns(sheet Sheet) statement.ColumnMap {
	maxRow := min(sheet.MaxRow(), headerScanRows)
	maxCol := min(sheet.MaxCol(), headerScanCols)

	for row := 1; row <= maxRow; row++ {
		hits := 0
		for col := 1; col <= maxCol; col++ {
			if cellRole(sheet.Cell(row, col)) != "" {
				hits++
			}
		}
		if hits < headerMinHits {
			continue
		}

		cm := statement.ColumnMap{HeaderRow: row}
		for col := 1; col <= maxCol; col++ {
			assignRole(&cm, cellRole(sheet.Cell(row, col)), col)
		}
		return cm
	}

	return statement.ColumnMap{
		HeaderRow:      1,
		DateCol:        1,
		DescriptionCol: 2,
		DebitCol:       4,
		CreditCol:      5,
	}
}

// cellRole returns the role the cell's text claims, or "" for a non-header
// cell. Later keywords in the table override earlier ones.
func cellRole(text string) string {
	lower := strings.ToLower(text)
	role := ""
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw.term) {
			role = kw.role
		}
	}
	return role
}

// assignRole records col for the role unless an earlier column already
// claimed it. Balance columns are recognized but never extracted from.
func assignRole(cm *statement.ColumnMap, role string, col int) {
	set := func(dst *int) {
		if *dst == 0 {
			*dst = col
		}
	}
	switch role {
	case "date":
		set(&cm.DateCol)
	case "description":
		set(&cm.DescriptionCol)
	case "type":
		set(&cm.TypeCol)
	case "reference":
		set(&cm.ReferenceCol)
	case "debit":
		set(&cm.DebitCol)
	case "credit":
		set(&cm.CreditCol)
	case "amount":
		set(&cm.AmountCol)
	}
}
