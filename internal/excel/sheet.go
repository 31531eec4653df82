// Package excel turns spreadsheet statements into canonical transactions:
// it locates the header row in unknown layouts, maps columns to roles, and
// extracts one transaction per valid data row.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is a read-only view of one worksheet. Rows and columns are 1-based,
// mirroring spreadsheet coordinates; out-of-range cells read as empty.
type Sheet interface {
	Name() string
	Cell(row, col int) string
	MaxRow() int
	MaxCol() int
}

// gridSheet is a Sheet over an in-memory cell grid. It backs both the
// excelize adapter and synthetic sheets in tests.
type gridSheet struct {
	name   string
	rows   [][]string
	maxCol int
}

// NewGridSheet wraps a row-major cell grid as a Sheet.
func NewGridSheet(name string, rows [][]string) Sheet {
	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return &gridSheet{name: name, rows: rows, maxCol: maxCol}
}

func (g *gridSheet) Name() string { return g.name }

func (g *gridSheet) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

func (g *gridSheet) MaxRow() int { return len(g.rows) }
func (g *gridSheet) MaxCol() int { return g.maxCol }

// OpenWorkbook reads an xlsx stream into sheets. The underlying file handle
// is released before returning; the sheets are plain in-memory grids.
func OpenWorkbook(r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("OpenWorkbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("OpenWorkbook: read sheet %q: %w", name, err)
		}
		sheets = append(sheets, NewGridSheet(name, rows))
	}
	return sheets, nil
}
