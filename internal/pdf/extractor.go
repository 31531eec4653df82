// Package pdf extracts transactions from PDF bank statements. Unlike the
// spreadsheet path there is no reliable grid to walk, so the pipeline leans
// on a model to structure the raw text, with a pattern-matching fallback
// when the model is unavailable or returns garbage.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"
)

// Table is a grid recovered from a statement page, kept alongside the raw
// text because tabular layouts survive extraction poorly.
type Table struct {
	Page int        `json:"page"`
	Data [][]string `json:"data"`
}

// Extractor pulls raw text (and any recoverable tables) out of a PDF.
type Extractor interface {
	Extract(data []byte) (text string, tables []Table, err error)
}

// TextExtractor is the default backend. It reads the PDF's text layer page
// by page; it recovers no tables, and image-only statements come back empty.
type TextExtractor struct{}

func (TextExtractor) Extract(data []byte) (string, []Table, error) {
	r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("pdf: open document: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text := pageText(page)
		if text == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n--- PAGE %d ---\n%s\n", i, text)
	}
	return sb.String(), nil, nil
}

// pageText prefers the row-grouped reading, which keeps statement lines
// together, and falls back to the flat text stream.
func pageText(page ledongthuc.Page) string {
	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var sb strings.Builder
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
				sb.WriteByte(' ')
			}
			sb.WriteByte('\n')
		}
		return strings.TrimSpace(sb.String())
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
