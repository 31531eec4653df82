package excel

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dvloznov/statement-analyzer/internal/categorize"
	"github.com/dvloznov/statement-analyzer/internal/registry"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

// ProcessingMode identifies spreadsheet results in API responses.
const ProcessingMode = "Dynamic Excel Processing with AI Categorization"

// accountInfoSheet is the optional metadata sheet exported by some banks as
// label/value pairs next to the transaction sheet.
const accountInfoSheet = "Account Info"

// Processor runs the full spreadsheet pipeline: workbook parsing, header
// detection, transaction extraction, rule categorization and the optional
// model reclassification pass.
type Processor struct {
	rules   *categorize.Rules
	batcher *categorize.Batcher
	log     zerolog.Logger
}

func NewProcessor(rules *categorize.Rules, batcher *categorize.Batcher, log zerolog.Logger) *Processor {
	return &Processor{rules: rules, batcher: batcher, log: log}
}

// Process reads an xlsx stream and returns the normalized result. Every
// sheet except the metadata sheet is treated as a transaction table; column
// detection runs per sheet and the rows are concatenated in sheet order.
func (p *Processor) Process(ctx context.Context, r io.Reader) (*statement.Result, error) {
	sheets, err := OpenWorkbook(r)
	if err != nil {
		return nil, fmt.Errorf("excel: %w", err)
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel: workbook has no sheets")
	}

	var dataSheets []Sheet
	var infoSheet Sheet
	for _, s := range sheets {
		if strings.EqualFold(s.Name(), accountInfoSheet) {
			infoSheet = s
			continue
		}
		dataSheets = append(dataSheets, s)
	}
	if len(dataSheets) == 0 {
		return nil, fmt.Errorf("excel: workbook has no transaction sheet")
	}

	var txs []statement.Transaction
	for _, s := range dataSheets {
		cm := DetectColumns(s)
		p.log.Debug().
			Str("sheet", s.Name()).
			Int("header_row", cm.HeaderRow).
			Msg("columns detected")
		txs = append(txs, BuildTransactions(s, cm, len(txs))...)
	}
	for i := range txs {
		txs[i].Category = p.rules.Categorize(txs[i].Description)
		txs[i].Subcategory = categorize.Subcategory(txs[i].Category)
	}
	txs = p.batcher.Recategorize(ctx, txs)

	var info statement.BankInfo
	if infoSheet != nil {
		info = parseAccountInfo(infoSheet)
	} else {
		info = ExtractBankInfo(dataSheets[0])
	}

	p.log.Info().
		Str("bank", info.BankName).
		Int("transactions", len(txs)).
		Msg("spreadsheet processed")

	return &statement.Result{
		Transactions:   txs,
		BankInfo:       info,
		TotalRows:      len(txs),
		ProcessingMode: ProcessingMode,
	}, nil
}

// parseAccountInfo reads a label/value metadata sheet. Unrecognized labels
// are ignored; the account number always comes out masked.
func parseAccountInfo(sheet Sheet) statement.BankInfo {
	info := statement.BankInfo{
		BankName:      registry.UnknownBank.Name,
		AccountHolder: "Unknown",
		AccountNumber: statement.MaskedPlaceholder,
		Currency:      registry.UnknownBank.Currency,
		Country:       registry.UnknownBank.Country,
		BankCode:      registry.UnknownBank.Code,
	}

	currencySet := false
	for row := 1; row <= sheet.MaxRow(); row++ {
		label := strings.ToLower(strings.TrimSpace(sheet.Cell(row, 1)))
		value := strings.TrimSpace(sheet.Cell(row, 2))
		if label == "" || value == "" {
			continue
		}

		switch {
		case strings.Contains(label, "bank"):
			info.BankName = value
			if profile, ok := registry.DetectBank(value); ok {
				info.BankName = profile.Name
				info.Country = profile.Country
				info.BankCode = profile.Code
				if !currencySet {
					info.Currency = profile.Currency
				}
			}
		case strings.Contains(label, "holder") || strings.Contains(label, "name"):
			info.AccountHolder = value
		case strings.Contains(label, "account"):
			if masked, ok := statement.MaskAccountNumber(value); ok {
				info.AccountNumber = masked
			}
		case strings.Contains(label, "currency"):
			info.Currency = strings.ToUpper(value)
			currencySet = true
		case strings.Contains(label, "country"):
			info.Country = value
		}
	}
	return info
}
