package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dvloznov/statement-analyzer/internal/categorize"
	"github.com/dvloznov/statement-analyzer/internal/registry"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

// ProcessingMode identifies PDF results in API responses.
const ProcessingMode = "AI-Powered PDF Processing"

// Processor runs the PDF pipeline: text extraction, model-based structuring
// with the pattern-matching fallback, then categorization.
type Processor struct {
	extractor Extractor
	ai        *AIExtractor
	rules     *categorize.Rules
	batcher   *categorize.Batcher
	log       zerolog.Logger
}

func NewProcessor(extractor Extractor, ai *AIExtractor, rules *categorize.Rules, batcher *categorize.Batcher, log zerolog.Logger) *Processor {
	return &Processor{extractor: extractor, ai: ai, rules: rules, batcher: batcher, log: log}
}

// Process extracts, structures and categorizes a PDF statement. It fails
// only when the document yields no text at all or no transactions survive
// both extraction paths.
func (p *Processor) Process(ctx context.Context, data []byte) (*statement.Result, error) {
	text, tables, err := p.extractor.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	if text == "" && len(tables) == 0 {
		return nil, fmt.Errorf("pdf: no extractable text, file may be encrypted or image-based")
	}

	stmt, err := p.ai.Extract(ctx, text, tables)
	if err != nil {
		p.log.Warn().Err(err).Msg("model extraction failed, using pattern matching fallback")
		stmt = fallbackExtract(text)
	}
	if len(stmt.Transactions) == 0 {
		return nil, fmt.Errorf("pdf: no transactions found in document")
	}

	txs := make([]statement.Transaction, 0, len(stmt.Transactions))
	for _, tx := range stmt.Transactions {
		if tx.Amount.IsZero() {
			continue
		}
		category := p.rules.Categorize(tx.Description)
		txs = append(txs, statement.Transaction{
			Date:        tx.Date,
			Amount:      tx.Amount,
			Description: tx.Description,
			Category:    category,
			Subcategory: categorize.Subcategory(category),
		})
	}
	if len(txs) == 0 {
		return nil, fmt.Errorf("pdf: no transactions found in document")
	}
	txs = p.batcher.Recategorize(ctx, txs)

	info := buildBankInfo(stmt.BankInfo)
	p.log.Info().
		Str("bank", info.BankName).
		Int("transactions", len(txs)).
		Msg("pdf processed")

	return &statement.Result{
		Transactions:   txs,
		BankInfo:       info,
		TotalRows:      len(txs),
		ProcessingMode: ProcessingMode,
	}, nil
}

// buildBankInfo normalizes whatever the extraction produced: the bank name
// is matched against the registry for country and code, and the account
// number never leaves unmasked.
func buildBankInfo(raw extractedBankInfo) statement.BankInfo {
	info := statement.BankInfo{
		BankName:      registry.UnknownBank.Name,
		AccountHolder: "Unknown",
		AccountNumber: statement.MaskedPlaceholder,
		Currency:      registry.UnknownBank.Currency,
		Country:       registry.UnknownBank.Country,
		BankCode:      registry.UnknownBank.Code,
	}

	if raw.BankName != "" {
		info.BankName = raw.BankName
		if profile, ok := registry.DetectBank(raw.BankName); ok {
			info.BankName = profile.Name
			info.Country = profile.Country
			info.BankCode = profile.Code
			if raw.Currency == "" {
				info.Currency = profile.Currency
			}
		}
	}
	if raw.AccountHolder != "" {
		info.AccountHolder = raw.AccountHolder
	}
	if masked, ok := statement.MaskAccountNumber(raw.AccountNumber); ok {
		info.AccountNumber = masked
	}
	if raw.Currency != "" {
		info.Currency = strings.ToUpper(raw.Currency)
	}
	return info
}
