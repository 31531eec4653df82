package pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/statement-analyzer/internal/ai"
)

const (
	// promptTextLimit caps how much raw statement text goes into the
	// extraction prompt.
	promptTextLimit = 8000

	promptTableLimit = 5
	promptRowLimit   = 20
)

const extractorSystemPrompt = "You are a financial data extraction expert. " +
	"Extract transaction data accurately and return ONLY valid JSON. No markdown, no explanations."

// extractedStatement is the JSON shape the model is asked to produce.
type extractedStatement struct {
	BankInfo          extractedBankInfo      `json:"bank_info"`
	Transactions      []extractedTransaction `json:"transactions"`
	TotalTransactions int                    `json:"total_transactions"`
}

type extractedBankInfo struct {
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	Currency      string `json:"currency"`
}

type extractedTransaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
}

// AIExtractor structures raw statement text through the model boundary.
type AIExtractor struct {
	completer ai.Completer
}

// NewAIExtractor returns a model-backed extractor. A nil completer yields a
// disabled extractor whose Extract always errors.
func NewAIExtractor(completer ai.Completer) *AIExtractor {
	return &AIExtractor{completer: completer}
}

// Extract asks the model for the full structured statement. Any failure, a
// transport error, unparseable JSON or an empty transaction list, is
// returned as an error so the caller can fall back to pattern matching.
func (e *AIExtractor) Extract(ctx context.Context, text string, tables []Table) (*extractedStatement, error) {
	if e.completer == nil {
		return nil, fmt.Errorf("ai extractor: no completer configured")
	}

	raw, err := e.completer.Complete(ctx, ai.CompletionRequest{
		System:      extractorSystemPrompt,
		User:        buildExtractionPrompt(text, tables),
		MaxTokens:   4000,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("ai extractor: %w", err)
	}

	var stmt extractedStatement
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &stmt); err != nil {
		return nil, fmt.Errorf("ai extractor: decode statement: %w", err)
	}
	if len(stmt.Transactions) == 0 {
		return nil, fmt.Errorf("ai extractor: model returned no transactions")
	}
	return &stmt, nil
}

func buildExtractionPrompt(text string, tables []Table) string {
	if len(text) > promptTextLimit {
		text = text[:promptTextLimit]
	}

	var tableInfo strings.Builder
	if len(tables) > 0 {
		fmt.Fprintf(&tableInfo, "\n\nEXTRACTED TABLES (%d tables):\n", len(tables))
		for i, table := range tables {
			if i == promptTableLimit {
				break
			}
			fmt.Fprintf(&tableInfo, "\nTable %d (Page %d):\n", i+1, table.Page)
			for j, row := range table.Data {
				if j == promptRowLimit {
					break
				}
				fmt.Fprintf(&tableInfo, "%v\n", row)
			}
		}
	}

	return fmt.Sprintf(`You are an expert at extracting transaction data from bank statements. Extract ALL transactions from this PDF bank statement.

PDF CONTENT:
%s
%s

INSTRUCTIONS:
1. Extract ALL transactions with: Date, Description, Amount
2. Determine if amount is Debit (expense, negative) or Credit (income, positive)
3. Parse dates to YYYY-MM-DD format
4. Extract account holder name and account number if visible
5. Identify the bank name
6. Determine currency (AED, USD, EUR, GBP, INR, etc.)

CRITICAL RULES:
- Debits/Withdrawals/Payments = NEGATIVE amounts (use -100.00 format)
- Credits/Deposits/Income = POSITIVE amounts (use 100.00 format)
- Skip opening/closing balance rows
- Skip headers and summary rows
- Parse all date formats correctly (DD/MM/YYYY, MM/DD/YYYY, etc.)
- Include transaction reference/check numbers in description if available

OUTPUT FORMAT (JSON only, no markdown):
{
  "bank_info": {
    "bank_name": "Bank Name",
    "account_holder": "Holder Name or Unknown",
    "account_number": "Last 4 digits or Unknown",
    "currency": "USD or AED or EUR etc"
  },
  "transactions": [
    {
      "date": "2024-01-15",
      "description": "Transaction description",
      "amount": -50.00,
      "type": "Debit"
    }
  ],
  "total_transactions": 0
}

Extract ALL transactions you can find. Return ONLY valid JSON.`, text, tableInfo.String())
}
