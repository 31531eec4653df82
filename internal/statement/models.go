package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as plain JSON numbers, matching the upload/analyze
	// wire contract consumed by the frontend.
	decimal.MarshalJSONWithoutQuotes = true
}

// MaskedPlaceholder is used when no real-looking account number was found.
const MaskedPlaceholder = "XXXX-XXXX-XXXX"

// Transaction is the canonical record produced by the ingestion pipeline.
// Amount is signed: negative for debits (money out), positive for credits
// (money in). Zero-amount rows never survive extraction.
type Transaction struct {
	Date        string          `json:"Date"`
	Amount      decimal.Decimal `json:"Amount"`
	Description string          `json:"Description"`
	Category    string          `json:"Category"`
	Subcategory string          `json:"Subcategory"`
}

// BankInfo describes the institution and account a statement belongs to.
// AccountNumber is always masked before it reaches this struct.
type BankInfo struct {
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	Currency      string `json:"currency"`
	Country       string `json:"country,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
}

// ColumnMap records which worksheet column holds each semantic field.
// Column indices are 1-based; zero means the column was not detected.
type ColumnMap struct {
	HeaderRow      int
	DateCol        int
	DescriptionCol int
	TypeCol        int
	ReferenceCol   int
	DebitCol       int
	CreditCol      int
	AmountCol      int
}

// Result is what one processed statement yields, regardless of input format.
type Result struct {
	Transactions   []Transaction `json:"transactions"`
	BankInfo       BankInfo      `json:"bank_info"`
	TotalRows      int           `json:"total_rows"`
	ProcessingMode string        `json:"processing_mode"`
}

var accountDigitsPattern = regexp.MustCompile(`^\d{10,16}$`)

// MaskAccountNumber redacts the middle of a real-looking account number,
// keeping the first and last four digits. Returns false when the input does
// not look like an account number (10-16 digits after stripping separators).
func MaskAccountNumber(raw string) (string, bool) {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	if !accountDigitsPattern.MatchString(digits) {
		return "", false
	}
	return digits[:4] + "-****-" + digits[len(digits)-4:], true
}
