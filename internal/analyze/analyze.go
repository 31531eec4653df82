// Package analyze aggregates categorized transactions into financial
// metrics and, when a model is available, a narrative advisory layer on top
// of them. The numbers are always computed deterministically; only the
// prose comes from the model.
package analyze

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/statement-analyzer/internal/dates"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

// MonthTotal is one month's expense total, carrying both the sortable key
// ("2024-02") and the display label ("February 2024").
type MonthTotal struct {
	SortKey string
	Label   string
	Amount  decimal.Decimal
}

// CategoryShare is one category's slice of total spending.
type CategoryShare struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// Summary holds every deterministic aggregate the analysis produces.
// Income is the sum of positive amounts, expenses the absolute sum of
// negative ones; category and monthly breakdowns count expenses only.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal
	SavingsRate   float64

	CategorySpending map[string]decimal.Decimal
	MonthlyTrends    []MonthTotal
	YearlyTrends     map[string]decimal.Decimal
	TopCategories    []CategoryShare

	MinDate            string
	MaxDate            string
	MonthsAnalyzed     int
	AvgMonthlySpending decimal.Decimal
	HighestMonth       string
	HighestMonthAmount decimal.Decimal

	TransactionCount int
	ExpenseCount     int
	IncomeCount      int
	AverageExpense   decimal.Decimal
	LargestExpense   decimal.Decimal
}

// topCategoryLimit bounds the ranked category list in the report.
const topCategoryLimit = 8

// fallbackMonthKey buckets transactions whose date cannot be read.
const (
	fallbackMonthKey   = "2024-01"
	fallbackMonthLabel = "January 2024"
)

// Summarize computes the full aggregate view of a transaction set.
func Summarize(txs []statement.Transaction) Summary {
	s := Summary{
		CategorySpending: map[string]decimal.Decimal{},
		YearlyTrends:     map[string]decimal.Decimal{},
		TransactionCount: len(txs),
	}

	monthly := map[string]*MonthTotal{}
	for _, tx := range txs {
		if tx.Amount.IsPositive() {
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			s.IncomeCount++
		}
		if !tx.Amount.IsNegative() {
			continue
		}

		expense := tx.Amount.Abs()
		s.TotalExpenses = s.TotalExpenses.Add(expense)
		s.ExpenseCount++
		if expense.GreaterThan(s.LargestExpense) {
			s.LargestExpense = expense
		}
		s.CategorySpending[tx.Category] = s.CategorySpending[tx.Category].Add(expense)

		key, label := monthBucket(tx.Date)
		mt, ok := monthly[key]
		if !ok {
			mt = &MonthTotal{SortKey: key, Label: label}
			monthly[key] = mt
		}
		mt.Amount = mt.Amount.Add(expense)
		if len(key) >= 4 {
			s.YearlyTrends[key[:4]] = s.YearlyTrends[key[:4]].Add(expense)
		}
	}

	s.NetSavings = s.TotalIncome.Sub(s.TotalExpenses)
	if s.TotalIncome.IsPositive() {
		rate, _ := s.NetSavings.Div(s.TotalIncome).Mul(decimal.NewFromInt(100)).Float64()
		s.SavingsRate = rate
	}
	if s.ExpenseCount > 0 {
		s.AverageExpense = s.TotalExpenses.Div(decimal.NewFromInt(int64(s.ExpenseCount)))
	}

	for _, mt := range monthly {
		s.MonthlyTrends = append(s.MonthlyTrends, *mt)
	}
	sort.Slice(s.MonthlyTrends, func(i, j int) bool {
		return s.MonthlyTrends[i].SortKey < s.MonthlyTrends[j].SortKey
	})
	s.MonthsAnalyzed = len(s.MonthlyTrends)
	if s.MonthsAnalyzed > 0 {
		s.AvgMonthlySpending = s.TotalExpenses.Div(decimal.NewFromInt(int64(s.MonthsAnalyzed)))
	}
	for _, mt := range s.MonthlyTrends {
		if mt.Amount.GreaterThan(s.HighestMonthAmount) {
			s.HighestMonth = mt.Label
			s.HighestMonthAmount = mt.Amount
		}
	}

	for _, tx := range txs {
		if tx.Date == "" {
			continue
		}
		if s.MinDate == "" || tx.Date < s.MinDate {
			s.MinDate = tx.Date
		}
		if tx.Date > s.MaxDate {
			s.MaxDate = tx.Date
		}
	}

	s.TopCategories = rankCategories(s.CategorySpending, s.TotalExpenses)
	return s
}

// monthBucket maps an ISO date to its month key and label. Unreadable
// dates all land in one sentinel bucket instead of being dropped.
func monthBucket(date string) (key, label string) {
	if len(date) < 7 {
		return fallbackMonthKey, fallbackMonthLabel
	}
	key = date[:7]
	label = dates.MonthLabel(key)
	if label == key {
		// MonthLabel echoes keys it cannot parse.
		return fallbackMonthKey, fallbackMonthLabel
	}
	return key, label
}

func rankCategories(spending map[string]decimal.Decimal, total decimal.Decimal) []CategoryShare {
	shares := make([]CategoryShare, 0, len(spending))
	for name, amount := range spending {
		share := CategoryShare{Name: name, Amount: amount}
		if total.IsPositive() {
			pct, _ := amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
			share.Percentage = pct
		}
		shares = append(shares, share)
	}
	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Name < shares[j].Name
	})
	if len(shares) > topCategoryLimit {
		shares = shares[:topCategoryLimit]
	}
	return shares
}
