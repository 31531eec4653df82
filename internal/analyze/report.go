package analyze

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/statement-analyzer/internal/statement"
)

// Report is the full analysis response: the deterministic aggregates, the
// narrative layer and the envelope metadata.
type Report struct {
	AIAnalysis      AIAnalysis         `json:"ai_analysis"`
	BasicStatistics BasicStatistics    `json:"basic_statistics"`
	BankInfo        statement.BankInfo `json:"bank_info"`
	DataOverview    DataOverview       `json:"data_overview"`
}

type AIAnalysis struct {
	SpendingByCategory map[string]decimal.Decimal `json:"spending_by_category"`
	IncomeVsExpenses   IncomeVsExpenses           `json:"income_vs_expenses"`
	MonthlyTrends      map[string]decimal.Decimal `json:"monthly_trends"`
	YearlyTrends       map[string]decimal.Decimal `json:"yearly_trends"`
	TopCategories      []CategoryShare            `json:"top_categories"`

	FinancialHealth      FinancialHealth      `json:"financial_health"`
	AIInsights           AIInsights           `json:"ai_insights"`
	SmartRecommendations SmartRecommendations `json:"smart_recommendations"`
	RiskManagement       RiskManagement       `json:"risk_management"`
	Predictions          Predictions          `json:"predictions"`

	TransactionInsights TransactionInsights `json:"transaction_insights"`
	Summary             string              `json:"summary"`
}

type IncomeVsExpenses struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetSavings    decimal.Decimal `json:"net_savings"`
	SavingsRate   float64         `json:"savings_rate"`
}

type FinancialHealth struct {
	Score      int    `json:"score"`
	Category   string `json:"category"`
	Assessment string `json:"assessment"`
}

type AIInsights struct {
	KeyInsights      []string `json:"key_insights"`
	SpendingPatterns []string `json:"spending_patterns"`
	CountryInsights  []string `json:"country_insights"`
}

type SmartRecommendations struct {
	BudgetRecommendations map[string]string `json:"budget_recommendations"`
	SavingsStrategy       []string          `json:"savings_strategy"`
	ActionPlan            []string          `json:"action_plan"`
}

type RiskManagement struct {
	Alerts    []string `json:"alerts"`
	Anomalies []string `json:"anomalies"`
	RiskLevel string   `json:"risk_level"`
}

type Predictions struct {
	MonthlyPredictions map[string]string `json:"monthly_predictions"`
	Trends             string            `json:"trends"`
}

type TransactionInsights struct {
	TotalTransactions   int             `json:"total_transactions"`
	AverageTransaction  decimal.Decimal `json:"average_transaction"`
	LargestExpense      decimal.Decimal `json:"largest_expense"`
	ExpenseTransactions int             `json:"expense_transactions"`
	IncomeTransactions  int             `json:"income_transactions"`
}

type BasicStatistics struct {
	Amount       AmountStats `json:"Amount"`
	Currency     string      `json:"currency"`
	AnalysisDate string      `json:"analysis_date"`
}

type AmountStats struct {
	Total decimal.Decimal `json:"total"`
	Max   decimal.Decimal `json:"max"`
	Min   decimal.Decimal `json:"min"`
}

type DataOverview struct {
	TotalRecords   int      `json:"total_records"`
	Categories     []string `json:"categories"`
	DateRange      string   `json:"date_range"`
	Currency       string   `json:"currency"`
	Country        string   `json:"country"`
	YearsAnalyzed  int      `json:"years_analyzed"`
	YearList       []string `json:"year_list"`
	MonthsAnalyzed int      `json:"months_analyzed"`
}

// BuildReport assembles the response from the summary and narrative.
func BuildReport(s Summary, n Narrative, info statement.BankInfo, txs []statement.Transaction) Report {
	riskLevel := "High"
	switch {
	case s.SavingsRate > 20:
		riskLevel = "Low"
	case s.SavingsRate > 10:
		riskLevel = "Medium"
	}

	trend := "Needs Attention"
	if s.SavingsRate > 15 {
		trend = "Stable"
	}

	monthly := make(map[string]decimal.Decimal, len(s.MonthlyTrends))
	for _, mt := range s.MonthlyTrends {
		monthly[mt.Label] = mt.Amount
	}

	categories := make([]string, 0, len(s.CategorySpending))
	for name := range s.CategorySpending {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	years := make([]string, 0, len(s.YearlyTrends))
	for year := range s.YearlyTrends {
		years = append(years, year)
	}
	sort.Strings(years)

	var total, maxAmount, minAmount decimal.Decimal
	for i, tx := range txs {
		total = total.Add(tx.Amount)
		if i == 0 || tx.Amount.GreaterThan(maxAmount) {
			maxAmount = tx.Amount
		}
		if i == 0 || tx.Amount.LessThan(minAmount) {
			minAmount = tx.Amount
		}
	}

	return Report{
		AIAnalysis: AIAnalysis{
			SpendingByCategory: s.CategorySpending,
			IncomeVsExpenses: IncomeVsExpenses{
				TotalIncome:   s.TotalIncome,
				TotalExpenses: s.TotalExpenses,
				NetSavings:    s.NetSavings,
				SavingsRate:   s.SavingsRate,
			},
			MonthlyTrends: monthly,
			YearlyTrends:  s.YearlyTrends,
			TopCategories: s.TopCategories,
			FinancialHealth: FinancialHealth{
				Score:      n.FinancialHealthScore,
				Category:   n.HealthCategory,
				Assessment: fmt.Sprintf("Your financial health score is %d/100", n.FinancialHealthScore),
			},
			AIInsights: AIInsights{
				KeyInsights:      n.KeyInsights,
				SpendingPatterns: n.SpendingPatterns,
				CountryInsights:  n.CountryInsights,
			},
			SmartRecommendations: SmartRecommendations{
				BudgetRecommendations: n.BudgetRecommendations,
				SavingsStrategy:       n.SavingsStrategy,
				ActionPlan:            n.ActionPlan,
			},
			RiskManagement: RiskManagement{
				Alerts:    n.RiskAlerts,
				Anomalies: n.Anomalies,
				RiskLevel: riskLevel,
			},
			Predictions: Predictions{
				MonthlyPredictions: n.MonthlyPredictions,
				Trends:             trend,
			},
			TransactionInsights: TransactionInsights{
				TotalTransactions:   s.TransactionCount,
				AverageTransaction:  s.AverageExpense,
				LargestExpense:      s.LargestExpense,
				ExpenseTransactions: s.ExpenseCount,
				IncomeTransactions:  s.IncomeCount,
			},
			Summary: n.Summary,
		},
		BasicStatistics: BasicStatistics{
			Amount:       AmountStats{Total: total, Max: maxAmount, Min: minAmount},
			Currency:     info.Currency,
			AnalysisDate: time.Now().Format("2006-01-02 15:04:05"),
		},
		BankInfo: info,
		DataOverview: DataOverview{
			TotalRecords:   s.TransactionCount,
			Categories:     categories,
			DateRange:      fmt.Sprintf("%s to %s", s.MinDate, s.MaxDate),
			Currency:       info.Currency,
			Country:        info.Country,
			YearsAnalyzed:  len(s.YearlyTrends),
			YearList:       years,
			MonthsAnalyzed: s.MonthsAnalyzed,
		},
	}
}
