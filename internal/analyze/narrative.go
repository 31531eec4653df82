package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/statement-analyzer/internal/ai"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

// narrativeSampleLimit caps how many raw transactions go into the advisory
// prompt as examples.
const narrativeSampleLimit = 15

// Narrative is the advisory layer over the computed summary. All of its
// fields are model prose; none of them feed back into the numbers.
type Narrative struct {
	FinancialHealthScore  int               `json:"financial_health_score"`
	HealthCategory        string            `json:"health_category"`
	KeyInsights           []string          `json:"key_insights"`
	SpendingPatterns      []string          `json:"spending_patterns"`
	BudgetRecommendations map[string]string `json:"budget_recommendations"`
	SavingsStrategy       []string          `json:"savings_strategy"`
	RiskAlerts            []string          `json:"risk_alerts"`
	Anomalies             []string          `json:"anomalies"`
	MonthlyPredictions    map[string]string `json:"monthly_predictions"`
	ActionPlan            []string          `json:"action_plan"`
	CountryInsights       []string          `json:"country_insights"`
	Summary               string            `json:"summary"`
}

// Advisor produces the narrative. It degrades to a deterministic template
// when no model is configured or the model call fails.
type Advisor struct {
	completer ai.Completer
	log       zerolog.Logger
}

func NewAdvisor(completer ai.Completer, log zerolog.Logger) *Advisor {
	return &Advisor{completer: completer, log: log}
}

// Advise returns the narrative for a summarized statement.
func (a *Advisor) Advise(ctx context.Context, s Summary, info statement.BankInfo, txs []statement.Transaction) Narrative {
	if a.completer == nil {
		return fallbackNarrative(s, info)
	}

	monthsList := make([]string, 0, len(s.MonthlyTrends))
	for _, mt := range s.MonthlyTrends {
		monthsList = append(monthsList, mt.Label)
	}

	system := fmt.Sprintf("You are an expert financial advisor. CRITICAL RULE: You can ONLY mention these exact months in your analysis: %s. "+
		"Never mention any month not in that list. If you mention spending peaks, use ONLY the months from the provided list. "+
		"Always respond with valid JSON format only. Be extremely precise about dates - only reference what is explicitly in the monthly spending patterns data provided.",
		strings.Join(monthsList, ", "))

	raw, err := a.completer.Complete(ctx, ai.CompletionRequest{
		System:      system,
		User:        buildNarrativePrompt(s, info, txs, monthsList),
		MaxTokens:   3000,
		Temperature: 0.1,
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("advisor call failed, using template narrative")
		return fallbackNarrative(s, info)
	}

	var n Narrative
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &n); err != nil {
		a.log.Warn().Err(err).Msg("advisor returned unparseable narrative, using template")
		return fallbackNarrative(s, info)
	}
	if n.Summary == "" {
		n.Summary = defaultSummaryLine(s, info)
	}
	return n
}

func buildNarrativePrompt(s Summary, info statement.BankInfo, txs []statement.Transaction, monthsList []string) string {
	categoryJSON, _ := json.MarshalIndent(s.CategorySpending, "", "  ")
	yearlyJSON, _ := json.MarshalIndent(s.YearlyTrends, "", "  ")

	var monthly strings.Builder
	monthly.WriteString("{\n")
	for i, mt := range s.MonthlyTrends {
		fmt.Fprintf(&monthly, "  %q: %s", mt.Label, mt.Amount.StringFixed(2))
		if i < len(s.MonthlyTrends)-1 {
			monthly.WriteByte(',')
		}
		monthly.WriteByte('\n')
	}
	monthly.WriteString("}")

	samples := txs
	if len(samples) > narrativeSampleLimit {
		samples = samples[:narrativeSampleLimit]
	}
	samplesJSON, _ := json.MarshalIndent(samples, "", "  ")

	return fmt.Sprintf(`You are an expert financial advisor with deep expertise in personal finance, budgeting, and wealth management.
Analyze this comprehensive financial data and provide advanced insights:

CRITICAL INSTRUCTIONS - READ CAREFULLY:
- Transaction data period: %s to %s
- ONLY reference these specific months that exist in the data: %s
- DO NOT mention any month not in the list above
- Highest spending month in the actual data: %s with %s %s
- When describing spending peaks, ONLY use months from the list above
- Base ALL insights ONLY on the actual transaction data provided below

FINANCIAL PROFILE:
- Bank: %s (%s)
- Currency: %s
- Analysis Period: %s to %s
- Total Income: %s %s
- Total Expenses: %s %s
- Net Savings: %s %s
- Savings Rate: %.1f%%
- Transaction Count: %d
- Months Analyzed: %d
- Average Monthly Spending: %s %s
- Average Transaction: %s %s

SPENDING BREAKDOWN BY CATEGORY:
%s

MONTHLY SPENDING PATTERNS (Chronological Order):
%s

YEARLY TOTALS:
%s

TRANSACTION SAMPLES:
%s

PROVIDE ADVANCED ANALYSIS:
1. **Financial Health Score (0-100)** - Comprehensive scoring based on savings rate, spending patterns, and financial stability
2. **Spending Pattern Analysis** - Identify trends, seasonal patterns, and unusual spending behaviors (ONLY reference months from the list provided above)
3. **Budget Optimization** - Specific recommendations for each spending category with target amounts
4. **Savings Strategy** - Personalized savings goals and investment recommendations
5. **Risk Assessment** - Identify financial risks and vulnerabilities
6. **Anomaly Detection** - Flag unusual transactions or concerning patterns
7. **Country-Specific Advice** - Regional financial tips and local market insights
8. **Future Projections** - Predict next month's spending and savings based on current trends

Format as JSON with these keys:
- "financial_health_score": number (0-100)
- "health_category": string ("Excellent", "Good", "Fair", "Poor", "Critical")
- "key_insights": array of detailed insight strings
- "spending_patterns": array of pattern analysis strings
- "budget_recommendations": object with category-wise budget suggestions
- "savings_strategy": array of savings recommendation strings
- "risk_alerts": array of risk warning strings
- "anomalies": array of unusual transaction alerts
- "monthly_predictions": object with predicted spending for next month
- "action_plan": array of prioritized action items
- "country_insights": array of region-specific advice
- "summary": comprehensive summary string`,
		s.MinDate, s.MaxDate,
		strings.Join(monthsList, ", "),
		s.HighestMonth, info.Currency, s.HighestMonthAmount.StringFixed(2),
		info.BankName, info.Country,
		info.Currency,
		s.MinDate, s.MaxDate,
		info.Currency, s.TotalIncome.StringFixed(2),
		info.Currency, s.TotalExpenses.StringFixed(2),
		info.Currency, s.NetSavings.StringFixed(2),
		s.SavingsRate,
		s.TransactionCount,
		s.MonthsAnalyzed,
		info.Currency, s.AvgMonthlySpending.StringFixed(2),
		info.Currency, s.AverageExpense.StringFixed(2),
		categoryJSON,
		monthly.String(),
		yearlyJSON,
		samplesJSON)
}

// fallbackNarrative is the deterministic advisory used when the model path
// is unavailable. Scores scale off the savings rate alone.
func fallbackNarrative(s Summary, info statement.BankInfo) Narrative {
	score := int(s.SavingsRate * 1.5)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	category := "Poor"
	switch {
	case score > 80:
		category = "Excellent"
	case score > 60:
		category = "Good"
	case score > 40:
		category = "Fair"
	}

	topCategory := "N/A"
	if len(s.TopCategories) > 0 {
		topCategory = s.TopCategories[0].Name
	}

	savingsVerdict := "Below"
	if s.SavingsRate > 20 {
		savingsVerdict = "Above"
	}

	budget := map[string]string{}
	for i, share := range s.TopCategories {
		if i == 3 {
			break
		}
		target := share.Amount.Mul(decimal.NewFromFloat(0.85))
		budget[share.Name] = fmt.Sprintf("%s %s (15%% reduction recommended)", info.Currency, target.StringFixed(0))
	}

	riskAlert := "Savings rate within acceptable range"
	if s.SavingsRate < 15 {
		riskAlert = "Low savings rate - consider increasing to 20%"
	}

	return Narrative{
		FinancialHealthScore: score,
		HealthCategory:       category,
		KeyInsights: []string{
			fmt.Sprintf("Total monthly spending: %s %s", info.Currency, s.TotalExpenses.StringFixed(0)),
			fmt.Sprintf("Savings rate: %.1f%% (%s recommended 20%%)", s.SavingsRate, savingsVerdict),
			fmt.Sprintf("Primary expense category: %s", topCategory),
			fmt.Sprintf("Transaction frequency: %d transactions analyzed", s.TransactionCount),
		},
		SpendingPatterns: []string{
			"Consistent monthly spending observed",
			fmt.Sprintf("Highest spending in %s category", topCategory),
		},
		BudgetRecommendations: budget,
		SavingsStrategy: []string{
			"Automate 20% of income to savings account",
			"Use the 50/30/20 budgeting rule",
			"Review and cancel unused subscriptions",
			"Set up emergency fund with 3-6 months expenses",
		},
		RiskAlerts: []string{riskAlert},
		Anomalies:  []string{"No unusual patterns detected with basic analysis"},
		MonthlyPredictions: map[string]string{
			"next_month_spending": fmt.Sprintf("%s %s", info.Currency, s.TotalExpenses.Mul(decimal.NewFromFloat(1.05)).StringFixed(0)),
			"recommended_budget":  fmt.Sprintf("%s %s", info.Currency, s.TotalExpenses.Mul(decimal.NewFromFloat(0.95)).StringFixed(0)),
			"projected_savings":   fmt.Sprintf("%s %s", info.Currency, s.NetSavings.Mul(decimal.NewFromFloat(1.2)).StringFixed(0)),
		},
		ActionPlan: []string{
			"1. Set up automated savings (Priority: High)",
			"2. Create category-wise monthly budgets (Priority: High)",
			"3. Track daily expenses with mobile app (Priority: Medium)",
			"4. Review and optimize largest expense categories (Priority: Medium)",
			"5. Build emergency fund (Priority: Low)",
		},
		CountryInsights: []string{
			fmt.Sprintf("Explore %s-specific investment opportunities", info.Country),
			fmt.Sprintf("Consider local banks for better savings rates in %s", info.Country),
			"Research tax-advantaged savings accounts available in your region",
		},
		Summary: defaultSummaryLine(s, info),
	}
}

func defaultSummaryLine(s Summary, info statement.BankInfo) string {
	strength := "Weak"
	switch {
	case s.SavingsRate > 20:
		strength = "Strong"
	case s.SavingsRate > 10:
		strength = "Moderate"
	}
	return fmt.Sprintf("Financial analysis of %d transactions reveals a %.1f%% savings rate with total expenses of %s %s. "+
		"%s financial foundation with opportunities for optimization through budget management and automated savings.",
		s.TransactionCount, s.SavingsRate, info.Currency, s.TotalExpenses.StringFixed(0), strength)
}
