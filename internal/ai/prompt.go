package ai

import (
	"fmt"
	"strings"

	"aiwealth/internal/core"
)

// SystemPrompt frames the assistant as a financial advisor for chat turns.
const SystemPrompt = `You are AIWealth, a helpful and knowledgeable financial advisor chatbot. Your goal is to provide personalized financial guidance based on users' situations.

Your capabilities include:
- Helping with budgeting and expense tracking
- Providing basic tax guidance
- Assisting with financial planning and goal setting
- Offering general investment education
- Helping with debt management strategies
- Explaining financial concepts in simple terms

If the user shares expenses or financial data with you, analyze it and provide insights on:
- Major spending categories
- Potential areas to reduce expenses
- Savings opportunities
- Budget recommendations

Please be supportive, non-judgmental, and focused on helping users improve their financial wellbeing.

If asked about specific investments or complex tax situations, kindly explain that you can provide general guidance but recommend consulting with a certified financial professional for specific advice.`

// AnalysisPrompt frames the expense-summary analysis request.
const AnalysisPrompt = "You are a financial advisor analyzing expense data. Provide specific insights and recommendations."

// LimitedModeResponse is returned when no API key is configured.
const LimitedModeResponse = "I'm currently running in limited mode. Please configure a Gemini API key to enable all features."

// BuildExpenseSummary formats the current spending into the text block sent
// alongside AnalysisPrompt. Percentages are relative to the total.
func BuildExpenseSummary(s core.Summary) string {
	var sb strings.Builder
	sb.WriteString("Here's my expense data:\n")
	fmt.Fprintf(&sb, "Total expenses: %s\n", s.Total.Format())
	sb.WriteString("Breakdown by category:\n")
	for _, cs := range s.ByCategory {
		pct := 0.0
		if s.Total.Cents > 0 {
			pct = float64(cs.Amount.Cents) / float64(s.Total.Cents) * 100
		}
		fmt.Fprintf(&sb, "- %s: %s (%.1f%%)\n", cs.Category.Label(), cs.Amount.Format(), pct)
	}
	sb.WriteString("\nCan you analyze my spending and provide recommendations?")
	return sb.String()
}
