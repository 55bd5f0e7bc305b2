package assistant

import (
	"strconv"
	"strings"
	"time"

	"github.com/kailas-cloud/fintrack/internal/domain/analytics"
	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

const chatPersona = `You are a helpful personal finance assistant. You have access to the user's financial data:

RECENT EXPENSES:
{{expenses}}

SAVINGS GOALS:
{{goals}}

Help the user with:
- Categorizing expenses (suggest categories like Food, Transportation, Entertainment, Shopping, Bills, Healthcare, etc.)
- Analyzing spending patterns
- Providing financial advice
- Answering questions about their expenses and savings

Be concise, helpful, and provide actionable insights. When suggesting expense categories, use common categories that make sense for personal finance tracking.`

const reportInstructions = `Please provide:
1. Executive Summary
2. Spending Analysis & Patterns
3. Category Breakdown Insights
4. Monthly Trends Analysis
5. Savings Goals Progress
6. Actionable Recommendations
7. Areas for Improvement

Make it professional, insightful, and actionable. Use bullet points and clear sections.`

// expenseLine renders "YYYY-MM-DD: $amount - category (notes)".
func expenseLine(e domexp.Expense, withNotes bool) string {
	var b strings.Builder
	b.WriteString(e.DateString())
	b.WriteString(": $")
	b.WriteString(e.Amount().String())
	b.WriteString(" - ")
	b.WriteString(e.Category())
	if withNotes && e.Notes() != "" {
		b.WriteString(" (")
		b.WriteString(e.Notes())
		b.WriteString(")")
	}
	return b.String()
}

// goalLine renders "title: $current/$target by YYYY-MM-DD".
func goalLine(g domgoal.Goal, withDate bool) string {
	var b strings.Builder
	b.WriteString(g.Title())
	b.WriteString(": $")
	b.WriteString(g.CurrentAmount().String())
	b.WriteString("/$")
	b.WriteString(g.TargetAmount().String())
	if d, ok := g.TargetDate(); ok && withDate {
		b.WriteString(" by ")
		b.WriteString(d.Format(time.DateOnly))
	}
	return b.String()
}

func expenseBlock(expenses []domexp.Expense, withNotes bool) string {
	lines := make([]string, len(expenses))
	for i, e := range expenses {
		lines[i] = expenseLine(e, withNotes)
	}
	return strings.Join(lines, "\n")
}

func goalBlock(goals []domgoal.Goal, withDate bool) string {
	lines := make([]string, len(goals))
	for i, g := range goals {
		lines[i] = goalLine(g, withDate)
	}
	return strings.Join(lines, "\n")
}

func entryBlock(entries []analytics.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Key + ": $" + e.Amount.StringFixed(2)
	}
	return strings.Join(lines, "\n")
}

// chatSystemPrompt embeds the user's data into the assistant persona.
func chatSystemPrompt(expenses []domexp.Expense, goals []domgoal.Goal) string {
	return strings.NewReplacer(
		"{{expenses}}", expenseBlock(expenses, true),
		"{{goals}}", goalBlock(goals, true),
	).Replace(chatPersona)
}

// reportPrompt asks for a seven-section report over the computed figures.
func reportPrompt(a analytics.Analytics, recent []domexp.Expense, goals []domgoal.Goal, months int) string {
	var b strings.Builder
	b.WriteString("Generate a comprehensive personal finance report based on this data:\n\n")

	b.WriteString("SUMMARY STATISTICS:\n")
	b.WriteString("- Total Expenses: $" + a.TotalExpenses.StringFixed(2) + "\n")
	b.WriteString("- This Month: $" + a.ThisMonthExpenses.StringFixed(2) + "\n")
	b.WriteString("- Number of Transactions: " + strconv.Itoa(a.TransactionCount) + "\n")
	b.WriteString("- Active Savings Goals: " + strconv.Itoa(a.SavingsGoals) + "\n\n")

	b.WriteString("SPENDING BY CATEGORY:\n")
	b.WriteString(entryBlock(a.CategoriesByAmount()) + "\n\n")

	b.WriteString("MONTHLY SPENDING TREND (Last " + strconv.Itoa(months) + " months):\n")
	b.WriteString(entryBlock(a.RecentMonths(months)) + "\n\n")

	b.WriteString("RECENT EXPENSES:\n")
	b.WriteString(expenseBlock(recent, false) + "\n\n")

	b.WriteString("SAVINGS GOALS:\n")
	b.WriteString(goalBlock(goals, false) + "\n\n")

	b.WriteString(reportInstructions)
	return b.String()
}
