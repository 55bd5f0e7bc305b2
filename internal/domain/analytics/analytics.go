// Package analytics aggregates expense records into the figures used by spending reports.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/fintrack/internal/domain/expense"
)

// Entry is a labelled amount (a category or a YYYY-MM month).
type Entry struct {
	Key    string
	Amount decimal.Decimal
}

// Analytics is a spending summary over a fixed set of expenses.
type Analytics struct {
	TotalExpenses     decimal.Decimal
	ThisMonthExpenses decimal.Decimal
	TransactionCount  int
	CategoryBreakdown map[string]decimal.Decimal
	MonthlySpending   map[string]decimal.Decimal
	SavingsGoals      int
}

// Compute aggregates expenses. "This month" is the calendar month of now in UTC.
// The result depends only on its inputs.
func Compute(expenses []expense.Expense, goalCount int, now time.Time) Analytics {
	currentMonth := now.UTC().Format("2006-01")

	a := Analytics{
		TotalExpenses:     decimal.Zero,
		ThisMonthExpenses: decimal.Zero,
		TransactionCount:  len(expenses),
		CategoryBreakdown: make(map[string]decimal.Decimal),
		MonthlySpending:   make(map[string]decimal.Decimal),
		SavingsGoals:      goalCount,
	}

	for _, e := range expenses {
		amount := e.Amount()
		month := e.MonthKey()

		a.TotalExpenses = a.TotalExpenses.Add(amount)
		if month == currentMonth {
			a.ThisMonthExpenses = a.ThisMonthExpenses.Add(amount)
		}
		a.CategoryBreakdown[e.Category()] = a.CategoryBreakdown[e.Category()].Add(amount)
		a.MonthlySpending[month] = a.MonthlySpending[month].Add(amount)
	}

	return a
}

// CategoriesByAmount returns categories sorted by amount, largest first (ties by name).
func (a Analytics) CategoriesByAmount() []Entry {
	out := toEntries(a.CategoryBreakdown)
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// RecentMonths returns up to n months, most recent first.
func (a Analytics) RecentMonths(n int) []Entry {
	out := toEntries(a.MonthlySpending)
	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func toEntries(m map[string]decimal.Decimal) []Entry {
	out := make([]Entry, 0, len(m))
	for k, v := range m {
		out = append(out, Entry{Key: k, Amount: v})
	}
	return out
}
