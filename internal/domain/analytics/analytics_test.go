package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/fintrack/internal/domain/expense"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func exp(t *testing.T, amount, category string, date time.Time) expense.Expense {
	t.Helper()
	e, err := expense.New(uuid.New(), "u-1", expense.Draft{
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}, now)
	if err != nil {
		t.Fatalf("build expense: %v", err)
	}
	return e
}

func threeExpenses(t *testing.T) []expense.Expense {
	return []expense.Expense{
		exp(t, "50", "Food", time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)),
		exp(t, "30", "Transportation", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)),
		exp(t, "20", "Food", time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)),
	}
}

func TestCompute_ThreeExpenses(t *testing.T) {
	a := Compute(threeExpenses(t), 2, now)

	if !a.TotalExpenses.Equal(decimal.NewFromInt(100)) {
		t.Errorf("TotalExpenses = %s, want 100", a.TotalExpenses)
	}
	if !a.ThisMonthExpenses.Equal(decimal.NewFromInt(80)) {
		t.Errorf("ThisMonthExpenses = %s, want 80", a.ThisMonthExpenses)
	}
	if a.TransactionCount != 3 {
		t.Errorf("TransactionCount = %d, want 3", a.TransactionCount)
	}
	if a.SavingsGoals != 2 {
		t.Errorf("SavingsGoals = %d, want 2", a.SavingsGoals)
	}
	if len(a.CategoryBreakdown) != 2 {
		t.Fatalf("CategoryBreakdown has %d keys, want 2", len(a.CategoryBreakdown))
	}
	if !a.CategoryBreakdown["Food"].Equal(decimal.NewFromInt(70)) {
		t.Errorf("Food = %s, want 70", a.CategoryBreakdown["Food"])
	}
	if !a.CategoryBreakdown["Transportation"].Equal(decimal.NewFromInt(30)) {
		t.Errorf("Transportation = %s, want 30", a.CategoryBreakdown["Transportation"])
	}
	if !a.MonthlySpending["2026-10"].Equal(decimal.NewFromInt(80)) ||
		!a.MonthlySpending["2026-09"].Equal(decimal.NewFromInt(20)) {
		t.Errorf("MonthlySpending = %v", a.MonthlySpending)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := threeExpenses(t)
	first := Compute(in, 0, now)
	second := Compute(in, 0, now)

	if !first.TotalExpenses.Equal(second.TotalExpenses) {
		t.Errorf("TotalExpenses differs: %s vs %s", first.TotalExpenses, second.TotalExpenses)
	}
	for k, v := range first.CategoryBreakdown {
		if !second.CategoryBreakdown[k].Equal(v) {
			t.Errorf("category %s differs", k)
		}
	}
	for k, v := range first.MonthlySpending {
		if !second.MonthlySpending[k].Equal(v) {
			t.Errorf("month %s differs", k)
		}
	}
}

func TestCompute_Empty(t *testing.T) {
	a := Compute(nil, 0, now)
	if !a.TotalExpenses.IsZero() || a.TransactionCount != 0 {
		t.Errorf("unexpected totals: %s / %d", a.TotalExpenses, a.TransactionCount)
	}
	if a.CategoryBreakdown == nil || a.MonthlySpending == nil {
		t.Error("maps must be non-nil")
	}
}

func TestCompute_DecimalPrecision(t *testing.T) {
	in := []expense.Expense{
		exp(t, "0.10", "Food", now),
		exp(t, "0.20", "Food", now),
	}
	a := Compute(in, 0, now)
	if a.TotalExpenses.StringFixed(2) != "0.30" {
		t.Errorf("TotalExpenses = %s, want 0.30", a.TotalExpenses.StringFixed(2))
	}
}

func TestCategoriesByAmount(t *testing.T) {
	a := Analytics{CategoryBreakdown: map[string]decimal.Decimal{
		"Bills":     decimal.NewFromInt(10),
		"Food":      decimal.NewFromInt(70),
		"Shopping":  decimal.NewFromInt(10),
		"Transport": decimal.NewFromInt(30),
	}}
	got := a.CategoriesByAmount()
	want := []string{"Food", "Transport", "Bills", "Shopping"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries", len(got))
	}
	for i, w := range want {
		if got[i].Key != w {
			t.Errorf("entry %d = %s, want %s", i, got[i].Key, w)
		}
	}
}

func TestRecentMonths(t *testing.T) {
	a := Analytics{MonthlySpending: map[string]decimal.Decimal{}}
	for _, m := range []string{"2025-12", "2026-01", "2026-02", "2026-03", "2026-04", "2026-05", "2026-06", "2025-11"} {
		a.MonthlySpending[m] = decimal.NewFromInt(1)
	}
	got := a.RecentMonths(6)
	if len(got) != 6 {
		t.Fatalf("got %d months, want 6", len(got))
	}
	if got[0].Key != "2026-06" || got[5].Key != "2026-01" {
		t.Errorf("unexpected order: first=%s last=%s", got[0].Key, got[5].Key)
	}
}
