package chi

import (
	"fmt"

	"github.com/shopspring/decimal"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/kailas-cloud/fintrack/internal/domain"
	"github.com/kailas-cloud/fintrack/internal/domain/analytics"
	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

func expenseDraftFromRequest(req ExpenseRequest) (domexp.Draft, error) {
	if req.Amount == nil {
		return domexp.Draft{}, fmt.Errorf("%w: amount is required", domain.ErrInvalidInput)
	}
	if req.Date == nil {
		return domexp.Draft{}, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	d := domexp.Draft{
		Amount:   *req.Amount,
		Category: req.Category,
		Date:     req.Date.Time,
	}
	if req.Notes != nil {
		d.Notes = *req.Notes
	}
	return d, nil
}

func goalDraftFromRequest(req SavingsGoalRequest) (domgoal.Draft, error) {
	if req.TargetAmount == nil {
		return domgoal.Draft{}, fmt.Errorf("%w: targetAmount is required", domain.ErrInvalidInput)
	}
	d := domgoal.Draft{
		Title:         req.Title,
		TargetAmount:  *req.TargetAmount,
		CurrentAmount: decimal.Zero,
	}
	if req.CurrentAmount != nil {
		d.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != nil {
		d.TargetDate = req.TargetDate.Time
	}
	return d, nil
}

func expenseToResponse(e domexp.Expense) Expense {
	resp := Expense{
		Id:        e.ID(),
		UserId:    e.UserID(),
		Amount:    e.Amount().InexactFloat64(),
		Category:  e.Category(),
		Date:      openapi_types.Date{Time: e.Date()},
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
	if n := e.Notes(); n != "" {
		resp.Notes = &n
	}
	return resp
}

func goalToResponse(g domgoal.Goal) SavingsGoal {
	resp := SavingsGoal{
		Id:            g.ID(),
		UserId:        g.UserID(),
		Title:         g.Title(),
		TargetAmount:  g.TargetAmount().InexactFloat64(),
		CurrentAmount: g.CurrentAmount().InexactFloat64(),
		CreatedAt:     g.CreatedAt(),
	}
	if td, ok := g.TargetDate(); ok {
		resp.TargetDate = &openapi_types.Date{Time: td}
	}
	return resp
}

func analyticsToResponse(a analytics.Analytics) AnalyticsResponse {
	return AnalyticsResponse{
		TotalExpenses:     a.TotalExpenses.InexactFloat64(),
		ThisMonthExpenses: a.ThisMonthExpenses.InexactFloat64(),
		TransactionCount:  a.TransactionCount,
		CategoryBreakdown: floatMap(a.CategoryBreakdown),
		MonthlySpending:   floatMap(a.MonthlySpending),
		SavingsGoals:      a.SavingsGoals,
	}
}

func floatMap(m map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.InexactFloat64()
	}
	return out
}
