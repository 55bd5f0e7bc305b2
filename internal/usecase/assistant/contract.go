package assistant

import (
	"context"

	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

// ExpenseLister reads a user's expenses newest first. limit <= 0 means all.
type ExpenseLister interface {
	List(ctx context.Context, userID string, limit int) ([]domexp.Expense, error)
}

// GoalLister reads a user's savings goals.
type GoalLister interface {
	List(ctx context.Context, userID string) ([]domgoal.Goal, error)
}

// QuotaGate charges and refunds AI units.
type QuotaGate interface {
	Consume(ctx context.Context, userID string) error
	Release(ctx context.Context, userID string) error
}
