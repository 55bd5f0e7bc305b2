package chi

import (
	"context"

	"github.com/google/uuid"

	"github.com/kailas-cloud/fintrack/internal/domain"
	"github.com/kailas-cloud/fintrack/internal/domain/usage"
	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
	assistantuc "github.com/kailas-cloud/fintrack/internal/usecase/assistant"
	healthuc "github.com/kailas-cloud/fintrack/internal/usecase/health"
)

// QuotaService exposes the AI usage counter.
type QuotaService interface {
	Status(ctx context.Context, userID string) (usage.Status, error)
	Record(ctx context.Context, userID string) error
}

// AssistantService runs chat and report generation.
type AssistantService interface {
	Chat(ctx context.Context, userID string, history []domain.Message) (domain.Stream, error)
	Report(ctx context.Context, userID string) (assistantuc.Report, error)
}

// ExpenseService manages expenses.
type ExpenseService interface {
	Create(ctx context.Context, userID string, d domexp.Draft) (domexp.Expense, error)
	Update(ctx context.Context, userID string, id uuid.UUID, d domexp.Draft) (domexp.Expense, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	List(ctx context.Context, userID string) ([]domexp.Expense, error)
}

// GoalService manages savings goals.
type GoalService interface {
	Create(ctx context.Context, userID string, d domgoal.Draft) (domgoal.Goal, error)
	List(ctx context.Context, userID string) ([]domgoal.Goal, error)
}

// HealthService aggregates component checks.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}
