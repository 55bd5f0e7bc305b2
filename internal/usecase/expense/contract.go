package expense

import (
	"context"

	"github.com/google/uuid"

	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
)

// Repository defines the storage contract for expenses.
type Repository interface {
	Create(ctx context.Context, e domexp.Expense) error
	Get(ctx context.Context, userID string, id uuid.UUID) (domexp.Expense, error)
	Update(ctx context.Context, e domexp.Expense) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	List(ctx context.Context, userID string, limit int) ([]domexp.Expense, error)
}
