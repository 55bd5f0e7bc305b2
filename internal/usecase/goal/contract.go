package goal

import (
	"context"

	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

// Repository defines the storage contract for savings goals.
type Repository interface {
	Create(ctx context.Context, g domgoal.Goal) error
	List(ctx context.Context, userID string) ([]domgoal.Goal, error)
}
