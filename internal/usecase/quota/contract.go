package quota

import (
	"context"
	"time"

	domuser "github.com/kailas-cloud/fintrack/internal/domain/user"
)

// Ledger is the storage contract for the per-user monthly AI counter.
type Ledger interface {
	Get(ctx context.Context, userID string) (domuser.User, error)
	ApplyRolloverIfNewMonth(ctx context.Context, userID string, now time.Time) (int, error)
	Increment(ctx context.Context, userID string) (int, error)
	TryConsume(ctx context.Context, userID string, now time.Time, limit int) (allowed bool, used int, err error)
	Refund(ctx context.Context, userID string) (int, error)
}
