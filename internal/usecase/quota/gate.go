package quota

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/fintrack/internal/domain"
	"github.com/kailas-cloud/fintrack/internal/domain/usage"
	domuser "github.com/kailas-cloud/fintrack/internal/domain/user"
	"github.com/kailas-cloud/fintrack/internal/logger"
	"github.com/kailas-cloud/fintrack/internal/metrics"
)

// Gate decides whether a user may spend an AI unit this month.
type Gate struct {
	ledger Ledger
	limit  int
	now    func() time.Time
	logger *zap.Logger
}

// New creates a Gate. limit <= 0 falls back to usage.DefaultFreeMonthlyLimit.
func New(ledger Ledger, limit int, l *zap.Logger) *Gate {
	if limit <= 0 {
		limit = usage.DefaultFreeMonthlyLimit
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &Gate{ledger: ledger, limit: limit, now: time.Now, logger: l}
}

// WithClock replaces the wall clock.
func (g *Gate) WithClock(now func() time.Time) *Gate {
	if now != nil {
		g.now = now
	}
	return g
}

// Limit returns the monthly allowance of non-premium users.
func (g *Gate) Limit() int { return g.limit }

// Check evaluates the quota without charging a unit.
func (g *Gate) Check(ctx context.Context, userID string) (usage.Decision, error) {
	u, used, err := g.load(ctx, userID)
	if err != nil {
		return usage.Decision{}, err
	}
	d := usage.Decide(u.IsPremium(), used, g.limit)
	observe(d)
	return d, nil
}

// Status reports the counter as seen by clients.
func (g *Gate) Status(ctx context.Context, userID string) (usage.Status, error) {
	u, used, err := g.load(ctx, userID)
	if err != nil {
		return usage.Status{}, err
	}
	return usage.NewStatus(u.IsPremium(), used, g.limit), nil
}

// Consume charges one unit if the user is premium or still under the limit.
// Returns domain.ErrQuotaExceeded otherwise, leaving the counter untouched.
func (g *Gate) Consume(ctx context.Context, userID string) error {
	allowed, used, err := g.ledger.TryConsume(ctx, userID, g.now(), g.limit)
	if err != nil {
		return fmt.Errorf("consume unit: %w", err)
	}
	if !allowed {
		metrics.QuotaDecisionsTotal.WithLabelValues("denied").Inc()
		logger.FromContextOr(ctx, g.logger).Info("AI quota exhausted",
			zap.String("user_id", userID),
			zap.Int("used", used),
			zap.Int("limit", g.limit),
		)
		return domain.ErrQuotaExceeded
	}
	metrics.QuotaDecisionsTotal.WithLabelValues("allowed").Inc()
	metrics.QuotaUnitsTotal.WithLabelValues("consume").Inc()
	return nil
}

// Record charges one unit unconditionally, in the current month's window.
func (g *Gate) Record(ctx context.Context, userID string) error {
	if _, err := g.ledger.ApplyRolloverIfNewMonth(ctx, userID, g.now()); err != nil {
		return fmt.Errorf("rollover: %w", err)
	}
	if _, err := g.ledger.Increment(ctx, userID); err != nil {
		return fmt.Errorf("record unit: %w", err)
	}
	metrics.QuotaUnitsTotal.WithLabelValues("record").Inc()
	return nil
}

// Release gives back a unit charged by Consume.
func (g *Gate) Release(ctx context.Context, userID string) error {
	if _, err := g.ledger.Refund(ctx, userID); err != nil {
		return fmt.Errorf("refund unit: %w", err)
	}
	metrics.QuotaUnitsTotal.WithLabelValues("refund").Inc()
	return nil
}

// load reads the user and brings its window up to date.
func (g *Gate) load(ctx context.Context, userID string) (domuser.User, int, error) {
	u, err := g.ledger.Get(ctx, userID)
	if err != nil {
		return domuser.User{}, 0, fmt.Errorf("get user: %w", err)
	}
	used, err := g.ledger.ApplyRolloverIfNewMonth(ctx, userID, g.now())
	if err != nil {
		return domuser.User{}, 0, fmt.Errorf("rollover: %w", err)
	}
	return u, used, nil
}

func observe(d usage.Decision) {
	if d.Allowed() {
		metrics.QuotaDecisionsTotal.WithLabelValues("allowed").Inc()
		return
	}
	metrics.QuotaDecisionsTotal.WithLabelValues("denied").Inc()
}
