package goal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

const (
	fieldID            = "id"
	fieldUserID        = "user_id"
	fieldTitle         = "title"
	fieldTargetAmount  = "target_amount"
	fieldCurrentAmount = "current_amount"
	fieldTargetDate    = "target_date"
	fieldCreatedAt     = "created_at"
)

func goalToHash(g domgoal.Goal) map[string]string {
	m := map[string]string{
		fieldID:            g.ID().String(),
		fieldUserID:        g.UserID(),
		fieldTitle:         g.Title(),
		fieldTargetAmount:  g.TargetAmount().String(),
		fieldCurrentAmount: g.CurrentAmount().String(),
		fieldCreatedAt:     g.CreatedAt().UTC().Format(time.RFC3339Nano),
	}
	if d, ok := g.TargetDate(); ok {
		m[fieldTargetDate] = d.Format(time.DateOnly)
	}
	return m
}

func goalFromHash(m map[string]string) (domgoal.Goal, error) {
	id, err := uuid.Parse(m[fieldID])
	if err != nil {
		return domgoal.Goal{}, fmt.Errorf("invalid %s: %w", fieldID, err)
	}
	target, err := decimal.NewFromString(m[fieldTargetAmount])
	if err != nil {
		return domgoal.Goal{}, fmt.Errorf("invalid %s: %w", fieldTargetAmount, err)
	}
	current := decimal.Zero
	if s := m[fieldCurrentAmount]; s != "" {
		if current, err = decimal.NewFromString(s); err != nil {
			return domgoal.Goal{}, fmt.Errorf("invalid %s: %w", fieldCurrentAmount, err)
		}
	}
	var targetDate time.Time
	if s := m[fieldTargetDate]; s != "" {
		if targetDate, err = time.Parse(time.DateOnly, s); err != nil {
			return domgoal.Goal{}, fmt.Errorf("invalid %s: %w", fieldTargetDate, err)
		}
	}
	var createdAt time.Time
	if s := m[fieldCreatedAt]; s != "" {
		if createdAt, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return domgoal.Goal{}, fmt.Errorf("invalid %s: %w", fieldCreatedAt, err)
		}
	}

	return domgoal.Reconstruct(id, m[fieldUserID], m[fieldTitle], target, current, targetDate, createdAt), nil
}
