package expense

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
)

const (
	fieldID        = "id"
	fieldUserID    = "user_id"
	fieldAmount    = "amount"
	fieldCategory  = "category"
	fieldDate      = "date"
	fieldNotes     = "notes"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

func expenseToHash(e domexp.Expense) map[string]string {
	return map[string]string{
		fieldID:        e.ID().String(),
		fieldUserID:    e.UserID(),
		fieldAmount:    e.Amount().String(),
		fieldCategory:  e.Category(),
		fieldDate:      e.DateString(),
		fieldNotes:     e.Notes(),
		fieldCreatedAt: e.CreatedAt().UTC().Format(time.RFC3339Nano),
		fieldUpdatedAt: e.UpdatedAt().UTC().Format(time.RFC3339Nano),
	}
}

func expenseFromHash(m map[string]string) (domexp.Expense, error) {
	id, err := uuid.Parse(m[fieldID])
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("invalid %s: %w", fieldID, err)
	}
	amount, err := decimal.NewFromString(m[fieldAmount])
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("invalid %s: %w", fieldAmount, err)
	}
	date, err := time.Parse(time.DateOnly, m[fieldDate])
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("invalid %s: %w", fieldDate, err)
	}
	createdAt, err := parseTimestamp(m[fieldCreatedAt])
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("invalid %s: %w", fieldCreatedAt, err)
	}
	updatedAt, err := parseTimestamp(m[fieldUpdatedAt])
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("invalid %s: %w", fieldUpdatedAt, err)
	}

	return domexp.Reconstruct(
		id, m[fieldUserID], amount, m[fieldCategory], date, m[fieldNotes], createdAt, updatedAt,
	), nil
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// score orders the per-user index by expense date, then by creation time within a day.
func score(e domexp.Expense) float64 {
	created := e.CreatedAt().UTC()
	day := float64(e.Date().Unix())
	secOfDay := float64(created.Sub(domexp.TruncateToDate(created)) / time.Second)
	return day + secOfDay/86400
}
