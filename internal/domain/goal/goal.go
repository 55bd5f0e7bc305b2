package goal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxTitleLen = 128

// Draft carries user-supplied savings goal fields. A zero TargetDate means "no deadline".
type Draft struct {
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
}

// Goal is a savings target owned by a user (immutable value object).
type Goal struct {
	id            uuid.UUID
	userID        string
	title         string
	targetAmount  decimal.Decimal
	currentAmount decimal.Decimal
	targetDate    time.Time
	createdAt     time.Time
}

// New validates a draft and creates a Goal for userID.
func New(id uuid.UUID, userID string, d Draft, now time.Time) (Goal, error) {
	if userID == "" {
		return Goal{}, fmt.Errorf("user id is required")
	}
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Goal{}, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLen {
		return Goal{}, fmt.Errorf("title too long (max %d)", maxTitleLen)
	}
	if !d.TargetAmount.IsPositive() {
		return Goal{}, fmt.Errorf("target amount must be positive")
	}
	if d.CurrentAmount.IsNegative() {
		return Goal{}, fmt.Errorf("current amount must not be negative")
	}

	var target time.Time
	if !d.TargetDate.IsZero() {
		y, m, day := d.TargetDate.Date()
		target = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}

	return Goal{
		id:            id,
		userID:        userID,
		title:         title,
		targetAmount:  d.TargetAmount,
		currentAmount: d.CurrentAmount,
		targetDate:    target,
		createdAt:     now.UTC(),
	}, nil
}

// Reconstruct hydrates a Goal from storage without validation.
func Reconstruct(
	id uuid.UUID, userID, title string, targetAmount, currentAmount decimal.Decimal,
	targetDate, createdAt time.Time,
) Goal {
	return Goal{
		id:            id,
		userID:        userID,
		title:         title,
		targetAmount:  targetAmount,
		currentAmount: currentAmount,
		targetDate:    targetDate,
		createdAt:     createdAt,
	}
}

// ID returns the goal identifier.
func (g Goal) ID() uuid.UUID { return g.id }

// UserID returns the owner.
func (g Goal) UserID() string { return g.userID }

// Title returns the goal title.
func (g Goal) Title() string { return g.title }

// TargetAmount returns the amount to save.
func (g Goal) TargetAmount() decimal.Decimal { return g.targetAmount }

// CurrentAmount returns the amount saved so far.
func (g Goal) CurrentAmount() decimal.Decimal { return g.currentAmount }

// TargetDate returns the deadline and whether one is set.
func (g Goal) TargetDate() (time.Time, bool) { return g.targetDate, !g.targetDate.IsZero() }

// CreatedAt returns the creation time.
func (g Goal) CreatedAt() time.Time { return g.createdAt }
