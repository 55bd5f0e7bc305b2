package expense

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxCategoryLen = 64
	maxNotesLen    = 500
)

// SuggestedCategories are offered to clients; any non-empty label is accepted.
var SuggestedCategories = []string{
	"Food", "Transportation", "Entertainment", "Shopping", "Bills", "Healthcare", "Other",
}

// Draft carries user-editable expense fields.
type Draft struct {
	Amount   decimal.Decimal
	Category string
	Date     time.Time
	Notes    string
}

// Expense is a single spending record owned by a user (immutable value object).
type Expense struct {
	id        uuid.UUID
	userID    string
	amount    decimal.Decimal
	category  string
	date      time.Time
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

func (d Draft) normalize() (Draft, error) {
	if d.Amount.IsNegative() {
		return Draft{}, fmt.Errorf("amount must not be negative")
	}
	d.Category = strings.TrimSpace(d.Category)
	if d.Category == "" {
		return Draft{}, fmt.Errorf("category is required")
	}
	if len(d.Category) > maxCategoryLen {
		return Draft{}, fmt.Errorf("category too long (max %d)", maxCategoryLen)
	}
	if d.Date.IsZero() {
		return Draft{}, fmt.Errorf("date is required")
	}
	d.Notes = strings.TrimSpace(d.Notes)
	if len(d.Notes) > maxNotesLen {
		return Draft{}, fmt.Errorf("notes too long (max %d)", maxNotesLen)
	}
	d.Date = TruncateToDate(d.Date)
	return d, nil
}

// New validates a draft and creates an Expense for userID.
func New(id uuid.UUID, userID string, d Draft, now time.Time) (Expense, error) {
	if userID == "" {
		return Expense{}, fmt.Errorf("user id is required")
	}
	d, err := d.normalize()
	if err != nil {
		return Expense{}, err
	}
	now = now.UTC()
	return Expense{
		id:        id,
		userID:    userID,
		amount:    d.Amount,
		category:  d.Category,
		date:      d.Date,
		notes:     d.Notes,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct hydrates an Expense from storage without validation.
func Reconstruct(
	id uuid.UUID, userID string, amount decimal.Decimal, category string,
	date time.Time, notes string, createdAt, updatedAt time.Time,
) Expense {
	return Expense{
		id:        id,
		userID:    userID,
		amount:    amount,
		category:  category,
		date:      date,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update returns a copy with the draft applied. Identity, owner and creation time are kept.
func (e Expense) Update(d Draft, now time.Time) (Expense, error) {
	d, err := d.normalize()
	if err != nil {
		return Expense{}, err
	}
	e.amount = d.Amount
	e.category = d.Category
	e.date = d.Date
	e.notes = d.Notes
	e.updatedAt = now.UTC()
	return e, nil
}

// ID returns the expense identifier.
func (e Expense) ID() uuid.UUID { return e.id }

// UserID returns the owner.
func (e Expense) UserID() string { return e.userID }

// Amount returns the spent amount.
func (e Expense) Amount() decimal.Decimal { return e.amount }

// Category returns the free-form category label.
func (e Expense) Category() string { return e.category }

// Date returns the spending date (UTC midnight).
func (e Expense) Date() time.Time { return e.date }

// Notes returns the optional note.
func (e Expense) Notes() string { return e.notes }

// CreatedAt returns the creation time.
func (e Expense) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns the last modification time.
func (e Expense) UpdatedAt() time.Time { return e.updatedAt }

// DateString formats the date as YYYY-MM-DD.
func (e Expense) DateString() string { return e.date.Format(time.DateOnly) }

// MonthKey formats the date as YYYY-MM.
func (e Expense) MonthKey() string { return e.date.Format("2006-01") }

// TruncateToDate keeps the calendar date of t (in its own zone) as UTC midnight.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
