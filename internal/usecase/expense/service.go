package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/fintrack/internal/domain"
	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
)

// Service handles expense CRUD scoped to the owning user.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() uuid.UUID
}

// New creates an expense service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now, newID: uuid.New}
}

// Create validates the draft and stores a new expense.
func (s *Service) Create(ctx context.Context, userID string, d domexp.Draft) (domexp.Expense, error) {
	e, err := domexp.New(s.newID(), userID, d, s.now())
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return domexp.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	return e, nil
}

// Update replaces the editable fields of an owned expense.
func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, d domexp.Draft) (domexp.Expense, error) {
	current, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("get expense: %w", err)
	}
	updated, err := current.Update(d, s.now())
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return domexp.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	return updated, nil
}

// Delete removes an owned expense.
func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// List returns all of the user's expenses, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]domexp.Expense, error) {
	out, err := s.repo.List(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return out, nil
}
