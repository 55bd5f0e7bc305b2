package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/fintrack/internal/domain"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

// Service handles savings goals.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() uuid.UUID
}

// New creates a goal service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now, newID: uuid.New}
}

// Create validates the draft and stores a new goal.
func (s *Service) Create(ctx context.Context, userID string, d domgoal.Draft) (domgoal.Goal, error) {
	g, err := domgoal.New(s.newID(), userID, d, s.now())
	if err != nil {
		return domgoal.Goal{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return domgoal.Goal{}, fmt.Errorf("create goal: %w", err)
	}
	return g, nil
}

// List returns the user's goals, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]domgoal.Goal, error) {
	out, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return out, nil
}
