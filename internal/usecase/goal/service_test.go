package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/fintrack/internal/domain"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

type mockRepo struct {
	created []domgoal.Goal
	listErr error
}

func (m *mockRepo) Create(_ context.Context, g domgoal.Goal) error {
	m.created = append(m.created, g)
	return nil
}

func (m *mockRepo) List(_ context.Context, _ string) ([]domgoal.Goal, error) {
	return m.created, m.listErr
}

func TestCreate_DefaultsCurrentToZero(t *testing.T) {
	repo := &mockRepo{}
	g, err := New(repo).Create(context.Background(), "user-1", domgoal.Draft{
		Title:        "Emergency fund",
		TargetAmount: decimal.NewFromInt(3000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.CurrentAmount().IsZero() {
		t.Errorf("current = %s, want 0", g.CurrentAmount())
	}
	if _, ok := g.TargetDate(); ok {
		t.Error("expected no target date")
	}
	if len(repo.created) != 1 {
		t.Error("goal not persisted")
	}
}

func TestCreate_Invalid(t *testing.T) {
	repo := &mockRepo{}
	_, err := New(repo).Create(context.Background(), "user-1", domgoal.Draft{Title: "  "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("invalid goal persisted")
	}
}

func TestList_Error(t *testing.T) {
	repo := &mockRepo{listErr: errors.New("down")}
	if _, err := New(repo).List(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error")
	}
}
