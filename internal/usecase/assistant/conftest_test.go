package assistant

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kailas-cloud/fintrack/internal/domain"
	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

// --- Mocks ---

type mockCompleter struct {
	streamFn   func(ctx context.Context, system string, history []domain.Message) (domain.Stream, error)
	completeFn func(ctx context.Context, prompt string) (domain.Completion, error)
}

func (m *mockCompleter) StreamCompletion(
	ctx context.Context, system string, history []domain.Message,
) (domain.Stream, error) {
	if m.streamFn != nil {
		return m.streamFn(ctx, system, history)
	}
	return &sliceStream{}, nil
}

func (m *mockCompleter) CompleteText(ctx context.Context, prompt string) (domain.Completion, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, prompt)
	}
	return domain.Completion{Text: "report"}, nil
}

type sliceStream struct {
	chunks []string
	closed bool
}

func (s *sliceStream) Recv() (string, error) {
	if len(s.chunks) == 0 {
		return "", io.EOF
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	return c, nil
}

func (s *sliceStream) Close() error {
	s.closed = true
	return nil
}

type mockExpenses struct {
	listFn func(ctx context.Context, userID string, limit int) ([]domexp.Expense, error)
}

func (m *mockExpenses) List(ctx context.Context, userID string, limit int) ([]domexp.Expense, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockGoals struct {
	listFn func(ctx context.Context, userID string) ([]domgoal.Goal, error)
}

func (m *mockGoals) List(ctx context.Context, userID string) ([]domgoal.Goal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

type mockQuota struct {
	consumeErr error
	releaseErr error
	consumed   int
	released   int
}

func (m *mockQuota) Consume(_ context.Context, _ string) error {
	if m.consumeErr != nil {
		return m.consumeErr
	}
	m.consumed++
	return nil
}

func (m *mockQuota) Release(ctx context.Context, _ string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	m.released++
	return m.releaseErr
}

// --- Fixtures ---

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newExpense(t *testing.T, amount, category string, date time.Time, notes string) domexp.Expense {
	t.Helper()
	e, err := domexp.New(uuid.New(), "user-1", domexp.Draft{
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
		Notes:    notes,
	}, testNow)
	if err != nil {
		t.Fatalf("new expense: %v", err)
	}
	return e
}

func newGoal(t *testing.T, title, current, target string, date time.Time) domgoal.Goal {
	t.Helper()
	g, err := domgoal.New(uuid.New(), "user-1", domgoal.Draft{
		Title:         title,
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
		TargetDate:    date,
	}, testNow)
	if err != nil {
		t.Fatalf("new goal: %v", err)
	}
	return g
}

type fixture struct {
	svc       *Service
	completer *mockCompleter
	expenses  *mockExpenses
	goals     *mockGoals
	quota     *mockQuota
}

func newFixture() *fixture {
	f := &fixture{
		completer: &mockCompleter{},
		expenses:  &mockExpenses{},
		goals:     &mockGoals{},
		quota:     &mockQuota{},
	}
	f.svc = New(f.completer, f.expenses, f.goals, f.quota, nil).
		WithClock(func() time.Time { return testNow })
	return f
}

var userHistory = []domain.Message{{Role: domain.RoleUser, Content: "How am I doing?"}}
