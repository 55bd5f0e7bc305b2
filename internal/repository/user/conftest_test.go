package user

import (
	"context"
	"testing"
	"time"

	"github.com/kailas-cloud/fintrack/internal/db"
	domuser "github.com/kailas-cloud/fintrack/internal/domain/user"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn    func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn func(ctx context.Context, key string) (map[string]string, error)
	hincrByFn func(ctx context.Context, key, field string, delta int64) (int64, error)
	existsFn  func(ctx context.Context, key string) (bool, error)
	evalFn    func(ctx context.Context, script *db.Script, keys, args []string) ([]int64, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error) {
	if m.hincrByFn != nil {
		return m.hincrByFn(ctx, key, field, delta)
	}
	return delta, nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) EvalInts(ctx context.Context, script *db.Script, keys, args []string) ([]int64, error) {
	if m.evalFn != nil {
		return m.evalFn(ctx, script, keys, args)
	}
	return []int64{0}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

var testNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func testUser(t *testing.T) domuser.User {
	t.Helper()
	u, err := domuser.New("user-1", "a@example.com", false, testNow)
	if err != nil {
		t.Fatalf("new user: %v", err)
	}
	return u
}
