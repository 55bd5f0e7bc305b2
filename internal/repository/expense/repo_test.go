package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/fintrack/internal/domain"
)

const testKey = "fintrack:expense:0b6f1b2e-4d7a-4c1e-9a51-3f1f6f0c2a11"

// --- Create ---

func TestCreate_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	e := testExpense(t)

	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		if key != testKey {
			t.Errorf("unexpected key: %s", key)
		}
		if fields[fieldAmount] != "42.5" || fields[fieldDate] != "2026-10-15" {
			t.Errorf("unexpected fields: %v", fields)
		}
		return nil
	}
	ms.zaddFn = func(_ context.Context, key string, score float64, member string) error {
		if key != "fintrack:user:user-1:expenses" {
			t.Errorf("unexpected index key: %s", key)
		}
		if member != testID.String() {
			t.Errorf("unexpected member: %s", member)
		}
		day := float64(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC).Unix())
		if score < day || score >= day+1 {
			t.Errorf("score %f outside expense day", score)
		}
		return nil
	}

	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreate_IndexError_RollsBack(t *testing.T) {
	repo, ms := newTestRepo(t)

	var deleted string
	ms.zaddFn = func(_ context.Context, _ string, _ float64, _ string) error {
		return errors.New("OOM")
	}
	ms.delFn = func(_ context.Context, key string) error {
		deleted = key
		return nil
	}

	if err := repo.Create(context.Background(), testExpense(t)); err == nil {
		t.Fatal("expected error")
	}
	if deleted != testKey {
		t.Errorf("rollback deleted %q, want %q", deleted, testKey)
	}
}

func TestCreate_IndexError_RollbackFails(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.zaddFn = func(_ context.Context, _ string, _ float64, _ string) error { return errors.New("OOM") }
	ms.delFn = func(_ context.Context, _ string) error { return errors.New("gone") }

	err := repo.Create(context.Background(), testExpense(t))
	if err == nil || err.Error() == "" {
		t.Fatal("expected joined error")
	}
}

// --- Get ---

func TestGet_RoundTrip(t *testing.T) {
	repo, ms := newTestRepo(t)
	want := testExpense(t)
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return expenseToHash(want), nil
	}

	got, err := repo.Get(context.Background(), "user-1", testID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Amount().Equal(want.Amount()) || got.Category() != "Food" || got.Notes() != "lunch" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.Date().Equal(want.Date()) || !got.CreatedAt().Equal(want.CreatedAt()) {
		t.Errorf("timestamps mismatch")
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Get(context.Background(), "user-1", uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_OtherOwner(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return expenseToHash(testExpense(t)), nil
	}
	_, err := repo.Get(context.Background(), "user-2", testID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign expense, got %v", err)
	}
}

// --- Update ---

func TestUpdate_RescoresIndex(t *testing.T) {
	repo, ms := newTestRepo(t)
	var zadded bool
	ms.zaddFn = func(_ context.Context, _ string, _ float64, member string) error {
		zadded = member == testID.String()
		return nil
	}
	if err := repo.Update(context.Background(), testExpense(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !zadded {
		t.Error("expected index update")
	}
}

// --- Delete ---

func TestDelete_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return expenseToHash(testExpense(t)), nil
	}
	var delKey string
	var removed []string
	ms.delFn = func(_ context.Context, key string) error {
		delKey = key
		return nil
	}
	ms.zremFn = func(_ context.Context, key string, members ...string) error {
		if key != "fintrack:user:user-1:expenses" {
			t.Errorf("unexpected index key: %s", key)
		}
		removed = members
		return nil
	}

	if err := repo.Delete(context.Background(), "user-1", testID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delKey != testKey {
		t.Errorf("deleted %q", delKey)
	}
	if len(removed) != 1 || removed[0] != testID.String() {
		t.Errorf("unexpected ZREM members: %v", removed)
	}
}

func TestDelete_NotOwned(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return expenseToHash(testExpense(t)), nil
	}
	ms.delFn = func(_ context.Context, _ string) error {
		t.Error("DEL must not run for a foreign expense")
		return nil
	}
	err := repo.Delete(context.Background(), "intruder", testID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// --- List ---

func TestList_Limit(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.zrevRangeFn = func(_ context.Context, _ string, start, stop int64) ([]string, error) {
		if start != 0 || stop != 49 {
			t.Errorf("range = [%d, %d], want [0, 49]", start, stop)
		}
		return nil, nil
	}
	got, err := repo.List(context.Background(), "user-1", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestList_Unbounded(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.zrevRangeFn = func(_ context.Context, _ string, _, stop int64) ([]string, error) {
		if stop != -1 {
			t.Errorf("stop = %d, want -1", stop)
		}
		return nil, nil
	}
	if _, err := repo.List(context.Background(), "user-1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_SkipsDanglingIndexEntries(t *testing.T) {
	repo, ms := newTestRepo(t)
	ghost := uuid.New()
	ms.zrevRangeFn = func(_ context.Context, _ string, _, _ int64) ([]string, error) {
		return []string{testID.String(), ghost.String()}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		if len(keys) != 2 || keys[0] != testKey {
			t.Errorf("unexpected keys: %v", keys)
		}
		return []map[string]string{expenseToHash(testExpense(t)), {}}, nil
	}

	got, err := repo.List(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != testID {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestList_CorruptRecord(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.zrevRangeFn = func(_ context.Context, _ string, _, _ int64) ([]string, error) {
		return []string{testID.String()}, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, _ []string) ([]map[string]string, error) {
		return []map[string]string{{fieldID: testID.String(), fieldAmount: "lots"}}, nil
	}
	if _, err := repo.List(context.Background(), "user-1", 0); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestScore_OrdersWithinDay(t *testing.T) {
	early := testExpense(t)

	m := expenseToHash(early)
	m[fieldCreatedAt] = time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)
	late, err := expenseFromHash(m)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if score(late) <= score(early) {
		t.Errorf("later creation on the same date must rank higher: %f <= %f", score(late), score(early))
	}
}
