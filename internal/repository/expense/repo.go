package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/fintrack/internal/domain"
	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
)

// DefaultKeyPrefix namespaces every key written by the repository.
const DefaultKeyPrefix = "fintrack:"

// store is the consumer interface for expenses (ISP).
//
//nolint:interfacebloat // expense repo needs hash records plus a sorted index
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo stores expenses as hashes with a per-user date-ordered index.
type Repo struct {
	store  store
	prefix string
}

// New creates an expense repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: DefaultKeyPrefix}
}

// WithPrefix overrides the key prefix.
func (r *Repo) WithPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// Create stores the record then indexes it. The record is removed if indexing fails.
func (r *Repo) Create(ctx context.Context, e domexp.Expense) error {
	key := r.key(e.ID())
	if err := r.store.HSet(ctx, key, expenseToHash(e)); err != nil {
		return fmt.Errorf("hset expense %s: %w", e.ID(), err)
	}
	if err := r.store.ZAdd(ctx, r.indexKey(e.UserID()), score(e), e.ID().String()); err != nil {
		cleanupErr := r.store.Del(ctx, key)
		return errors.Join(fmt.Errorf("index expense %s: %w", e.ID(), err), cleanupErr)
	}
	return nil
}

// Get returns the expense if it exists and belongs to userID, else domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID string, id uuid.UUID) (domexp.Expense, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		return domexp.Expense{}, fmt.Errorf("hgetall expense %s: %w", id, err)
	}
	if len(m) == 0 || m[fieldUserID] != userID {
		return domexp.Expense{}, domain.ErrNotFound
	}
	return expenseFromHash(m)
}

// Update overwrites a stored expense and re-scores it in the index.
func (r *Repo) Update(ctx context.Context, e domexp.Expense) error {
	if err := r.store.HSet(ctx, r.key(e.ID()), expenseToHash(e)); err != nil {
		return fmt.Errorf("hset expense %s: %w", e.ID(), err)
	}
	if err := r.store.ZAdd(ctx, r.indexKey(e.UserID()), score(e), e.ID().String()); err != nil {
		return fmt.Errorf("index expense %s: %w", e.ID(), err)
	}
	return nil
}

// Delete removes an owned expense and its index entry.
func (r *Repo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := r.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := r.store.Del(ctx, r.key(id)); err != nil {
		return fmt.Errorf("del expense %s: %w", id, err)
	}
	if err := r.store.ZRem(ctx, r.indexKey(userID), id.String()); err != nil {
		return fmt.Errorf("unindex expense %s: %w", id, err)
	}
	return nil
}

// List returns the user's expenses newest first. limit <= 0 returns all of them.
func (r *Repo) List(ctx context.Context, userID string, limit int) ([]domexp.Expense, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	ids, err := r.store.ZRevRange(ctx, r.indexKey(userID), 0, stop)
	if err != nil {
		return nil, fmt.Errorf("list expense ids: %w", err)
	}
	if len(ids) == 0 {
		return []domexp.Expense{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.prefix+"expense:"+id)
	}
	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	out := make([]domexp.Expense, 0, len(results))
	for i, m := range results {
		// Index entries can outlive their record if a delete was interrupted.
		if len(m) == 0 {
			continue
		}
		e, err := expenseFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse expense %s: %w", ids[i], err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Repo) key(id uuid.UUID) string {
	return r.prefix + "expense:" + id.String()
}

func (r *Repo) indexKey(userID string) string {
	return r.prefix + "user:" + userID + ":expenses"
}
