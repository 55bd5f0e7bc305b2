package goal

import (
	"context"
	"errors"
	"fmt"

	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
)

// DefaultKeyPrefix namespaces every key written by the repository.
const DefaultKeyPrefix = "fintrack:"

// store is the consumer interface for savings goals (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo stores savings goals indexed per user by creation time.
type Repo struct {
	store  store
	prefix string
}

// New creates a goal repository.
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

// Create stores the goal then indexes it, removing the record if indexing fails.
func (r *Repo) Create(ctx context.Context, g domgoal.Goal) error {
	key := r.key(g.ID().String())
	if err := r.store.HSet(ctx, key, goalToHash(g)); err != nil {
		return fmt.Errorf("hset goal %s: %w", g.ID(), err)
	}
	score := float64(g.CreatedAt().UnixMilli())
	if err := r.store.ZAdd(ctx, r.indexKey(g.UserID()), score, g.ID().String()); err != nil {
		cleanupErr := r.store.Del(ctx, key)
		return errors.Join(fmt.Errorf("index goal %s: %w", g.ID(), err), cleanupErr)
	}
	return nil
}

// List returns every goal of the user, newest first.
func (r *Repo) List(ctx context.Context, userID string) ([]domgoal.Goal, error) {
	ids, err := r.store.ZRevRange(ctx, r.indexKey(userID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("list goal ids: %w", err)
	}
	if len(ids) == 0 {
		return []domgoal.Goal{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}

	out := make([]domgoal.Goal, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		g, err := goalFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse goal %s: %w", ids[i], err)
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *Repo) key(id string) string {
	return r.prefix + "goal:" + id
}

func (r *Repo) indexKey(userID string) string {
	return r.prefix + "user:" + userID + ":goals"
}
