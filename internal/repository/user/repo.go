package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/fintrack/internal/db"
	"github.com/kailas-cloud/fintrack/internal/domain"
	domuser "github.com/kailas-cloud/fintrack/internal/domain/user"
)

// DefaultKeyPrefix namespaces every key written by the repository.
const DefaultKeyPrefix = "fintrack:"

// store is the consumer interface for the usage ledger (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	EvalInts(ctx context.Context, script *db.Script, keys, args []string) ([]int64, error)
}

// Repo is the usage ledger: user records plus their monthly AI counter.
type Repo struct {
	store  store
	prefix string
}

// New creates a user repository.
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

// Create stores a new user. Returns domain.ErrAlreadyExists if the id is taken.
func (r *Repo) Create(ctx context.Context, u domuser.User) error {
	key := r.key(u.ID())
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return domain.ErrAlreadyExists
	}
	if err := r.store.HSet(ctx, key, userToHash(u)); err != nil {
		return fmt.Errorf("hset user %s: %w", u.ID(), err)
	}
	return nil
}

// Get reads the user together with the raw, not yet rolled over, usage counter.
func (r *Repo) Get(ctx context.Context, userID string) (domuser.User, error) {
	m, err := r.store.HGetAll(ctx, r.key(userID))
	if err != nil {
		return domuser.User{}, fmt.Errorf("hgetall user %s: %w", userID, err)
	}
	if len(m) == 0 {
		return domuser.User{}, domain.ErrUserNotFound
	}
	return userFromHash(m)
}

// SetPremium switches the user between the free and premium plans.
func (r *Repo) SetPremium(ctx context.Context, userID string, premium bool) error {
	key := r.key(userID)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	if err := r.store.HSet(ctx, key, map[string]string{fieldPremium: formatBool(premium)}); err != nil {
		return fmt.Errorf("hset user %s: %w", userID, err)
	}
	return nil
}

// ApplyRolloverIfNewMonth zeroes the counter and moves the anchor to now
// when now falls in a later calendar month. Returns the counter afterwards.
func (r *Repo) ApplyRolloverIfNewMonth(ctx context.Context, userID string, now time.Time) (int, error) {
	res, err := r.eval(ctx, rolloverScript, userID, windowArgs(now)...)
	if err != nil {
		return 0, err
	}
	return int(res[0]), nil
}

// Increment adds one unit without any limit check.
func (r *Repo) Increment(ctx context.Context, userID string) (int, error) {
	key := r.key(userID)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("check exists: %w", err)
	}
	if !exists {
		return 0, domain.ErrUserNotFound
	}
	used, err := r.store.HIncrBy(ctx, key, fieldAIUsed, 1)
	if err != nil {
		return 0, fmt.Errorf("hincrby user %s: %w", userID, err)
	}
	return int(used), nil
}

// TryConsume rolls the window over if needed and takes one unit when the
// user is premium or below limit. The whole step is a single script.
func (r *Repo) TryConsume(ctx context.Context, userID string, now time.Time, limit int) (bool, int, error) {
	args := append(windowArgs(now), strconv.Itoa(limit))
	res, err := r.eval(ctx, consumeScript, userID, args...)
	if err != nil {
		return false, 0, err
	}
	if len(res) < 2 {
		return false, 0, fmt.Errorf("%s: unexpected reply %v", consumeScript.Name(), res)
	}
	return res[0] == 1, int(res[1]), nil
}

// Refund gives one unit back, never dropping below zero.
func (r *Repo) Refund(ctx context.Context, userID string) (int, error) {
	res, err := r.eval(ctx, refundScript, userID)
	if err != nil {
		return 0, err
	}
	return int(res[0]), nil
}

func (r *Repo) eval(ctx context.Context, script *db.Script, userID string, args ...string) ([]int64, error) {
	res, err := r.store.EvalInts(ctx, script, []string{r.key(userID)}, args)
	if err != nil {
		return nil, fmt.Errorf("%s user %s: %w", script.Name(), userID, err)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%s: empty reply", script.Name())
	}
	if res[0] == -1 {
		return nil, domain.ErrUserNotFound
	}
	return res, nil
}

func (r *Repo) key(userID string) string {
	return r.prefix + "user:" + userID
}

// windowArgs are the month token and anchor value the scripts compare against.
func windowArgs(now time.Time) []string {
	now = now.UTC()
	return []string{now.Format("2006-01"), formatTime(now)}
}
