package usage

import (
	"time"

	"github.com/kailas-cloud/fintrack/internal/domain"
)

const (
	// DefaultFreeMonthlyLimit is the monthly AI allowance of non-premium accounts.
	DefaultFreeMonthlyLimit = 20
	// Unlimited is the externally reported limit and remaining value for premium accounts.
	Unlimited = -1
)

// SameMonth reports whether a and b fall in the same calendar month (UTC).
func SameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// EffectiveUsed returns the counter value as it would read after a rollover check at now.
func EffectiveUsed(used int, anchor, now time.Time) int {
	if !SameMonth(anchor, now) {
		return 0
	}
	return used
}

// Decision is the outcome of a quota check.
type Decision struct {
	allowed bool
	reason  string
}

// Allow returns a permitting decision.
func Allow() Decision { return Decision{allowed: true} }

// Deny returns a rejecting decision with a reason.
func Deny(reason string) Decision { return Decision{reason: reason} }

// Decide applies the quota policy: premium is unbounded, otherwise used must stay below limit.
func Decide(premium bool, used, limit int) Decision {
	if premium || used < limit {
		return Allow()
	}
	return Deny(domain.ErrQuotaExceeded.Error())
}

// Allowed reports whether one unit may be consumed.
func (d Decision) Allowed() bool { return d.allowed }

// Reason returns the denial reason, empty when allowed.
func (d Decision) Reason() string { return d.reason }

// Status is the read-only usage view shown to clients.
type Status struct {
	premium        bool
	used           int
	limit          int
	remaining      int
	canSendMessage bool
}

// NewStatus builds the status view for a counter already adjusted for rollover.
func NewStatus(premium bool, used, limit int) Status {
	s := Status{
		premium:        premium,
		used:           used,
		limit:          Unlimited,
		remaining:      Unlimited,
		canSendMessage: Decide(premium, used, limit).Allowed(),
	}
	if !premium {
		s.limit = limit
		s.remaining = max(0, limit-used)
	}
	return s
}

// IsPremium reports whether the account is unmetered.
func (s Status) IsPremium() bool { return s.premium }

// Used returns the units consumed this month.
func (s Status) Used() int { return s.used }

// Limit returns the monthly cap, or Unlimited.
func (s Status) Limit() int { return s.limit }

// Remaining returns units left this month, or Unlimited.
func (s Status) Remaining() int { return s.remaining }

// CanSendMessage mirrors the quota decision without consuming anything.
func (s Status) CanSendMessage() bool { return s.canSendMessage }
