package usage

import (
	"testing"
	"time"
)

func TestSameMonth(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same day", date(2026, 5, 3), date(2026, 5, 3), true},
		{"month edges", date(2026, 5, 1), time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC), true},
		{"previous month", date(2026, 4, 30), date(2026, 5, 1), false},
		{"same month other year", date(2025, 5, 10), date(2026, 5, 10), false},
		{"zone normalized", time.Date(2026, 6, 1, 1, 0, 0, 0, time.FixedZone("CEST", 2*3600)), date(2026, 5, 20), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameMonth(tc.a, tc.b); got != tc.want {
				t.Errorf("SameMonth() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEffectiveUsed(t *testing.T) {
	if got := EffectiveUsed(12, date(2026, 4, 2), date(2026, 4, 28)); got != 12 {
		t.Errorf("same month: got %d, want 12", got)
	}
	if got := EffectiveUsed(12, date(2026, 3, 31), date(2026, 4, 1)); got != 0 {
		t.Errorf("new month: got %d, want 0", got)
	}
}

func TestDecide(t *testing.T) {
	if !Decide(false, 19, 20).Allowed() {
		t.Error("used=19 should be allowed")
	}
	d := Decide(false, 20, 20)
	if d.Allowed() {
		t.Error("used=20 should be denied")
	}
	if d.Reason() != "monthly limit exceeded" {
		t.Errorf("Reason() = %q", d.Reason())
	}
	if !Decide(true, 1000, 20).Allowed() {
		t.Error("premium should always be allowed")
	}
}

func TestNewStatus_Free(t *testing.T) {
	s := NewStatus(false, 5, 20)
	if s.Limit() != 20 || s.Remaining() != 15 || !s.CanSendMessage() || s.IsPremium() {
		t.Errorf("unexpected status: %+v", s)
	}

	over := NewStatus(false, 21, 20)
	if over.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", over.Remaining())
	}
	if over.CanSendMessage() {
		t.Error("CanSendMessage() = true over limit")
	}
}

func TestNewStatus_Premium(t *testing.T) {
	s := NewStatus(true, 1000, 20)
	if s.Limit() != Unlimited {
		t.Errorf("Limit() = %d, want -1", s.Limit())
	}
	if s.Remaining() != Unlimited {
		t.Errorf("Remaining() = %d, want -1", s.Remaining())
	}
	if !s.CanSendMessage() {
		t.Error("CanSendMessage() = false for premium")
	}
	if s.Used() != 1000 {
		t.Errorf("Used() = %d", s.Used())
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
