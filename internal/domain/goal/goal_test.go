package goal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNew_WithTargetDate(t *testing.T) {
	g, err := New(uuid.New(), "u-1", Draft{
		Title:         "  Vacation ",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(150),
		TargetDate:    time.Date(2026, 12, 24, 15, 0, 0, 0, time.UTC),
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Title() != "Vacation" {
		t.Errorf("Title() = %q", g.Title())
	}
	d, ok := g.TargetDate()
	if !ok {
		t.Fatal("TargetDate() not set")
	}
	if d.Format(time.DateOnly) != "2026-12-24" || d.Hour() != 0 {
		t.Errorf("TargetDate() = %v", d)
	}
}

func TestNew_WithoutTargetDate(t *testing.T) {
	g, err := New(uuid.New(), "u-1", Draft{
		Title:        "Emergency fund",
		TargetAmount: decimal.NewFromInt(5000),
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := g.TargetDate(); ok {
		t.Error("TargetDate() should be unset")
	}
	if !g.CurrentAmount().IsZero() {
		t.Errorf("CurrentAmount() = %s, want 0", g.CurrentAmount())
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		d    Draft
	}{
		{"empty title", Draft{Title: " ", TargetAmount: decimal.NewFromInt(1)}},
		{"zero target", Draft{Title: "x", TargetAmount: decimal.Zero}},
		{"negative current", Draft{Title: "x", TargetAmount: decimal.NewFromInt(1), CurrentAmount: decimal.NewFromInt(-5)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(uuid.New(), "u-1", tc.d, time.Now()); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
