package assistant

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/fintrack/internal/domain"
	"github.com/kailas-cloud/fintrack/internal/domain/analytics"
	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
	"github.com/kailas-cloud/fintrack/internal/logger"
)

// Limits bounds how much of the user's history reaches the model.
type Limits struct {
	ChatExpenses   int // newest expenses embedded in the chat persona
	ReportRecent   int // newest expenses listed verbatim in the report prompt
	ReportMonths   int // months shown in the monthly trend
	ReportExpenses int // expenses aggregated by the report, 0 = all
}

// DefaultLimits returns the stock context sizes.
func DefaultLimits() Limits {
	return Limits{ChatExpenses: 50, ReportRecent: 50, ReportMonths: 6}
}

// Report is a generated report together with the figures it was built from.
type Report struct {
	Text      string
	Analytics analytics.Analytics
}

// Service assembles financial context and hands it to the completer.
type Service struct {
	completer       domain.Completer
	expenses        ExpenseLister
	goals           GoalLister
	quota           QuotaGate
	limits          Limits
	chargeOnFailure bool
	now             func() time.Time
	logger          *zap.Logger
}

// New creates an assistant service.
func New(c domain.Completer, expenses ExpenseLister, goals GoalLister, quota QuotaGate, l *zap.Logger) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{
		completer: c,
		expenses:  expenses,
		goals:     goals,
		quota:     quota,
		limits:    DefaultLimits(),
		now:       time.Now,
		logger:    l,
	}
}

// WithLimits overrides context sizes. Non-positive values keep the defaults,
// except ReportExpenses where 0 means unbounded.
func (s *Service) WithLimits(l Limits) *Service {
	if l.ChatExpenses > 0 {
		s.limits.ChatExpenses = l.ChatExpenses
	}
	if l.ReportRecent > 0 {
		s.limits.ReportRecent = l.ReportRecent
	}
	if l.ReportMonths > 0 {
		s.limits.ReportMonths = l.ReportMonths
	}
	if l.ReportExpenses >= 0 {
		s.limits.ReportExpenses = l.ReportExpenses
	}
	return s
}

// WithChargeOnFailure keeps the unit charged even when no response could be started.
func (s *Service) WithChargeOnFailure(charge bool) *Service {
	s.chargeOnFailure = charge
	return s
}

// WithClock replaces the wall clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Chat charges one unit and opens a streamed answer to the conversation.
// The caller owns the returned stream and must Close it.
func (s *Service) Chat(ctx context.Context, userID string, history []domain.Message) (domain.Stream, error) {
	if err := domain.ValidateHistory(history); err != nil {
		return nil, err
	}
	if err := s.quota.Consume(ctx, userID); err != nil {
		return nil, fmt.Errorf("quota: %w", err)
	}

	stream, err := s.openChat(ctx, userID, history)
	if err != nil {
		s.refund(ctx, userID, err)
		return nil, err
	}
	return stream, nil
}

func (s *Service) openChat(ctx context.Context, userID string, history []domain.Message) (domain.Stream, error) {
	expenses, goals, err := s.load(ctx, userID, s.limits.ChatExpenses)
	if err != nil {
		return nil, err
	}

	stream, err := s.completer.StreamCompletion(ctx, chatSystemPrompt(expenses, goals), history)
	if err != nil {
		return nil, fmt.Errorf("open completion stream: %w", err)
	}
	return stream, nil
}

// refund gives the unit back when the model never started answering.
func (s *Service) refund(ctx context.Context, userID string, cause error) {
	log := logger.FromContextOr(ctx, s.logger)
	if s.chargeOnFailure {
		log.Warn("Chat failed before streaming, unit kept", zap.Error(cause))
		return
	}
	// The request context may already be cancelled.
	if err := s.quota.Release(context.WithoutCancel(ctx), userID); err != nil {
		log.Error("Failed to refund AI unit", zap.Error(err), zap.NamedError("cause", cause))
		return
	}
	log.Warn("Chat failed before streaming, unit refunded", zap.Error(cause))
}

// Report aggregates the user's expenses and asks the model for a written report.
// It is not metered and persists nothing.
func (s *Service) Report(ctx context.Context, userID string) (Report, error) {
	expenses, goals, err := s.load(ctx, userID, s.limits.ReportExpenses)
	if err != nil {
		return Report{}, err
	}

	a := analytics.Compute(expenses, len(goals), s.now())
	recent := expenses
	if len(recent) > s.limits.ReportRecent {
		recent = recent[:s.limits.ReportRecent]
	}

	c, err := s.completer.CompleteText(ctx, reportPrompt(a, recent, goals, s.limits.ReportMonths))
	if err != nil {
		return Report{}, fmt.Errorf("generate report: %w", err)
	}

	logger.FromContextOr(ctx, s.logger).Info("Report generated",
		zap.Int("transactions", a.TransactionCount),
		zap.Int("prompt_tokens", c.PromptTokens),
		zap.Int("completion_tokens", c.CompletionTokens),
	)
	return Report{Text: c.Text, Analytics: a}, nil
}

// load fetches expenses and goals concurrently.
func (s *Service) load(ctx context.Context, userID string, expenseLimit int) (
	[]domexp.Expense, []domgoal.Goal, error,
) {
	var (
		expenses []domexp.Expense
		goals    []domgoal.Goal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if expenses, err = s.expenses.List(gctx, userID, expenseLimit); err != nil {
			return fmt.Errorf("list expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if goals, err = s.goals.List(gctx, userID); err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return expenses, goals, nil
}
