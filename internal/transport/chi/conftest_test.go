package chi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/fintrack/internal/auth"
	"github.com/kailas-cloud/fintrack/internal/domain"
	domexp "github.com/kailas-cloud/fintrack/internal/domain/expense"
	domgoal "github.com/kailas-cloud/fintrack/internal/domain/goal"
	"github.com/kailas-cloud/fintrack/internal/domain/usage"
	assistantuc "github.com/kailas-cloud/fintrack/internal/usecase/assistant"
	healthuc "github.com/kailas-cloud/fintrack/internal/usecase/health"
)

type fakeQuota struct {
	statusFn func(ctx context.Context, userID string) (usage.Status, error)
	recordFn func(ctx context.Context, userID string) error
}

func (f *fakeQuota) Status(ctx context.Context, userID string) (usage.Status, error) {
	return f.statusFn(ctx, userID)
}

func (f *fakeQuota) Record(ctx context.Context, userID string) error {
	return f.recordFn(ctx, userID)
}

type fakeAssistant struct {
	chatFn   func(ctx context.Context, userID string, history []domain.Message) (domain.Stream, error)
	reportFn func(ctx context.Context, userID string) (assistantuc.Report, error)
}

func (f *fakeAssistant) Chat(ctx context.Context, userID string, history []domain.Message) (domain.Stream, error) {
	return f.chatFn(ctx, userID, history)
}

func (f *fakeAssistant) Report(ctx context.Context, userID string) (assistantuc.Report, error) {
	return f.reportFn(ctx, userID)
}

type fakeExpenses struct {
	createFn func(ctx context.Context, userID string, d domexp.Draft) (domexp.Expense, error)
	updateFn func(ctx context.Context, userID string, id uuid.UUID, d domexp.Draft) (domexp.Expense, error)
	deleteFn func(ctx context.Context, userID string, id uuid.UUID) error
	listFn   func(ctx context.Context, userID string) ([]domexp.Expense, error)
}

func (f *fakeExpenses) Create(ctx context.Context, userID string, d domexp.Draft) (domexp.Expense, error) {
	return f.createFn(ctx, userID, d)
}

func (f *fakeExpenses) Update(
	ctx context.Context, userID string, id uuid.UUID, d domexp.Draft,
) (domexp.Expense, error) {
	return f.updateFn(ctx, userID, id, d)
}

func (f *fakeExpenses) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return f.deleteFn(ctx, userID, id)
}

func (f *fakeExpenses) List(ctx context.Context, userID string) ([]domexp.Expense, error) {
	return f.listFn(ctx, userID)
}

type fakeGoals struct {
	createFn func(ctx context.Context, userID string, d domgoal.Draft) (domgoal.Goal, error)
	listFn   func(ctx context.Context, userID string) ([]domgoal.Goal, error)
}

func (f *fakeGoals) Create(ctx context.Context, userID string, d domgoal.Draft) (domgoal.Goal, error) {
	return f.createFn(ctx, userID, d)
}

func (f *fakeGoals) List(ctx context.Context, userID string) ([]domgoal.Goal, error) {
	return f.listFn(ctx, userID)
}

type fakeHealth struct {
	report healthuc.Report
}

func (f *fakeHealth) Check(context.Context) healthuc.Report { return f.report }

// sliceStream replays chunks, then ends with err (io.EOF when nil).
type sliceStream struct {
	chunks []string
	err    error
	closed bool
}

func (s *sliceStream) Recv() (string, error) {
	if len(s.chunks) == 0 {
		if s.err != nil {
			return "", s.err
		}
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

type testServer struct {
	quota     *fakeQuota
	assistant *fakeAssistant
	expenses  *fakeExpenses
	goals     *fakeGoals
	health    *fakeHealth
	handler   http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		quota:     &fakeQuota{},
		assistant: &fakeAssistant{},
		expenses:  &fakeExpenses{},
		goals:     &fakeGoals{},
		health:    &fakeHealth{},
	}
	srv := NewServer(ts.quota, ts.assistant, ts.expenses, ts.goals, ts.health, zap.NewNop())
	ts.handler = HandlerWithOptions(srv, ChiServerOptions{})
	return ts
}

// do sends a request as userID; an empty userID sends it unauthenticated.
func (ts *testServer) do(method, path, body, userID string) *httptest.ResponseRecorder {
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if userID != "" {
		req = req.WithContext(auth.ContextWithUserID(req.Context(), userID))
	}
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}
