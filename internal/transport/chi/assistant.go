package chi

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/fintrack/internal/domain"
	"github.com/kailas-cloud/fintrack/internal/logger"
)

// Chat handles POST /chat. On success the reply is streamed as plain text
// chunks, flushed as they arrive from the model.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	var req ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	history := make([]domain.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, domain.Message{Role: domain.Role(m.Role), Content: m.Content})
	}

	stream, err := s.assistant.Chat(r.Context(), userID, history)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	defer func() { _ = stream.Close() }()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	log := logger.FromContextOr(r.Context(), s.logger)
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			// Headers are already sent; the truncated body is all the client gets.
			log.Warn("chat stream interrupted", zap.Error(err))
			return
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			log.Debug("chat client gone", zap.Error(err))
			return
		}
		if err := rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
			log.Debug("chat flush failed", zap.Error(err))
			return
		}
	}
}

// GenerateReport handles POST /generate-report.
func (s *Server) GenerateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	rep, err := s.assistant.Report(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ReportResponse{
		Report:    rep.Text,
		Analytics: analyticsToResponse(rep.Analytics),
	})
}
