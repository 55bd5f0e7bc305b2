package openai

import (
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kailas-cloud/fintrack/internal/metrics"
)

// stream adapts a go-openai chat stream to domain.Stream, yielding only non-empty deltas.
type stream struct {
	inner *openai.ChatCompletionStream
	model string
	done  bool
}

func (s *stream) Recv() (string, error) {
	for {
		resp, err := s.inner.Recv()
		if errors.Is(err, io.EOF) {
			s.finish("success")
			return "", io.EOF
		}
		if err != nil {
			s.finish("error")
			metrics.LLMErrorsTotal.WithLabelValues(s.model, "stream_error").Inc()
			return "", parseAPIError(err)
		}
		if resp.Usage != nil {
			metrics.LLMTokensTotal.WithLabelValues(s.model, "prompt").Add(float64(resp.Usage.PromptTokens))
			metrics.LLMTokensTotal.WithLabelValues(s.model, "completion").Add(float64(resp.Usage.CompletionTokens))
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
			continue
		}
		return resp.Choices[0].Delta.Content, nil
	}
}

func (s *stream) Close() error {
	s.finish("aborted")
	return s.inner.Close() //nolint:wrapcheck // closing the response body
}

// finish counts the request once, by how it ended.
func (s *stream) finish(status string) {
	if s.done {
		return
	}
	s.done = true
	metrics.LLMRequestsTotal.WithLabelValues(s.model, modeChat, status).Inc()
}
