package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/fintrack/internal/domain"
	"github.com/kailas-cloud/fintrack/internal/metrics"
)

const (
	modeChat   = "chat"
	modeReport = "report"
)

// Client is a text-generation provider using the OpenAI-compatible chat API.
type Client struct {
	client      *openai.Client
	model       string
	reportModel string
	maxTokens   int
	temperature float32
	user        string
	logger      *zap.Logger
}

// Config holds the provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	ReportModel string // defaults to Model
	MaxTokens   int    // 0 leaves the provider default
	Temperature float32
	User        string
	Logger      *zap.Logger
}

// NewClient creates an OpenAI-compatible completion client.
func NewClient(cfg *Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	reportModel := cfg.ReportModel
	if reportModel == "" {
		reportModel = cfg.Model
	}
	l := cfg.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &Client{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		reportModel: reportModel,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		user:        cfg.User,
		logger:      l,
	}
}

// StreamCompletion implements domain.Completer. The system prompt is sent first,
// followed by the caller's history in order.
func (c *Client) StreamCompletion(
	ctx context.Context, system string, history []domain.Message,
) (domain.Stream, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}

	req := c.request(c.model, msgs)
	req.Stream = true

	start := time.Now()
	s, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		c.fail(c.model, modeChat, "api_error")
		return nil, parseAPIError(err)
	}
	metrics.LLMRequestDuration.WithLabelValues(c.model, modeChat).Observe(time.Since(start).Seconds())

	return &stream{inner: s, model: c.model}, nil
}

// CompleteText implements domain.Completer with a single non-streamed request.
func (c *Client) CompleteText(ctx context.Context, prompt string) (domain.Completion, error) {
	req := c.request(c.reportModel, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)
	if err != nil {
		c.fail(c.reportModel, modeReport, "api_error")
		return domain.Completion{}, parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		c.fail(c.reportModel, modeReport, "empty_response")
		return domain.Completion{}, fmt.Errorf("empty completion response: %w", domain.ErrLLMProviderError)
	}

	metrics.LLMRequestsTotal.WithLabelValues(c.reportModel, modeReport, "success").Inc()
	metrics.LLMRequestDuration.WithLabelValues(c.reportModel, modeReport).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.LLMTokensTotal.WithLabelValues(c.reportModel, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.LLMTokensTotal.WithLabelValues(c.reportModel, "completion").Add(float64(resp.Usage.CompletionTokens))
	}

	return domain.Completion{
		Text:             resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

func (c *Client) request(model string, msgs []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    msgs,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		User:        c.user,
	}
}

func (c *Client) fail(model, mode, errorType string) {
	metrics.LLMRequestsTotal.WithLabelValues(model, mode, "error").Inc()
	metrics.LLMErrorsTotal.WithLabelValues(model, errorType).Inc()
}
