package metrics

import "github.com/prometheus/client_golang/prometheus"

// LLM Prometheus metrics. mode is "chat" (streamed) or "report" (batch).
var (
	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fintrack",
			Name:      "llm_requests_total",
			Help:      "Total number of text-generation requests",
		},
		[]string{"model", "mode", "status"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fintrack",
			Name:      "llm_request_duration_seconds",
			Help:      "Time until the provider answered (first byte for streams)",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"model", "mode"},
	)

	LLMTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fintrack",
			Name:      "llm_tokens_total",
			Help:      "Total tokens reported by the provider",
		},
		[]string{"model", "type"}, // "prompt" / "completion"
	)

	LLMErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fintrack",
			Name:      "llm_errors_total",
			Help:      "Total text-generation errors",
		},
		[]string{"model", "error_type"},
	)
)

var llmMetricsRegistered bool

// RegisterLLMMetrics registers Prometheus LLM metrics. Must be called once from main.
func RegisterLLMMetrics() {
	if llmMetricsRegistered {
		return
	}
	prometheus.MustRegister(LLMRequestsTotal)
	prometheus.MustRegister(LLMRequestDuration)
	prometheus.MustRegister(LLMTokensTotal)
	prometheus.MustRegister(LLMErrorsTotal)
	llmMetricsRegistered = true
}
