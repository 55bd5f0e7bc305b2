package metrics

import "github.com/prometheus/client_golang/prometheus"

// Quota Prometheus metrics.
var (
	QuotaDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fintrack",
			Name:      "quota_decisions_total",
			Help:      "AI quota decisions",
		},
		[]string{"result"}, // "allowed" / "denied"
	)

	QuotaUnitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fintrack",
			Name:      "quota_units_total",
			Help:      "AI units charged and refunded",
		},
		[]string{"op"}, // "consume" / "record" / "refund"
	)
)

var quotaMetricsRegistered bool

// RegisterQuotaMetrics registers Prometheus quota metrics. Must be called once from main.
func RegisterQuotaMetrics() {
	if quotaMetricsRegistered {
		return
	}
	prometheus.MustRegister(QuotaDecisionsTotal)
	prometheus.MustRegister(QuotaUnitsTotal)
	quotaMetricsRegistered = true
}
