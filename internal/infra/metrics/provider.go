package metrics

import (
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(providerCallLatency) }

var providerCallLatency = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "enrichment_call_latency_ms",
		Help:    "External enrichment call latency distribution in milliseconds.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
	},
	[]string{"source", "success"}, // source: 'discovery', 'linkedin', 'email', 'phone'
)

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func ObserveProviderCall(source string, latencyMs int, success bool) {
	providerCallLatency.WithLabelValues(norm(source), strconv.FormatBool(success)).
		Observe(float64(latencyMs))
}
