package actions

import "github.com/prometheus/client_golang/prometheus"

var (
	httpCallLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hawkeye",
		Subsystem: "action",
		Name:      "http_call_latency_seconds",
		Help:      "Latency of HttpCall action executions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	httpCallTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hawkeye",
		Subsystem: "action",
		Name:      "http_call_total",
		Help:      "Count of HttpCall action executions by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(httpCallLatency, httpCallTotal)
}
