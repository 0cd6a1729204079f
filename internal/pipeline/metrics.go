/*
DESCRIPTION
  metrics.go registers the pipeline's Prometheus counters and latency
  histogram (spec.md §4.3 step 6), under a namespace/subsystem distinct
  from internal/actions so both packages can be imported into the same
  process without a registration collision.

LICENSE
  Copyright (C) 2026 the Hawkeye Authors.

  This is free software: you can redistribute it and/or modify it
  under the terms of the GNU General Public License as published by
  the Free Software Foundation, either version 3 of the License, or
  (at your option) any later version.

  This is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY
  or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public
  License for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses/.
*/

package pipeline

import "github.com/prometheus/client_golang/prometheus"

var (
	slateFoundTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hawkeye",
		Subsystem: "pipeline",
		Name:      "slate_found_total",
		Help:      "Samples classified as slate.",
	})
	contentFoundTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hawkeye",
		Subsystem: "pipeline",
		Name:      "content_found_total",
		Help:      "Samples classified as content.",
	})
	similarityExecutionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hawkeye",
		Subsystem: "pipeline",
		Name:      "similarity_executions_total",
		Help:      "Invocations of the slate matcher.",
	})
	sampleLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hawkeye",
		Subsystem: "pipeline",
		Name:      "sample_handler_latency_seconds",
		Help:      "Time spent in the per-sample handler, from buffer copy to mode-event emission.",
		Buckets:   prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(slateFoundTotal, contentFoundTotal, similarityExecutionsTotal, sampleLatency)
}
