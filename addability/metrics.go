// SPDX-License-Identifier: MIT

package addability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// togglesTotal counts Toggle calls by effect
	togglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvplanar_addability_toggles_total",
		Help: "Total toggles by effect",
	}, []string{"op"}) // "insert", "remove" or "noop"

	blocksRebuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvplanar_addability_blocks_rebuilt_total",
		Help: "Blocks whose SPQR tree was built again after a toggle",
	})

	blocksReused = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvplanar_addability_blocks_reused_total",
		Help: "Blocks whose SPQR tree survived a toggle unchanged",
	})

	queryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvplanar_addability_query_seconds",
		Help:    "Full addability query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)
