// Package metrics exports Prometheus metrics for discovery runs.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "node_finder"

func init() {
	prometheus.MustRegister(
		searchesTotal,
		validationsTotal,
		archiveProbesTotal,
		discoveryDuration,
	)
}

var (
	// searchesTotal counts host-search calls, labeled by outcome (ok, empty, error).
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of host-search calls, labeled by outcome.",
		},
		[]string{"outcome"},
	)

	// validationsTotal counts candidate validations.
	//	- `transport`: http or ws
	//	- `result`: ok, a validation reason, transport_error or parse_error
	validationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Total number of candidate validations, labeled by transport and result.",
		},
		[]string{"transport", "result"},
	)

	archiveProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_probes_total",
			Help:      "Total number of archive probes, labeled by success.",
		},
		[]string{"success"},
	)

	discoveryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "discovery_duration_seconds",
			Help:      "Wall time of a full discovery run, labeled by chain id and node kind.",
			Buckets:   []float64{1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"chain_id", "kind"},
	)
)

// ObserveSearch records the outcome of one host-search call.
func ObserveSearch(outcome string) {
	searchesTotal.WithLabelValues(outcome).Inc()
}

// ObserveValidation records one validation result.
func ObserveValidation(transport, result string) {
	validationsTotal.WithLabelValues(transport, result).Inc()
}

// ObserveArchiveProbe records one archive probe.
func ObserveArchiveProbe(success bool) {
	archiveProbesTotal.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// ObserveDiscovery records the duration of a discovery run.
func ObserveDiscovery(chainID uint64, kind string, elapsed time.Duration) {
	discoveryDuration.WithLabelValues(strconv.FormatUint(chainID, 10), kind).Observe(elapsed.Seconds())
}
