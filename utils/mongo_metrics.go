package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var dbOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_operation_duration_seconds",
		Help:    "Duration of database operations",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"operation", "collection"},
)

// StartDBTimer times a single store round-trip; call ObserveDuration on the
// returned timer when the operation finishes.
func StartDBTimer(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(dbOperationDuration.WithLabelValues(operation, collection))
}
