package repository

import (
	"github.com/skillforge/skillforge-api/pkg/metrics"
)

// recordMetrics tracks a database operation outcome
func recordMetrics(operation, status string, duration float64) {
	metrics.DBOperationDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBOperationTotal.WithLabelValues(operation, status).Inc()
}
