package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application metrics registry exposed on /api/metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Custom histogram buckets for API and query latencies
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database Metrics
	DBOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	DBOperationTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_operation_total",
			Help: "Total number of database operations",
		},
		[]string{"operation", "status"},
	)

	// Object Storage Metrics
	StorageRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Object storage operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of object storage operations",
		},
		[]string{"operation", "status"},
	)

	// Business Metrics
	Logins = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	Registrations = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_registrations_total",
			Help: "Total number of user registration attempts",
		},
		[]string{"status"},
	)

	ProgressUpdates = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_progress_updates_total",
			Help: "Total number of module progress updates",
		},
		[]string{"status"},
	)

	ModulesCompleted = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "skillforge_modules_completed_total",
			Help: "Total number of module completions recorded",
		},
	)

	BadgesAwarded = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_badges_awarded_total",
			Help: "Total number of badge award calls",
		},
		[]string{"outcome"}, // "created" or "existing"
	)

	SessionBookings = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_mentor_session_bookings_total",
			Help: "Total number of mentor session bookings",
		},
		[]string{"status"},
	)

	ForumPostsCreated = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_forum_posts_total",
			Help: "Total number of forum posts created",
		},
		[]string{"status"},
	)

	ForumAnswersCreated = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_forum_answers_total",
			Help: "Total number of forum answers created",
		},
		[]string{"status"},
	)

	ChallengeAttempts = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_challenge_attempts_total",
			Help: "Total number of challenge attempt submissions",
		},
		[]string{"status", "passed"},
	)

	AvatarUploads = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillforge_avatar_uploads_total",
			Help: "Total number of avatar uploads",
		},
		[]string{"status"},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
