package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the service's own prometheus registry, served on /api/metrics.
var Registry = prometheus.NewRegistry()

var (
	// Custom histogram buckets covering both fast form handling and
	// multi-second generative-model calls
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.With(Registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Business Metrics
	PlanGenerations = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitpro_plan_generations_total",
			Help: "Total number of workout plan generation requests",
		},
		[]string{"status", "format"},
	)

	PlanCacheLookups = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitpro_plan_cache_lookups_total",
			Help: "Total number of plan cache lookups",
		},
		[]string{"result"},
	)

	QuestionnaireSubmissions = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitpro_questionnaire_submissions_total",
			Help: "Total number of intake questionnaire submissions",
		},
		[]string{"status"},
	)

	BookingSubmissions = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitpro_booking_submissions_total",
			Help: "Total number of booking form submissions",
		},
		[]string{"status"},
	)

	// External Client Metrics
	TelegramDeliveries = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitpro_telegram_deliveries_total",
			Help: "Total number of Telegram notification deliveries",
		},
		[]string{"status", "mode"},
	)

	GeminiRequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitpro_gemini_request_duration_seconds",
			Help:    "Gemini generateContent call duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"status"},
	)

	// Infrastructure Metrics
	GoRoutines = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// Init registers the standard Go collectors on the service registry.
func Init() {
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

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
