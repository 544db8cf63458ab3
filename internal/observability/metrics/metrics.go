package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BoardRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_requests_total",
			Help: "Total number of HTTP requests handled by the board",
		},
		[]string{"method", "path"},
	)

	BoardRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_requests_in_flight",
			Help: "Number of HTTP requests currently being handled",
		},
	)

	BoardRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "board_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_class"},
	)

	DomainErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domain_errors_total",
			Help: "Total number of domain errors by category and code",
		},
		[]string{"category", "code", "status"},
	)

	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of HTTP errors by status code",
		},
		[]string{"status", "path", "method"},
	)

	QuestionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "board_questions_created_total",
			Help: "Total number of questions created",
		},
	)

	AnswersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "board_answers_created_total",
			Help: "Total number of answers created",
		},
	)

	VotesRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "board_votes_registered_total",
			Help: "Total number of question votes registered",
		},
	)

	DBPoolAcquiredConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_acquired_connections",
			Help: "Number of currently acquired database connections",
		},
	)

	DBPoolIdleConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Number of idle database connections",
		},
	)

	DBPoolMaxConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_max_connections",
			Help: "Maximum number of database connections",
		},
	)

	DBPoolTotalConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_pool_total_connections",
			Help: "Total number of database connections",
		},
	)
)
