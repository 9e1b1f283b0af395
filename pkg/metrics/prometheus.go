package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	locationUpserts *prometheus.CounterVec
	searchResults   prometheus.Histogram
	useCaseTotal    *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	httpDuration    *prometheus.HistogramVec
	grpcDuration    *prometheus.HistogramVec
	lockWait        *prometheus.HistogramVec
	eventsPublished *prometheus.CounterVec
	reconnects      *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		locationUpserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gorider_location_upserts_total",
			Help:        "Total rider location writes by path (create or update).",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"path"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "gorider_search_results",
			Help:        "Number of riders returned by a proximity search.",
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		grpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "grpc_duration_seconds",
			Help:        "Duration of gRPC requests.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"grpc_service", "grpc_method", "status_code"}),
		lockWait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_rider_lock_wait_seconds",
			Help:        "Time spent waiting for a per-rider write lock.",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"backend", "status"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_events_published_total",
			Help:        "Total location events handed to the broker.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		reconnects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_broker_reconnects_total",
			Help:        "Broker redial attempts after the publishing channel closed.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.locationUpserts,
		m.searchResults,
		m.useCaseTotal,
		m.useCaseDuration,
		m.httpDuration,
		m.grpcDuration,
		m.lockWait,
		m.eventsPublished,
		m.reconnects,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordLocationUpserted(path string) {
	p.locationUpserts.WithLabelValues(path).Inc()
}

func (p *Prometheus) RecordSearch(resultCount int) {
	p.searchResults.Observe(float64(resultCount))
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	p.useCaseTotal.WithLabelValues(useCase, statusLabel(success)).Inc()
	p.useCaseDuration.WithLabelValues(useCase, statusLabel(success)).Observe(duration.Seconds())
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) ObserveGRPCRequestDuration(service, method, code string, duration float64) {
	p.grpcDuration.WithLabelValues(service, method, code).Observe(duration)
}

func (p *Prometheus) ObserveLockWait(backend string, acquired bool, duration time.Duration) {
	status := "acquired"
	if !acquired {
		status = "failed"
	}
	p.lockWait.WithLabelValues(backend, status).Observe(duration.Seconds())
}

func (p *Prometheus) IncEventsPublished(status string) {
	p.eventsPublished.WithLabelValues(status).Inc()
}

func (p *Prometheus) IncBrokerReconnects(status string) {
	p.reconnects.WithLabelValues(status).Inc()
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// Nop discards every observation. Used when metrics are not wired, e.g. in tests.
type Nop struct{}

func (Nop) RecordLocationUpserted(string)                              {}
func (Nop) RecordSearch(int)                                           {}
func (Nop) RecordUseCaseExecution(string, bool, time.Duration)         {}
func (Nop) ObserveHTTPRequestDuration(string, string, string, float64) {}
func (Nop) ObserveGRPCRequestDuration(string, string, string, float64) {}
func (Nop) ObserveLockWait(string, bool, time.Duration)                {}
func (Nop) IncEventsPublished(string)                                  {}
func (Nop) IncBrokerReconnects(string)                                 {}
