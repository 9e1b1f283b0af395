package metrics

import "time"

type Metrics interface {
	// Business
	RecordLocationUpserted(path string)
	RecordSearch(resultCount int)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure (HTTP & gRPC)
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)
	ObserveGRPCRequestDuration(service, method, code string, duration float64)

	// Performance and Resilience
	ObserveLockWait(backend string, acquired bool, duration time.Duration)
	IncEventsPublished(status string)
	IncBrokerReconnects(status string)
}
