package monitor

import (
	"net/http"
	"time"
)

// MonitorClient is implemented by each metrics backend. MonitorService wraps it and reports an error
// when it is used before Start.
//
//go:generate mockery --name=MonitorClient --case=underscore --structname=MockMonitorClient
type MonitorClient interface {
	GetMetricHTTPHandler() http.Handler
	GetMetricType() MetricType
	// MonitorHTTPRequestDuration observes a request served by the verification API.
	MonitorHTTPRequestDuration(duration time.Duration, labels HTTPRequestLabels)
	// MonitorCounters increments the counter registered for tag.
	MonitorCounters(tag MetricTag, labels map[string]string)
	// MonitorDuration observes duration in the summary registered for tag.
	MonitorDuration(duration time.Duration, tag MetricTag, labels map[string]string)
	// MonitorHistogram observes value in the histogram registered for tag, e.g. the bank response time in seconds.
	MonitorHistogram(value float64, tag MetricTag, labels map[string]string)
}
