package monitor

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stellar/go-stellar-sdk/support/log"
)

// prometheusClient records into the package collectors and serves them from its own registry.
type prometheusClient struct {
	httpHandler http.Handler
}

func NewPrometheusClient() (*prometheusClient, error) {
	registry := prometheus.NewRegistry()

	collectors := PrometheusMetrics()
	for _, tag := range MetricTag("").ListAll() {
		collector, ok := collectors[tag]
		if !ok {
			return nil, fmt.Errorf("metric not registered in prometheus metrics: %s", tag)
		}
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("registering %s: %w", tag, err)
		}
	}

	return &prometheusClient{httpHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{})}, nil
}

func (*prometheusClient) GetMetricType() MetricType {
	return MetricTypePrometheus
}

func (p *prometheusClient) GetMetricHTTPHandler() http.Handler {
	return p.httpHandler
}

func (p *prometheusClient) MonitorHTTPRequestDuration(duration time.Duration, labels HTTPRequestLabels) {
	p.MonitorDuration(duration, HTTPRequestDurationTag, labels.ToMap())
}

func (*prometheusClient) MonitorDuration(duration time.Duration, tag MetricTag, labels map[string]string) {
	if summary, ok := lookup(SummaryVecMetrics, tag, "SummaryVecMetrics"); ok {
		summary.With(labels).Observe(duration.Seconds())
	}
}

// MonitorCounters increments the labeled counter for tag, or the plain counter when labels is empty.
func (*prometheusClient) MonitorCounters(tag MetricTag, labels map[string]string) {
	if len(labels) == 0 {
		if counter, ok := lookup(CounterMetrics, tag, "CounterMetrics"); ok {
			counter.Inc()
		}
		return
	}

	if counterVec, ok := lookup(CounterVecMetrics, tag, "CounterVecMetrics"); ok {
		counterVec.With(labels).Inc()
	}
}

func (*prometheusClient) MonitorHistogram(value float64, tag MetricTag, labels map[string]string) {
	if histogram, ok := lookup(HistogramVecMetrics, tag, "HistogramVecMetrics"); ok {
		histogram.With(labels).Observe(value)
	}
}

// lookup logs the tags that have no collector of the wanted kind.
func lookup[T any](metrics map[MetricTag]T, tag MetricTag, kind string) (T, bool) {
	metric, ok := metrics[tag]
	if !ok {
		log.Errorf("metric not registered in Prometheus %s: %s", kind, tag)
	}
	return metric, ok
}

var _ MonitorClient = (*prometheusClient)(nil)
