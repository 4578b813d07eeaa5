package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "cbe_verifier"

func PrometheusMetrics() map[MetricTag]prometheus.Collector {
	metrics := make(map[MetricTag]prometheus.Collector)

	for tag, summaryVec := range SummaryVecMetrics {
		metrics[tag] = summaryVec
	}

	for tag, counter := range CounterMetrics {
		metrics[tag] = counter
	}

	for tag, histogramVec := range HistogramVecMetrics {
		metrics[tag] = histogramVec
	}

	for tag, counterVec := range CounterVecMetrics {
		metrics[tag] = counterVec
	}

	return metrics
}

var SummaryVecMetrics = map[MetricTag]*prometheus.SummaryVec{
	HTTPRequestDurationTag: prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: metricsNamespace, Subsystem: "http", Name: string(HTTPRequestDurationTag),
		Help: "HTTP requests durations, sliding window = 10m",
	},
		HTTPRequestLabelNames,
	),
	VerificationDurationTag: prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: metricsNamespace, Subsystem: "business", Name: string(VerificationDurationTag),
		Help: "Receipt verification durations, including retries and backoff",
	},
		VerificationLabelNames,
	),
}

var CounterMetrics = map[MetricTag]prometheus.Counter{}

var HistogramVecMetrics = map[MetricTag]*prometheus.HistogramVec{
	CBEFetchDurationTag: prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace, Name: string(CBEFetchDurationTag),
		Help:    "A histogram of the CBE receipt request durations",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
	},
		CBEFetchLabelNames,
	),
}

var CounterVecMetrics = map[MetricTag]*prometheus.CounterVec{
	VerificationsTotalTag: prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace, Subsystem: "business", Name: string(VerificationsTotalTag),
		Help: "A counter of receipt verifications by outcome",
	},
		VerificationLabelNames,
	),
	CBEFetchTotalTag: prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace, Name: string(CBEFetchTotalTag),
		Help: "A counter of the CBE receipt requests",
	},
		CBEFetchLabelNames,
	),
	ResultCacheLookupsTotalTag: prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace, Subsystem: "cache", Name: string(ResultCacheLookupsTotalTag),
		Help: "A counter of the verification result cache lookups by result",
	},
		ResultCacheLabelNames,
	),
}
