package monitor

import (
	"fmt"
	"strings"
)

// MetricType names the backend the verifier exports its metrics to.
type MetricType string

const MetricTypePrometheus MetricType = "PROMETHEUS"

// ParseMetricType accepts the metric type in any letter case, e.g. "prometheus".
func ParseMetricType(metricTypeStr string) (MetricType, error) {
	mType := MetricType(strings.ToUpper(strings.TrimSpace(metricTypeStr)))
	if mType == MetricTypePrometheus {
		return mType, nil
	}

	return "", fmt.Errorf("invalid metric type %q", mType)
}

type MetricOptions struct {
	MetricType  MetricType
	Environment string
}

// GetClient builds the client for opts.MetricType. Each call registers the collectors in a new registry.
func GetClient(opts MetricOptions) (MonitorClient, error) {
	if opts.MetricType != MetricTypePrometheus {
		return nil, fmt.Errorf("unknown metric type: %q", opts.MetricType)
	}

	client, err := NewPrometheusClient()
	if err != nil {
		return nil, fmt.Errorf("creating the %s client: %w", opts.MetricType, err)
	}
	return client, nil
}
