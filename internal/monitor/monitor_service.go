package monitor

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// MonitorServiceInterface is what the verifier, the bank client and the HTTP server record their
// metrics through.
//
//go:generate mockery --name=MonitorServiceInterface --case=underscore --structname=MockMonitorService
type MonitorServiceInterface interface {
	Start(opts MetricOptions) error
	GetMetricType() (MetricType, error)
	GetMetricHTTPHandler() (http.Handler, error)
	MonitorHTTPRequestDuration(duration time.Duration, labels HTTPRequestLabels) error
	MonitorCounters(tag MetricTag, labels map[string]string) error
	MonitorDuration(duration time.Duration, tag MetricTag, labels map[string]string) error
	MonitorHistogram(value float64, tag MetricTag, labels map[string]string) error
}

var _ MonitorServiceInterface = (*MonitorService)(nil)

var (
	ErrClientNotInitialized      = errors.New("client was not initialized")
	ErrServiceAlreadyInitialized = errors.New("service already initialized")
)

// MonitorService forwards to the MonitorClient created by Start. Every method fails with
// ErrClientNotInitialized before that.
type MonitorService struct {
	MonitorClient MonitorClient
}

func (m *MonitorService) Start(opts MetricOptions) error {
	if m.MonitorClient != nil {
		return ErrServiceAlreadyInitialized
	}

	monitorClient, err := GetClient(opts)
	if err != nil {
		return fmt.Errorf("error creating monitor client: %w", err)
	}
	m.MonitorClient = monitorClient

	return nil
}

// do runs fn against the client once Start succeeded.
func (m *MonitorService) do(fn func(MonitorClient)) error {
	if m.MonitorClient == nil {
		return ErrClientNotInitialized
	}
	fn(m.MonitorClient)
	return nil
}

func (m *MonitorService) GetMetricType() (metricType MetricType, err error) {
	err = m.do(func(c MonitorClient) { metricType = c.GetMetricType() })
	return metricType, err
}

func (m *MonitorService) GetMetricHTTPHandler() (handler http.Handler, err error) {
	err = m.do(func(c MonitorClient) { handler = c.GetMetricHTTPHandler() })
	return handler, err
}

func (m *MonitorService) MonitorHTTPRequestDuration(duration time.Duration, labels HTTPRequestLabels) error {
	return m.do(func(c MonitorClient) { c.MonitorHTTPRequestDuration(duration, labels) })
}

func (m *MonitorService) MonitorDuration(duration time.Duration, tag MetricTag, labels map[string]string) error {
	return m.do(func(c MonitorClient) { c.MonitorDuration(duration, tag, labels) })
}

func (m *MonitorService) MonitorHistogram(value float64, tag MetricTag, labels map[string]string) error {
	return m.do(func(c MonitorClient) { c.MonitorHistogram(value, tag, labels) })
}

func (m *MonitorService) MonitorCounters(tag MetricTag, labels map[string]string) error {
	return m.do(func(c MonitorClient) { c.MonitorCounters(tag, labels) })
}
