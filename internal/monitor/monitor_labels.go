package monitor

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
)

type HTTPRequestLabels struct {
	Status string
	Route  string
	Method string
}

func (h HTTPRequestLabels) ToMap() map[string]string {
	return map[string]string{
		"status": h.Status,
		"route":  h.Route,
		"method": h.Method,
	}
}

var HTTPRequestLabelNames = []string{"status", "route", "method"}

// VerificationLabels describe the outcome of a verification: "success" or the lower-cased error
// kind, e.g. "bank_server_error".
type VerificationLabels struct {
	Outcome string
}

func (v VerificationLabels) ToMap() map[string]string {
	return map[string]string{
		"outcome": v.Outcome,
	}
}

var VerificationLabelNames = []string{"outcome"}

type CBEFetchLabels struct {
	Status     string
	StatusCode string
}

const (
	CBEFetchStatusSuccess  = "success"
	CBEFetchStatusTimeout  = "timeout"
	CBEFetchStatusCanceled = "canceled"
	CBEFetchStatusError    = "error"
)

// NewCBEFetchLabels labels a single request to the bank. StatusCode is "0" when no response arrived.
func NewCBEFetchLabels(resp *http.Response, reqErr error) CBEFetchLabels {
	if reqErr == nil && resp != nil {
		return CBEFetchLabels{Status: CBEFetchStatusSuccess, StatusCode: strconv.Itoa(resp.StatusCode)}
	}

	status := CBEFetchStatusError
	var netErr net.Error
	switch {
	case errors.Is(reqErr, context.Canceled):
		status = CBEFetchStatusCanceled
	case errors.Is(reqErr, context.DeadlineExceeded), errors.As(reqErr, &netErr) && netErr.Timeout():
		status = CBEFetchStatusTimeout
	}

	return CBEFetchLabels{Status: status, StatusCode: "0"}
}

func (c CBEFetchLabels) ToMap() map[string]string {
	return map[string]string{
		"status":      c.Status,
		"status_code": c.StatusCode,
	}
}

var CBEFetchLabelNames = []string{"status", "status_code"}

type ResultCacheLabels struct {
	Result string
}

func (r ResultCacheLabels) ToMap() map[string]string {
	return map[string]string{
		"result": r.Result,
	}
}

var ResultCacheLabelNames = []string{"result"}
