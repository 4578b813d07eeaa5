package cbe

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrNotPDF is returned when the bank answers with a successful status but the body isn't a PDF
// document, e.g. the maintenance page.
var ErrNotPDF = errors.New("response is not a PDF")

// ErrReceiptTooLarge is returned when the receipt body exceeds MaxReceiptSizeBytes.
var ErrReceiptTooLarge = fmt.Errorf("receipt is larger than %d bytes", MaxReceiptSizeBytes)

// StatusError is returned when the bank endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	// Status is the status line, e.g. "500 Internal Server Error".
	Status string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("unexpected status %s", e.Status)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// TransportError is returned when the request fails before a response status is received, or
// while the response body is being read: DNS failures, refused connections and timeouts.
type TransportError struct {
	Err error
}

// Error omits the request URL, which carries the account suffix.
func (e *TransportError) Error() string {
	var urlErr *url.Error
	if errors.As(e.Err, &urlErr) {
		return urlErr.Err.Error()
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
