package httperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stellar/go-stellar-sdk/support/log"
	"github.com/stellar/go-stellar-sdk/support/render/httpjson"
)

// HTTPError is the JSON body of every error the API renders outside of a verification result:
// {"error": "...", "extras": {...}}.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	// Extras holds details for the client, e.g. the invalid request fields.
	Extras map[string]any `json:"extras,omitempty"`
	// Err is the wrapped cause. It is never rendered.
	Err error `json:"-"`
}

// ReportErrorFunc reports the cause of an internal error.
type ReportErrorFunc func(ctx context.Context, err error, msg string)

func logError(ctx context.Context, err error, msg string) {
	switch {
	case err == nil:
		err = errors.New(msg)
	case msg != "":
		err = fmt.Errorf("%s: %w", msg, err)
	}
	log.Ctx(ctx).WithStack(err).Errorf("%+v", err)
}

var reportError ReportErrorFunc = logError

// SetDefaultReportErrorFunc replaces the function InternalError reports through, e.g. with the crash
// tracker. Until then errors are only logged.
func SetDefaultReportErrorFunc(fn ReportErrorFunc) {
	reportError = fn
}

var defaultMessages = map[int]string{
	http.StatusBadRequest:            "The request was invalid in some way.",
	http.StatusNotFound:              "Resource not found.",
	http.StatusMethodNotAllowed:      "Method not allowed.",
	http.StatusRequestEntityTooLarge: "Request body is too large.",
	http.StatusTooManyRequests:       "Too many requests, please try again later.",
	http.StatusInternalServerError:   "An internal error occurred while processing this request.",
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) Render(w http.ResponseWriter) {
	httpjson.RenderStatus(w, e.StatusCode, e, httpjson.JSON)
}

// NewHTTPError returns originalErr itself when it is an HTTPError with the same status and nothing
// new is added.
func NewHTTPError(statusCode int, msg string, originalErr error, extras map[string]any) *HTTPError {
	var hErr *HTTPError
	if msg == "" && len(extras) == 0 && errors.As(originalErr, &hErr) && hErr.StatusCode == statusCode {
		return hErr
	}

	return &HTTPError{
		StatusCode: statusCode,
		Message:    msg,
		Extras:     extras,
		Err:        originalErr,
	}
}

func withDefaultMessage(statusCode int, msg string, originalErr error, extras map[string]any) *HTTPError {
	if msg == "" {
		msg = defaultMessages[statusCode]
	}
	return NewHTTPError(statusCode, msg, originalErr, extras)
}

func BadRequest(msg string, originalErr error, extras map[string]any) *HTTPError {
	return withDefaultMessage(http.StatusBadRequest, msg, originalErr, extras)
}

func NotFound(msg string, originalErr error, extras map[string]any) *HTTPError {
	return withDefaultMessage(http.StatusNotFound, msg, originalErr, extras)
}

func MethodNotAllowed(msg string, originalErr error, extras map[string]any) *HTTPError {
	return withDefaultMessage(http.StatusMethodNotAllowed, msg, originalErr, extras)
}

func RequestEntityTooLarge(msg string, originalErr error, extras map[string]any) *HTTPError {
	return withDefaultMessage(http.StatusRequestEntityTooLarge, msg, originalErr, extras)
}

func TooManyRequests(msg string, originalErr error, extras map[string]any) *HTTPError {
	return withDefaultMessage(http.StatusTooManyRequests, msg, originalErr, extras)
}

// InternalError reports originalErr before building the error.
func InternalError(ctx context.Context, msg string, originalErr error, extras map[string]any) *HTTPError {
	hErr := withDefaultMessage(http.StatusInternalServerError, msg, originalErr, extras)
	reportError(ctx, originalErr, hErr.Message)
	return hErr
}
