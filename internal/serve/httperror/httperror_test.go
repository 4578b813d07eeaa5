package httperror

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stellar/go-stellar-sdk/support/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewHTTPError_returnOriginalErrIfNoNewInfoWasAdded(t *testing.T) {
	err := NewHTTPError(http.StatusBadRequest, "Bad request", nil, map[string]any{"foo": "bar"})

	newErr := NewHTTPError(http.StatusBadRequest, "", err, nil)
	assert.Same(t, err, newErr)

	newErr = NewHTTPError(http.StatusBadRequest, "Foo Bar Bad Request", err, nil)
	assert.NotSame(t, err, newErr)

	newErr = NewHTTPError(http.StatusNotFound, "", err, nil)
	assert.NotSame(t, err, newErr)

	newErr = NewHTTPError(http.StatusBadRequest, "", err, map[string]any{"foo2": "bar2"})
	assert.NotSame(t, err, newErr)
}

func Test_constructors(t *testing.T) {
	originalErr := errors.New("original error")

	testCases := []struct {
		name           string
		constructor    func(msg string, originalErr error, extras map[string]any) *HTTPError
		wantStatusCode int
		wantMessage    string
	}{
		{name: "NotFound", constructor: NotFound, wantStatusCode: http.StatusNotFound, wantMessage: "Resource not found."},
		{name: "MethodNotAllowed", constructor: MethodNotAllowed, wantStatusCode: http.StatusMethodNotAllowed, wantMessage: "Method not allowed."},
		{name: "BadRequest", constructor: BadRequest, wantStatusCode: http.StatusBadRequest, wantMessage: "The request was invalid in some way."},
		{name: "RequestEntityTooLarge", constructor: RequestEntityTooLarge, wantStatusCode: http.StatusRequestEntityTooLarge, wantMessage: "Request body is too large."},
		{name: "TooManyRequests", constructor: TooManyRequests, wantStatusCode: http.StatusTooManyRequests, wantMessage: "Too many requests, please try again later."},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" with default message", func(t *testing.T) {
			err := tc.constructor("", originalErr, map[string]any{"foo": "bar"})
			assert.Equal(t, tc.wantStatusCode, err.StatusCode)
			assert.Equal(t, tc.wantMessage, err.Message)
			assert.Equal(t, originalErr, err.Err)
			assert.Equal(t, map[string]any{"foo": "bar"}, err.Extras)
		})

		t.Run(tc.name+" with custom message", func(t *testing.T) {
			err := tc.constructor("Foo Bar", nil, nil)
			assert.Equal(t, tc.wantStatusCode, err.StatusCode)
			assert.Equal(t, "Foo Bar", err.Message)
			assert.Nil(t, err.Err)
			assert.Nil(t, err.Extras)
		})
	}
}

func Test_InternalError(t *testing.T) {
	originalErr := errors.New("original error")
	ctx := context.Background()

	t.Run("reports with the default function", func(t *testing.T) {
		getEntries := log.DefaultLogger.StartTest(log.ErrorLevel)

		err := InternalError(ctx, "", originalErr, map[string]any{"foo": "bad server error"})
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, "An internal error occurred while processing this request.", err.Message)
		assert.Equal(t, originalErr, err.Err)

		entries := getEntries()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Message, "An internal error occurred while processing this request.: original error")
	})

	t.Run("reports without an error", func(t *testing.T) {
		getEntries := log.DefaultLogger.StartTest(log.ErrorLevel)

		err := InternalError(ctx, "Foo Bar InternalError", nil, nil)
		assert.Equal(t, "Foo Bar InternalError", err.Message)
		assert.Nil(t, err.Err)

		entries := getEntries()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Message, "Foo Bar InternalError")
	})

	t.Run("reports with a custom function", func(t *testing.T) {
		defer SetDefaultReportErrorFunc(logError)

		var reportedErr error
		var reportedMsg string
		SetDefaultReportErrorFunc(func(ctx context.Context, err error, msg string) {
			reportedErr = err
			reportedMsg = msg
		})

		err := InternalError(ctx, "", originalErr, nil)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, originalErr, reportedErr)
		assert.Equal(t, "An internal error occurred while processing this request.", reportedMsg)
	})
}

func Test_HTTPError_Render(t *testing.T) {
	w := httptest.NewRecorder()

	BadRequest("", nil, map[string]any{"account_suffix": "must be exactly 8 digits"}).Render(w)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"error": "The request was invalid in some way.",
		"extras": {"account_suffix": "must be exactly 8 digits"}
	}`, w.Body.String())
}

func Test_HTTPError_json(t *testing.T) {
	gotJSON, err := json.Marshal(NewHTTPError(http.StatusAccepted, "Bad request", errors.New("hidden"), nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"error": "Bad request"}`, string(gotJSON))
}

type testError struct {
	Msg string
}

func (te *testError) Error() string {
	return te.Msg
}

func Test_HTTPError_unwrap(t *testing.T) {
	wrappedError := testError{"wrapped error"}
	httpErr := NewHTTPError(http.StatusForbidden, "Bad request", &wrappedError, nil)
	require.Equal(t, &wrappedError, httpErr.Unwrap())

	var e *testError
	require.ErrorAs(t, httpErr, &e)
	require.Equal(t, &wrappedError, e)
}
