// Package cbe downloads payment receipts from the Commercial Bank of Ethiopia receipt endpoint.
package cbe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/yohaboy/cbe-verifier/internal/monitor"
	"github.com/yohaboy/cbe-verifier/internal/serve/httpclient"
	"github.com/yohaboy/cbe-verifier/internal/utils"
)

const (
	DefaultBaseURL = "https://apps.cbe.com.et:100/"
	// MaxReceiptSizeBytes bounds the receipt body. Real receipts are a single page of a few KB.
	MaxReceiptSizeBytes = 10 * 1024 * 1024
	pdfMediaType        = "application/pdf"
)

// browserHeaders are sent with every request. The endpoint rejects or changes its answer for
// requests that don't look like they come from a browser.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
	"Accept":          pdfMediaType,
	"Accept-Language": "en-US,en;q=0.9",
}

// ClientInterface fetches receipt documents.
//
//go:generate mockery --name=ClientInterface --case=underscore --structname=MockClient --filename=client_mock.go --inpackage
type ClientInterface interface {
	FetchReceipt(ctx context.Context, reference, accountSuffix string) ([]byte, error)
}

type ClientOptions struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL        string
	HTTPClient     httpclient.HTTPClientInterface
	MonitorService monitor.MonitorServiceInterface
}

// Client fetches receipts with a single request per call. Retrying is up to the caller.
type Client struct {
	baseURL        *url.URL
	httpClient     httpclient.HTTPClientInterface
	monitorService monitor.MonitorServiceInterface
}

func NewClient(opts ClientOptions) (*Client, error) {
	rawBaseURL := opts.BaseURL
	if rawBaseURL == "" {
		rawBaseURL = DefaultBaseURL
	}

	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", rawBaseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", rawBaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = httpclient.DefaultClient()
	}

	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		monitorService: opts.MonitorService,
	}, nil
}

// FetchReceipt downloads the receipt identified by the reference and the account suffix. It
// returns a *StatusError for non-2xx answers, a *TransportError when no answer could be read,
// and ErrNotPDF when the answer isn't a PDF document.
func (c *Client) FetchReceipt(ctx context.Context, reference, accountSuffix string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.receiptURL(reference, accountSuffix), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	c.recordFetchMetrics(ctx, time.Since(startTime), resp, err)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if !utils.ContentTypeContains(resp.Header, pdfMediaType) {
		log.Ctx(ctx).Debugf("receipt response has content type %q", resp.Header.Get("Content-Type"))
		return nil, ErrNotPDF
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxReceiptSizeBytes+1))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}
	if len(body) > MaxReceiptSizeBytes {
		return nil, ErrReceiptTooLarge
	}

	return body, nil
}

// receiptURL builds {base}?id={reference}{accountSuffix}.
func (c *Client) receiptURL(reference, accountSuffix string) string {
	u := *c.baseURL
	query := u.Query()
	query.Set("id", reference+accountSuffix)
	u.RawQuery = query.Encode()

	return u.String()
}

func (c *Client) recordFetchMetrics(ctx context.Context, duration time.Duration, resp *http.Response, reqErr error) {
	if c.monitorService == nil {
		return
	}

	labels := monitor.NewCBEFetchLabels(resp, reqErr).ToMap()

	err := errors.Join(
		c.monitorService.MonitorHistogram(duration.Seconds(), monitor.CBEFetchDurationTag, labels),
		c.monitorService.MonitorCounters(monitor.CBEFetchTotalTag, labels),
	)
	if err != nil {
		log.Ctx(ctx).Errorf("monitoring CBE receipt request: %v", err)
	}
}

var _ ClientInterface = (*Client)(nil)
