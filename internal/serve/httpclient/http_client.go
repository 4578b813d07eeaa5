package httpclient

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/stellar/go-stellar-sdk/support/log"
)

//go:generate mockery --name=HTTPClientInterface --case=underscore --structname=HTTPClientMock --output=mocks --outpkg=mocks
type HTTPClientInterface interface {
	Do(*http.Request) (*http.Response, error)
}

const TimeoutClientInSeconds = 30

type Options struct {
	// Timeout bounds the whole request, including reading the response body. Zero means
	// TimeoutClientInSeconds.
	Timeout time.Duration
	// VerifyTLS enables the verification of the server certificate chain.
	VerifyTLS bool
}

// DefaultClient returns a default HTTP client with a timeout and certificate verification enabled.
func DefaultClient() HTTPClientInterface {
	return &http.Client{Timeout: TimeoutClientInSeconds * time.Second}
}

// NewClient returns an HTTP client configured with the given options. The client is safe for
// concurrent use.
func NewClient(opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = TimeoutClientInSeconds * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !opts.VerifyTLS {
		log.Warn("TLS certificate verification is DISABLED for outgoing requests. Responses can't be trusted to come from the expected host.")
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

var (
	_ HTTPClientInterface = DefaultClient()
	_ HTTPClientInterface = (*http.Client)(nil)
)
