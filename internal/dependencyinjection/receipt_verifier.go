package dependencyinjection

import (
	"fmt"
	"time"

	"github.com/yohaboy/cbe-verifier/internal/cbe"
	"github.com/yohaboy/cbe-verifier/internal/monitor"
	"github.com/yohaboy/cbe-verifier/internal/serve/httpclient"
	"github.com/yohaboy/cbe-verifier/internal/verifier"
)

const ReceiptVerifierInstanceName = "receipt_verifier_instance"

type ReceiptVerifierOptions struct {
	BankBaseURL    string
	VerifyTLS      bool
	RequestTimeout time.Duration
	MaxAttempts    uint
	RetryBackoff   time.Duration
	MonitorService monitor.MonitorServiceInterface
}

// NewReceiptVerifier wires the bank client and the retry policy into a verifier, or returns the
// verifier created before.
func NewReceiptVerifier(opts ReceiptVerifierOptions) (verifier.VerifierInterface, error) {
	instance, found, err := getTypedInstance[verifier.VerifierInterface](ReceiptVerifierInstanceName)
	if err != nil {
		return nil, err
	}
	if found {
		return instance, nil
	}

	client, err := cbe.NewClient(cbe.ClientOptions{
		BaseURL: opts.BankBaseURL,
		HTTPClient: httpclient.NewClient(httpclient.Options{
			Timeout:   opts.RequestTimeout,
			VerifyTLS: opts.VerifyTLS,
		}),
		MonitorService: opts.MonitorService,
	})
	if err != nil {
		return nil, fmt.Errorf("creating bank client: %w", err)
	}

	retryPolicy := verifier.DefaultRetryPolicy()
	if opts.MaxAttempts > 0 {
		retryPolicy.MaxAttempts = opts.MaxAttempts
	}
	if opts.RetryBackoff > 0 {
		retryPolicy.Backoff = opts.RetryBackoff
	}

	newVerifier, err := verifier.NewVerifier(verifier.VerifierOptions{
		Client:         client,
		RetryPolicy:    &retryPolicy,
		MonitorService: opts.MonitorService,
	})
	if err != nil {
		return nil, fmt.Errorf("creating receipt verifier: %w", err)
	}

	SetInstance(ReceiptVerifierInstanceName, newVerifier)

	return newVerifier, nil
}
