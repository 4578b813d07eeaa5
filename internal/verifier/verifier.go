// Package verifier checks CBE payment receipts: it validates the receipt identifiers, downloads
// the receipt with a bounded retry and extracts its fields.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/yohaboy/cbe-verifier/internal/cbe"
	"github.com/yohaboy/cbe-verifier/internal/monitor"
	"github.com/yohaboy/cbe-verifier/internal/receipt"
)

const (
	invalidInputMessage      = "Invalid input parameters"
	maxRetriesReachedMessage = "Max retries reached"
	notPDFMessage            = "Processing error: Response is not a PDF"
)

//go:generate mockery --name=VerifierInterface --case=underscore --structname=MockVerifier --filename=verifier_mock.go --inpackage
type VerifierInterface interface {
	Verify(ctx context.Context, reference, accountSuffix string) Result
}

type VerifierOptions struct {
	Client cbe.ClientInterface
	// TextExtractor defaults to receipt.PDFTextExtractor.
	TextExtractor receipt.TextExtractor
	// RetryPolicy defaults to DefaultRetryPolicy.
	RetryPolicy    *RetryPolicy
	MonitorService monitor.MonitorServiceInterface
}

func (o VerifierOptions) Validate() error {
	if o.Client == nil {
		return fmt.Errorf("client cannot be nil")
	}
	if o.RetryPolicy != nil {
		if err := o.RetryPolicy.Validate(); err != nil {
			return fmt.Errorf("validating retry policy: %w", err)
		}
	}
	return nil
}

// Verifier is safe for concurrent use as long as its client is.
type Verifier struct {
	client         cbe.ClientInterface
	textExtractor  receipt.TextExtractor
	retryPolicy    RetryPolicy
	monitorService monitor.MonitorServiceInterface
}

func NewVerifier(opts VerifierOptions) (*Verifier, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating verifier options: %w", err)
	}

	v := &Verifier{
		client:         opts.Client,
		textExtractor:  opts.TextExtractor,
		retryPolicy:    DefaultRetryPolicy(),
		monitorService: opts.MonitorService,
	}
	if v.textExtractor == nil {
		v.textExtractor = receipt.PDFTextExtractor{}
	}
	if opts.RetryPolicy != nil {
		v.retryPolicy = *opts.RetryPolicy
	}

	return v, nil
}

// Verify validates the identifiers, downloads the receipt and extracts its fields. Every failure
// is returned as a failed Result: Verify never panics and never returns an error. Each attempt
// downloads and parses the receipt from scratch.
func (v *Verifier) Verify(ctx context.Context, reference, accountSuffix string) (result Result) {
	ctx = log.Set(ctx, log.Ctx(ctx).WithFields(log.F{
		"verification_id": uuid.NewString(),
		"reference":       reference,
	}))

	startTime := time.Now()
	attempts := 0
	defer func() {
		if r := recover(); r != nil {
			log.Ctx(ctx).Errorf("recovered from panic while verifying receipt: %v", r)
			result = Failed(ErrorKindProcessingError, fmt.Sprintf("Processing error: %v", r))
		}
		v.recordOutcome(ctx, result, attempts, time.Since(startTime))
	}()

	if !ValidateInputs(reference, accountSuffix) {
		return Failed(ErrorKindInvalidInput, invalidInputMessage)
	}

	var fields receipt.Fields
	err := v.retryPolicy.Do(ctx, func() error {
		attempts++

		content, err := v.client.FetchReceipt(ctx, reference, accountSuffix)
		if err != nil {
			return fmt.Errorf("fetching receipt: %w", err)
		}

		fields, err = receipt.Parse(content, v.textExtractor)
		if err != nil {
			return fmt.Errorf("parsing receipt: %w", err)
		}

		return nil
	})
	if err != nil {
		return failureFromError(err)
	}

	return Succeeded(fields)
}

// failureFromError classifies the error of the last attempt.
func failureFromError(err error) Result {
	var (
		statusErr    *cbe.StatusError
		parseErr     *receipt.ParseError
		transportErr *cbe.TransportError
	)

	switch {
	case errors.Is(err, ErrMaxRetriesReached):
		return Failed(ErrorKindMaxRetriesReached, maxRetriesReachedMessage)
	case errors.As(err, &statusErr):
		return Failed(ErrorKindBankServerError, fmt.Sprintf("Bank server error: %s", statusErr.Error()))
	case errors.Is(err, cbe.ErrNotPDF):
		return Failed(ErrorKindProcessingError, notPDFMessage)
	case errors.As(err, &parseErr):
		return Failed(ErrorKindProcessingError, fmt.Sprintf("Processing error: %s", parseErr.Error()))
	case errors.As(err, &transportErr):
		return Failed(ErrorKindNetworkError, fmt.Sprintf("Network error: %s", transportErr.Error()))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Failed(ErrorKindNetworkError, fmt.Sprintf("Network error: %s", err.Error()))
	default:
		return Failed(ErrorKindProcessingError, fmt.Sprintf("Processing error: %s", err.Error()))
	}
}

func (v *Verifier) recordOutcome(ctx context.Context, result Result, attempts int, duration time.Duration) {
	logEntry := log.Ctx(ctx).WithFields(log.F{
		"attempts": attempts,
		"outcome":  result.Outcome(),
		"duration": duration.String(),
	})
	if result.Success {
		if result.Receipt.IsComplete() {
			logEntry.Info("receipt verified")
		} else {
			logEntry.Warn("receipt verified with missing fields")
		}
	} else {
		logEntry.Warnf("receipt verification failed: %s", result.ErrorMessage)
	}

	if v.monitorService == nil {
		return
	}

	labels := monitor.VerificationLabels{Outcome: result.Outcome()}.ToMap()
	err := errors.Join(
		v.monitorService.MonitorCounters(monitor.VerificationsTotalTag, labels),
		v.monitorService.MonitorDuration(duration, monitor.VerificationDurationTag, labels),
	)
	if err != nil {
		log.Ctx(ctx).Errorf("monitoring verification: %v", err)
	}
}

var _ VerifierInterface = (*Verifier)(nil)
