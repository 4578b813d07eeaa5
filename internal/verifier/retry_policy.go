package verifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/yohaboy/cbe-verifier/internal/cbe"
)

const (
	DefaultMaxAttempts = 5
	DefaultBackoff     = 2 * time.Second
)

// ErrMaxRetriesReached is returned when every attempt failed with a retryable error.
var ErrMaxRetriesReached = errors.New("max retries reached")

// RetryPolicy is a bounded retry with a fixed backoff between attempts.
type RetryPolicy struct {
	// MaxAttempts counts the first attempt.
	MaxAttempts uint
	Backoff     time.Duration
	// ShouldRetry decides which errors are worth another attempt. Any other error ends the
	// retries right away.
	ShouldRetry func(err error) bool

	timer retry.Timer
}

// DefaultRetryPolicy makes up to 5 attempts, 2 seconds apart, and only retries when the bank
// answers with a 500.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     DefaultBackoff,
		ShouldRetry: IsRetryableBankError,
	}
}

// IsRetryableBankError reports whether the error is a 500 answer from the bank. The endpoint
// answers with a 500 for a while after a receipt is issued.
func IsRetryableBankError(err error) bool {
	var statusErr *cbe.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusInternalServerError
}

// WithTimer returns a copy of the policy that waits on the given timer between attempts.
func (p RetryPolicy) WithTimer(timer retry.Timer) RetryPolicy {
	p.timer = timer
	return p
}

func (p RetryPolicy) Validate() error {
	if p.MaxAttempts == 0 {
		return fmt.Errorf("max attempts must be greater than zero")
	}
	if p.Backoff < 0 {
		return fmt.Errorf("backoff can't be negative")
	}
	if p.ShouldRetry == nil {
		return fmt.Errorf("retry predicate can't be nil")
	}
	return nil
}

// Do calls fn until it succeeds, fails with an error ShouldRetry rejects, or MaxAttempts is
// reached. Running out of attempts returns an error wrapping both ErrMaxRetriesReached and the
// last error. A cancelled context stops the retries and its error is returned.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validating retry policy: %w", err)
	}

	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(p.MaxAttempts),
		retry.Delay(p.Backoff),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if n+1 < p.MaxAttempts {
				log.Ctx(ctx).Warnf("attempt #%d of %d failed, retrying in %s: %v", n+1, p.MaxAttempts, p.Backoff, err)
			}
		}),
	}
	if p.timer != nil {
		opts = append(opts, retry.WithTimer(p.timer))
	}

	err := retry.Do(
		func() error {
			if fnErr := fn(); fnErr != nil {
				if !p.ShouldRetry(fnErr) {
					return retry.Unrecoverable(fnErr)
				}
				return fnErr
			}
			return nil
		},
		opts...,
	)
	if err == nil {
		return nil
	}

	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return err
	}

	if p.ShouldRetry(err) {
		return fmt.Errorf("%w after %d attempts: %w", ErrMaxRetriesReached, p.MaxAttempts, err)
	}

	return err
}
