package crashtracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stellar/go-stellar-sdk/support/log"
)

type hubSentryInterface interface {
	CaptureException(exception error) *sentry.EventID
	CaptureMessage(message string) *sentry.EventID
	Clone() *sentry.Hub
	Flush(timeout time.Duration) bool
	Recover(err interface{}) *sentry.EventID
}

// Ensuring that *sentry.Hub is implementing hubSentryInterface interface.
var _ hubSentryInterface = (*sentry.Hub)(nil)

type sentryClient struct {
	hub hubSentryInterface
}

// LogAndReportErrors logs the error, prefixed by msg, and captures it as a sentry exception.
// Cancelled requests are not reported.
func (s *sentryClient) LogAndReportErrors(ctx context.Context, err error, msg string) {
	if errors.Is(err, context.Canceled) {
		log.Ctx(ctx).Warn("context canceled, not reporting error to sentry")
		return
	}

	err = withMessage(err, msg)
	log.Ctx(ctx).WithStack(err).Errorf("%+v", err)
	s.hub.CaptureException(err)
}

// LogAndReportMessages logs the message at WARN level and captures it as a sentry message.
func (s *sentryClient) LogAndReportMessages(ctx context.Context, msg string) {
	log.Ctx(ctx).Warn(msg)
	s.hub.CaptureMessage(msg)
}

// FlushEvents waits up to waitTime for buffered events to be sent.
func (s *sentryClient) FlushEvents(waitTime time.Duration) bool {
	return s.hub.Flush(waitTime)
}

// Recover captures unhandled panics. It must be deferred.
func (s *sentryClient) Recover() {
	if err := recover(); err != nil {
		s.hub.Recover(err)
	}
}

// Clone returns a client with its own hub, to be used in a separate goroutine.
func (s *sentryClient) Clone() CrashTrackerClient {
	return &sentryClient{hub: s.hub.Clone()}
}

// NewSentryClient initializes the global sentry client. Account suffixes are redacted from every
// event before it leaves the process.
func NewSentryClient(opts CrashTrackerOptions) (*sentryClient, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         opts.SentryDSN,
		Release:     opts.GitCommit,
		Environment: opts.Environment,
		ServerName:  opts.ServiceName,
		BeforeSend:  redactEvent,
	})
	if err != nil {
		return nil, fmt.Errorf("error setting up Sentry: %w", err)
	}

	return &sentryClient{hub: sentry.CurrentHub()}, nil
}

// Ensuring that sentryClient is implementing CrashTrackerClient interface
var _ CrashTrackerClient = (*sentryClient)(nil)
