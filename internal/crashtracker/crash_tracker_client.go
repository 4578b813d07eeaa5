package crashtracker

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// CrashTrackerClient reports unexpected verifier errors, e.g. receipts that could not be parsed.
// Account suffixes are redacted from everything a client reports.
type CrashTrackerClient interface {
	// LogAndReportErrors logs err prefixed by msg and reports it. msg alone is reported when err is nil.
	LogAndReportErrors(ctx context.Context, err error, msg string)
	// LogAndReportMessages logs msg as a warning and reports it.
	LogAndReportMessages(ctx context.Context, msg string)
	// FlushEvents blocks until the pending reports are sent or waitTime elapses.
	FlushEvents(waitTime time.Duration) bool
	// Recover reports a panic. It must be deferred.
	Recover()
	// Clone returns a client that is safe to use from another goroutine.
	Clone() CrashTrackerClient
}

// withMessage prefixes err with msg. msg becomes the error when err is nil.
func withMessage(err error, msg string) error {
	switch {
	case err == nil:
		return errors.New(msg)
	case msg == "":
		return err
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
