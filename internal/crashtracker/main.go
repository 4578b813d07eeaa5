package crashtracker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stellar/go-stellar-sdk/support/log"
)

// CrashTrackerType selects where unexpected verifier errors are reported.
type CrashTrackerType string

const (
	// CrashTrackerTypeSentry reports to the Sentry project identified by the DSN.
	CrashTrackerTypeSentry CrashTrackerType = "SENTRY"
	// CrashTrackerTypeDryRun only logs, with account suffixes redacted.
	CrashTrackerTypeDryRun CrashTrackerType = "DRY_RUN"
)

var ErrMissingSentryDSN = errors.New("a sentry DSN is required by the SENTRY crash tracker")

func ParseCrashTrackerType(crashTrackerTypeStr string) (CrashTrackerType, error) {
	ctType := CrashTrackerType(strings.ToUpper(strings.TrimSpace(crashTrackerTypeStr)))

	switch ctType {
	case CrashTrackerTypeSentry, CrashTrackerTypeDryRun:
		return ctType, nil
	default:
		return "", fmt.Errorf("invalid crash tracker type %q", ctType)
	}
}

type CrashTrackerOptions struct {
	CrashTrackerType CrashTrackerType
	Environment      string
	GitCommit        string
	ServiceName      string

	// Sentry
	SentryDSN string
}

func GetClient(ctx context.Context, opts CrashTrackerOptions) (CrashTrackerClient, error) {
	switch opts.CrashTrackerType {
	case CrashTrackerTypeSentry:
		if opts.SentryDSN == "" {
			return nil, ErrMissingSentryDSN
		}
		log.Ctx(ctx).Infof("Reporting %s errors to %s", opts.ServiceName, opts.CrashTrackerType)
		return NewSentryClient(opts)

	case CrashTrackerTypeDryRun:
		log.Ctx(ctx).Warnf("Using the %s crash tracker, %s errors will only be logged", opts.CrashTrackerType, opts.ServiceName)
		return NewDryRunClient()

	default:
		return nil, fmt.Errorf("unknown crash tracker type: %q", opts.CrashTrackerType)
	}
}
