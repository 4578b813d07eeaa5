package crashtracker

import (
	"context"
	"fmt"
	"time"

	"github.com/stellar/go-stellar-sdk/support/log"
)

const dryRunLogPrefix = "[DRY_RUN Crash Reporter]"

// dryRunClient logs what would have been reported, with account suffixes redacted. It is meant for
// local development and tests.
type dryRunClient struct{}

func NewDryRunClient() (*dryRunClient, error) {
	return &dryRunClient{}, nil
}

func (*dryRunClient) LogAndReportErrors(ctx context.Context, err error, msg string) {
	report := RedactAccountSuffixes(fmt.Sprintf("%+v", withMessage(err, msg)))
	log.Ctx(ctx).Errorf("%s %s", dryRunLogPrefix, report)
}

func (*dryRunClient) LogAndReportMessages(ctx context.Context, msg string) {
	log.Ctx(ctx).Warnf("%s %s", dryRunLogPrefix, RedactAccountSuffixes(msg))
}

// FlushEvents has nothing to flush and always returns false.
func (*dryRunClient) FlushEvents(time.Duration) bool {
	return false
}

// Recover lets the panic go on.
func (*dryRunClient) Recover() {}

func (*dryRunClient) Clone() CrashTrackerClient {
	return &dryRunClient{}
}

var _ CrashTrackerClient = (*dryRunClient)(nil)
