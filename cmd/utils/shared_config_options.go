package utils

import (
	"go/types"
	"time"

	"github.com/stellar/go-stellar-sdk/support/config"

	"github.com/yohaboy/cbe-verifier/internal/cbe"
	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
	di "github.com/yohaboy/cbe-verifier/internal/dependencyinjection"
	"github.com/yohaboy/cbe-verifier/internal/serve/httpclient"
	"github.com/yohaboy/cbe-verifier/internal/verifier"
)

// ReceiptVerifierConfigOptions are the options of the bank client and of its retry policy. Both
// the serve and the verify commands use them.
func ReceiptVerifierConfigOptions(opts *di.ReceiptVerifierOptions) []*config.ConfigOption {
	return []*config.ConfigOption{
		{
			Name:           "cbe-base-url",
			Usage:          "The base URL of the bank receipt endpoint.",
			OptType:        types.String,
			CustomSetValue: SetConfigOptionURLString,
			ConfigKey:      &opts.BankBaseURL,
			FlagDefault:    cbe.DefaultBaseURL,
			Required:       true,
		},
		{
			Name:        "cbe-verify-tls",
			Usage:       "Verify the TLS certificate of the bank receipt endpoint. The endpoint has served an incomplete certificate chain, so this is off by default.",
			OptType:     types.Bool,
			ConfigKey:   &opts.VerifyTLS,
			FlagDefault: false,
			Required:    false,
		},
		{
			Name:           "cbe-request-timeout-seconds",
			Usage:          "The timeout of a single request to the bank, in seconds.",
			OptType:        types.Int,
			CustomSetValue: SetConfigOptionSeconds,
			ConfigKey:      &opts.RequestTimeout,
			FlagDefault:    httpclient.TimeoutClientInSeconds,
			Required:       true,
		},
		{
			Name:           "cbe-max-attempts",
			Usage:          "The maximum number of attempts to download a receipt, counting the first one.",
			OptType:        types.Int,
			CustomSetValue: SetConfigOptionPositiveUint,
			ConfigKey:      &opts.MaxAttempts,
			FlagDefault:    verifier.DefaultMaxAttempts,
			Required:       true,
		},
		{
			Name:           "cbe-retry-backoff-seconds",
			Usage:          "The time to wait between two attempts, in seconds.",
			OptType:        types.Int,
			CustomSetValue: SetConfigOptionSeconds,
			ConfigKey:      &opts.RetryBackoff,
			FlagDefault:    int(verifier.DefaultBackoff / time.Second),
			Required:       true,
		},
	}
}

func CrashTrackerTypeConfigOption(targetPointer interface{}) *config.ConfigOption {
	return &config.ConfigOption{
		Name:           "crash-tracker-type",
		Usage:          `Crash tracker type. Options: "SENTRY", "DRY_RUN"`,
		OptType:        types.String,
		CustomSetValue: SetConfigOptionCrashTrackerType,
		ConfigKey:      targetPointer,
		FlagDefault:    string(crashtracker.CrashTrackerTypeDryRun),
		Required:       true,
	}
}

// EnvFileConfigOption declares the --env-file flag. The file itself is loaded by LoadEnvFile
// before the command line is parsed.
func EnvFileConfigOption(targetPointer *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:      EnvFileFlagName,
		Usage:     "Path of a dotenv file to load. Defaults to the ENV_FILE variable, then to a .env file in the working directory.",
		OptType:   types.String,
		ConfigKey: targetPointer,
		Required:  false,
	}
}
