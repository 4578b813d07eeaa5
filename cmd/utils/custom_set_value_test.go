package utils

import (
	"go/types"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stellar/go-stellar-sdk/support/config"
	"github.com/stellar/go-stellar-sdk/support/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
	"github.com/yohaboy/cbe-verifier/internal/monitor"
)

// customSetterTestCase is a test case to test a custom_set_value function.
type customSetterTestCase[T any] struct {
	name            string
	args            []string
	envValue        string
	wantErrContains string
	wantResult      T
}

// customSetterTester runs the config option through a cobra command and checks the value it ends
// up holding.
func customSetterTester[T any](t *testing.T, tc customSetterTestCase[T], co config.ConfigOption) {
	ClearTestEnvironment(t)
	if tc.envValue != "" {
		envName := strings.ToUpper(co.Name)
		envName = strings.ReplaceAll(envName, "-", "_")
		t.Setenv(envName, tc.envValue)
	}

	testCmd := cobra.Command{
		RunE: func(cmd *cobra.Command, args []string) error {
			co.Require()
			return co.SetValue()
		},
	}
	buf := new(strings.Builder)
	testCmd.SetOut(buf)

	err := co.Init(&testCmd)
	require.NoError(t, err)

	// A nil slice makes cobra parse the test binary arguments.
	testCmd.SetArgs(append([]string{}, tc.args...))
	err = testCmd.Execute()

	if tc.wantErrContains != "" {
		assert.Error(t, err)
		assert.Contains(t, err.Error(), tc.wantErrContains)
		return
	}
	require.NoError(t, err)

	destPointer, ok := co.ConfigKey.(*T)
	require.True(t, ok)
	assert.Equal(t, tc.wantResult, *destPointer)
}

func Test_SetConfigOptionLogLevel(t *testing.T) {
	opts := struct{ logrusLevel logrus.Level }{}

	co := config.ConfigOption{
		Name:           "log-level",
		OptType:        types.String,
		CustomSetValue: SetConfigOptionLogLevel,
		ConfigKey:      &opts.logrusLevel,
	}

	testCases := []customSetterTestCase[logrus.Level]{
		{
			name:            "returns an error if the log level is empty",
			args:            []string{},
			wantErrContains: `couldn't parse log level: not a valid logrus Level: ""`,
		},
		{
			name:            "returns an error if the log level is invalid",
			args:            []string{"--log-level", "test"},
			wantErrContains: `couldn't parse log level: not a valid logrus Level: "test"`,
		},
		{
			name:       "🎉 handles log level TRACE (through CLI args)",
			args:       []string{"--log-level", "TRACE"},
			wantResult: logrus.TraceLevel,
		},
		{
			name:       "🎉 handles log level TRACE (through ENV vars)",
			envValue:   "TRACE",
			wantResult: logrus.TraceLevel,
		},
		{
			name:       "🎉 handles log level INFO (through CLI args)",
			args:       []string{"--log-level", "iNfO"},
			wantResult: logrus.InfoLevel,
		},
		{
			name:       "🎉 handles log level INFO (through ENV vars)",
			envValue:   "INFO",
			wantResult: logrus.InfoLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts.logrusLevel = 0
			customSetterTester[logrus.Level](t, tc, co)
		})
	}
}

func Test_SetConfigOptionMetricType(t *testing.T) {
	opts := struct{ metricType monitor.MetricType }{}

	co := config.ConfigOption{
		Name:           "metrics-type",
		OptType:        types.String,
		CustomSetValue: SetConfigOptionMetricType,
		ConfigKey:      &opts.metricType,
	}

	testCases := []customSetterTestCase[monitor.MetricType]{
		{
			name:            "returns an error if the value is empty",
			args:            []string{},
			wantErrContains: `couldn't parse metric type: invalid metric type ""`,
		},
		{
			name:            "returns an error if the value is not supported",
			args:            []string{"--metrics-type", "test"},
			wantErrContains: `couldn't parse metric type: invalid metric type "TEST"`,
		},
		{
			name:       "🎉 handles metric type (through CLI args): PROMETHEUS",
			args:       []string{"--metrics-type", "prometheus"},
			wantResult: monitor.MetricTypePrometheus,
		},
		{
			name:       "🎉 handles metric type (through ENV vars): PROMETHEUS",
			envValue:   "PROMETHEUS",
			wantResult: monitor.MetricTypePrometheus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts.metricType = ""
			customSetterTester[monitor.MetricType](t, tc, co)
		})
	}
}

func Test_SetConfigOptionCrashTrackerType(t *testing.T) {
	opts := struct{ crashTrackerType crashtracker.CrashTrackerType }{}

	co := config.ConfigOption{
		Name:           "crash-tracker-type",
		OptType:        types.String,
		CustomSetValue: SetConfigOptionCrashTrackerType,
		ConfigKey:      &opts.crashTrackerType,
	}

	testCases := []customSetterTestCase[crashtracker.CrashTrackerType]{
		{
			name:            "returns an error if the value is empty",
			args:            []string{},
			wantErrContains: `couldn't parse crash tracker type: invalid crash tracker type ""`,
		},
		{
			name:            "returns an error if the value is not supported",
			args:            []string{"--crash-tracker-type", "test"},
			wantErrContains: `couldn't parse crash tracker type: invalid crash tracker type "TEST"`,
		},
		{
			name:       "🎉 handles crash tracker type (through CLI args): SENTRY",
			args:       []string{"--crash-tracker-type", "SeNtRy"},
			wantResult: crashtracker.CrashTrackerTypeSentry,
		},
		{
			name:       "🎉 handles crash tracker type (through ENV vars): DRY_RUN",
			envValue:   "DRY_RUN",
			wantResult: crashtracker.CrashTrackerTypeDryRun,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts.crashTrackerType = ""
			customSetterTester[crashtracker.CrashTrackerType](t, tc, co)
		})
	}
}

func Test_SetCorsAllowedOriginsFunc(t *testing.T) {
	opts := struct{ corsAddressesFlag []string }{}

	co := config.ConfigOption{
		Name:           "cors-allowed-origins",
		OptType:        types.String,
		CustomSetValue: SetCorsAllowedOrigins,
		ConfigKey:      &opts.corsAddressesFlag,
		Required:       false,
	}

	testCases := []customSetterTestCase[[]string]{
		{
			name:            "returns an error if the cors flag is empty",
			args:            []string{"--cors-allowed-origins", ""},
			wantErrContains: "cors allowed addresses cannot be empty",
		},
		{
			name:            "returns an error if the cors flag results in an empty array",
			args:            []string{"--cors-allowed-origins", ","},
			wantErrContains: `error parsing cors addresses: parse ""`,
		},
		{
			name:       "🎉 handles two urls successfully (from CLI args)",
			args:       []string{"--cors-allowed-origins", "https://shop.test,https://pay.test"},
			wantResult: []string{"https://shop.test", "https://pay.test"},
		},
		{
			name:       "🎉 handles one url successfully (from ENV vars)",
			envValue:   "https://shop.test",
			wantResult: []string{"https://shop.test"},
		},
		{
			name:       `logs a warning when the "*" value is used`,
			envValue:   "*",
			wantResult: []string{"*"},
		},
	}

	getEntries := log.DefaultLogger.StartTest(log.WarnLevel)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts.corsAddressesFlag = nil
			customSetterTester[[]string](t, tc, co)
		})
	}

	entries := getEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, `The value "*" for the CORS Allowed Origins is too permissive and not recommended.`, entries[0].Message)
}

func Test_SetConfigOptionURLString(t *testing.T) {
	opts := struct{ bankBaseURL string }{}

	co := config.ConfigOption{
		Name:           "cbe-base-url",
		OptType:        types.String,
		CustomSetValue: SetConfigOptionURLString,
		ConfigKey:      &opts.bankBaseURL,
		FlagDefault:    "https://apps.cbe.com.et:100/",
		Required:       false,
	}

	testCases := []customSetterTestCase[string]{
		{
			name:            "returns an error if the url is empty",
			args:            []string{"--cbe-base-url", ""},
			wantErrContains: "cbe-base-url cannot be empty",
		},
		{
			name:            "returns an error if the url is relative",
			args:            []string{"--cbe-base-url", "apps.cbe.com.et"},
			wantErrContains: "error parsing cbe-base-url",
		},
		{
			name:            "returns an error if the scheme isn't http",
			args:            []string{"--cbe-base-url", "ftp://apps.cbe.com.et/"},
			wantErrContains: `cbe-base-url must use the http or https scheme, got "ftp"`,
		},
		{
			name:       "🎉 handles the url successfully (from CLI args)",
			args:       []string{"--cbe-base-url", "http://localhost:8080/"},
			wantResult: "http://localhost:8080/",
		},
		{
			name:       "🎉 handles the url successfully (from ENV vars)",
			envValue:   "https://mirror.test/",
			wantResult: "https://mirror.test/",
		},
		{
			name:       "🎉 handles the DEFAULT value",
			wantResult: "https://apps.cbe.com.et:100/",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts.bankBaseURL = ""
			customSetterTester[string](t, tc, co)
		})
	}
}

func Test_SetConfigOptionSeconds(t *testing.T) {
	opts := struct{ timeout time.Duration }{}

	co := config.ConfigOption{
		Name:           "cbe-request-timeout-seconds",
		OptType:        types.Int,
		CustomSetValue: SetConfigOptionSeconds,
		ConfigKey:      &opts.timeout,
		FlagDefault:    30,
		Required:       false,
	}

	testCases := []customSetterTestCase[time.Duration]{
		{
			name:            "returns an error if the value is negative",
			args:            []string{"--cbe-request-timeout-seconds", "-1"},
			wantErrContains: "cbe-request-timeout-seconds cannot be negative, got -1",
		},
		{
			name:       "🎉 handles zero",
			args:       []string{"--cbe-request-timeout-seconds", "0"},
			wantResult: 0,
		},
		{
			name:       "🎉 handles seconds (from CLI args)",
			args:       []string{"--cbe-request-timeout-seconds", "5"},
			wantResult: 5 * time.Second,
		},
		{
			name:       "🎉 handles seconds (from ENV vars)",
			envValue:   "12",
			wantResult: 12 * time.Second,
		},
		{
			name:       "🎉 handles the DEFAULT value",
			wantResult: 30 * time.Second,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts.timeout = time.Hour
			customSetterTester[time.Duration](t, tc, co)
		})
	}
}

func Test_SetConfigOptionPositiveUint(t *testing.T) {
	opts := struct{ maxAttempts uint }{}

	co := config.ConfigOption{
		Name:           "cbe-max-attempts",
		OptType:        types.Int,
		CustomSetValue: SetConfigOptionPositiveUint,
		ConfigKey:      &opts.maxAttempts,
		FlagDefault:    5,
		Required:       false,
	}

	testCases := []customSetterTestCase[uint]{
		{
			name:            "returns an error if the value is zero",
			args:            []string{"--cbe-max-attempts", "0"},
			wantErrContains: "cbe-max-attempts must be at least 1, got 0",
		},
		{
			name:            "returns an error if the value is negative",
			envValue:        "-3",
			wantErrContains: "cbe-max-attempts must be at least 1, got -3",
		},
		{
			name:       "🎉 handles the value (from CLI args)",
			args:       []string{"--cbe-max-attempts", "1"},
			wantResult: 1,
		},
		{
			name:       "🎉 handles the DEFAULT value",
			wantResult: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts.maxAttempts = 0
			customSetterTester[uint](t, tc, co)
		})
	}
}
