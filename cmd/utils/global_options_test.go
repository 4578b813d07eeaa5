package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
	"github.com/yohaboy/cbe-verifier/internal/monitor"
)

func Test_GlobalOptionsType_PopulateCrashTrackerOptions(t *testing.T) {
	globalOptions := GlobalOptionsType{
		Environment: "staging",
		GitCommit:   "1234567890abcdef",
		Version:     "1.0.0",
		SentryDSN:   "https://public@sentry.example.com/1",
	}

	testCases := []struct {
		crashTrackerType crashtracker.CrashTrackerType
		wantSentryDSN    string
	}{
		{crashTrackerType: crashtracker.CrashTrackerTypeDryRun},
		{crashTrackerType: crashtracker.CrashTrackerTypeSentry, wantSentryDSN: "https://public@sentry.example.com/1"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.crashTrackerType), func(t *testing.T) {
			crashTrackerOptions := crashtracker.CrashTrackerOptions{CrashTrackerType: tc.crashTrackerType}
			globalOptions.PopulateCrashTrackerOptions(&crashTrackerOptions)

			assert.Equal(t, crashtracker.CrashTrackerOptions{
				CrashTrackerType: tc.crashTrackerType,
				Environment:      "staging",
				GitCommit:        "1234567890abcdef",
				ServiceName:      "cbe-verifier",
				SentryDSN:        tc.wantSentryDSN,
			}, crashTrackerOptions)
		})
	}
}

func Test_GlobalOptionsType_MetricOptions(t *testing.T) {
	globalOptions := GlobalOptionsType{Environment: "staging"}

	assert.Equal(t, monitor.MetricOptions{
		MetricType:  monitor.MetricTypePrometheus,
		Environment: "staging",
	}, globalOptions.MetricOptions(monitor.MetricTypePrometheus))
}
