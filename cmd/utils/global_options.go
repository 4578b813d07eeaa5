package utils

import (
	"github.com/sirupsen/logrus"

	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
	"github.com/yohaboy/cbe-verifier/internal/monitor"
)

// ServiceName identifies this service in crash reports and health answers.
const ServiceName = "cbe-verifier"

// GlobalOptionsType holds the options shared by every subcommand.
type GlobalOptionsType struct {
	LogLevel    logrus.Level
	SentryDSN   string
	Environment string
	Version     string
	GitCommit   string
	EnvFile     string
}

// PopulateCrashTrackerOptions copies the release details into crashTrackerOptions. The sentry DSN is
// only copied for the SENTRY crash tracker.
func (g GlobalOptionsType) PopulateCrashTrackerOptions(crashTrackerOptions *crashtracker.CrashTrackerOptions) {
	crashTrackerOptions.Environment = g.Environment
	crashTrackerOptions.GitCommit = g.GitCommit
	crashTrackerOptions.ServiceName = ServiceName
	if crashTrackerOptions.CrashTrackerType == crashtracker.CrashTrackerTypeSentry {
		crashTrackerOptions.SentryDSN = g.SentryDSN
	}
}

func (g GlobalOptionsType) MetricOptions(metricType monitor.MetricType) monitor.MetricOptions {
	return monitor.MetricOptions{
		MetricType:  metricType,
		Environment: g.Environment,
	}
}
