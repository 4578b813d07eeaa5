package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stellar/go-stellar-sdk/support/config"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
	"github.com/yohaboy/cbe-verifier/internal/monitor"
)

func SetConfigOptionMetricType(co *config.ConfigOption) error {
	metricType := viper.GetString(co.Name)

	metricTypeParsed, err := monitor.ParseMetricType(metricType)
	if err != nil {
		return fmt.Errorf("couldn't parse metric type: %w", err)
	}

	key, ok := co.ConfigKey.(*monitor.MetricType)
	if !ok {
		return fmt.Errorf("configKey has an invalid type %T", co.ConfigKey)
	}
	*key = metricTypeParsed
	return nil
}

func SetConfigOptionCrashTrackerType(co *config.ConfigOption) error {
	ctType := viper.GetString(co.Name)

	ctTypeParsed, err := crashtracker.ParseCrashTrackerType(ctType)
	if err != nil {
		return fmt.Errorf("couldn't parse crash tracker type: %w", err)
	}

	key, ok := co.ConfigKey.(*crashtracker.CrashTrackerType)
	if !ok {
		return fmt.Errorf("configKey has an invalid type %T", co.ConfigKey)
	}
	*key = ctTypeParsed
	return nil
}

func SetConfigOptionLogLevel(co *config.ConfigOption) error {
	logLevelStr := viper.GetString(co.Name)
	logLevel, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		return fmt.Errorf("couldn't parse log level: %w", err)
	}

	key, ok := co.ConfigKey.(*logrus.Level)
	if !ok {
		return fmt.Errorf("configKey has an invalid type %T", co.ConfigKey)
	}
	*key = logLevel

	if config.IsExplicitlySet(co) {
		log.Debugf("Setting log level to: %q", logLevel)
		log.DefaultLogger.SetLevel(*key)
	} else {
		log.Debugf("Using default log level: %q", logLevel)
	}
	return nil
}

// SetCorsAllowedOrigins parses a comma-separated list of origins.
func SetCorsAllowedOrigins(co *config.ConfigOption) error {
	corsAllowedOriginsOptions := viper.GetString(co.Name)

	if corsAllowedOriginsOptions == "" {
		return fmt.Errorf("cors allowed addresses cannot be empty")
	}

	corsAllowedOrigins := strings.Split(corsAllowedOriginsOptions, ",")

	for _, address := range corsAllowedOrigins {
		_, err := url.ParseRequestURI(address)
		if err != nil {
			return fmt.Errorf("error parsing cors addresses: %w", err)
		}
		if address == "*" {
			log.Warn(`The value "*" for the CORS Allowed Origins is too permissive and not recommended.`)
		}
	}

	key, ok := co.ConfigKey.(*[]string)
	if !ok {
		return fmt.Errorf("the expected type for this config key is a string slice, but got a %T instead", co.ConfigKey)
	}
	*key = corsAllowedOrigins

	return nil
}

// SetConfigOptionURLString accepts absolute http or https URLs only.
func SetConfigOptionURLString(co *config.ConfigOption) error {
	u := viper.GetString(co.Name)

	if u == "" {
		return fmt.Errorf("%s cannot be empty", co.Name)
	}

	parsedURL, err := url.ParseRequestURI(u)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", co.Name, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s must use the http or https scheme, got %q", co.Name, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s must have a host", co.Name)
	}

	key, ok := co.ConfigKey.(*string)
	if !ok {
		return fmt.Errorf("the expected type for this config key is a string, but got a %T instead", co.ConfigKey)
	}
	*key = u

	return nil
}

// SetConfigOptionSeconds reads a whole number of seconds into a time.Duration.
func SetConfigOptionSeconds(co *config.ConfigOption) error {
	seconds := viper.GetInt(co.Name)
	if seconds < 0 {
		return fmt.Errorf("%s cannot be negative, got %d", co.Name, seconds)
	}

	key, ok := co.ConfigKey.(*time.Duration)
	if !ok {
		return fmt.Errorf("the expected type for this config key is a time.Duration, but got a %T instead", co.ConfigKey)
	}
	*key = time.Duration(seconds) * time.Second

	return nil
}

// SetConfigOptionPositiveUint reads a whole number that must be at least 1.
func SetConfigOptionPositiveUint(co *config.ConfigOption) error {
	value := viper.GetInt(co.Name)
	if value < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", co.Name, value)
	}

	key, ok := co.ConfigKey.(*uint)
	if !ok {
		return fmt.Errorf("the expected type for this config key is a uint, but got a %T instead", co.ConfigKey)
	}
	*key = uint(value)

	return nil
}
