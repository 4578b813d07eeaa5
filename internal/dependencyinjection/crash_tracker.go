package dependencyinjection

import (
	"context"
	"fmt"

	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
)

const CrashTrackerInstanceName = "crash_tracker_instance"

// buildCrashTrackerInstanceName returns one instance name per crash tracker type, so instances of
// different types can live side by side.
func buildCrashTrackerInstanceName(crashTrackerType crashtracker.CrashTrackerType) string {
	return fmt.Sprintf("%s-%s", CrashTrackerInstanceName, string(crashTrackerType))
}

// NewCrashTracker creates a new crash tracker instance, or returns the one created before for the
// same type.
func NewCrashTracker(ctx context.Context, opts crashtracker.CrashTrackerOptions) (crashtracker.CrashTrackerClient, error) {
	instanceName := buildCrashTrackerInstanceName(opts.CrashTrackerType)

	instance, found, err := getTypedInstance[crashtracker.CrashTrackerClient](instanceName)
	if err != nil {
		return nil, err
	}
	if found {
		return instance, nil
	}

	newCrashTracker, err := crashtracker.GetClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("error creating a new crash tracker instance: %w", err)
	}

	SetInstance(instanceName, newCrashTracker)

	return newCrashTracker, nil
}
