package dependencyinjection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohaboy/cbe-verifier/internal/crashtracker"
)

func Test_dependencyinjection_buildCrashTrackerInstanceName(t *testing.T) {
	result := buildCrashTrackerInstanceName(crashtracker.CrashTrackerTypeSentry)
	assert.Equal(t, "crash_tracker_instance-SENTRY", result)
}

func Test_dependencyinjection_NewCrashTracker(t *testing.T) {
	ctx := context.Background()

	t.Run("should create and return the same instance on the second call", func(t *testing.T) {
		ClearInstancesTestHelper(t)

		dryRunOptions := crashtracker.CrashTrackerOptions{
			CrashTrackerType: crashtracker.CrashTrackerTypeDryRun,
		}

		gotClient, err := NewCrashTracker(ctx, dryRunOptions)
		require.NoError(t, err)

		gotClientDuplicate, err := NewCrashTracker(ctx, dryRunOptions)
		require.NoError(t, err)

		assert.Same(t, gotClient, gotClientDuplicate)
	})

	t.Run("should return an error on an invalid option", func(t *testing.T) {
		ClearInstancesTestHelper(t)

		gotClient, err := NewCrashTracker(ctx, crashtracker.CrashTrackerOptions{})
		assert.Nil(t, gotClient)
		assert.EqualError(t, err, `error creating a new crash tracker instance: unknown crash tracker type: ""`)
	})

	t.Run("should return an error on an invalid instance", func(t *testing.T) {
		ClearInstancesTestHelper(t)

		dryRunOptions := crashtracker.CrashTrackerOptions{
			CrashTrackerType: crashtracker.CrashTrackerTypeDryRun,
		}
		instanceName := buildCrashTrackerInstanceName(dryRunOptions.CrashTrackerType)
		SetInstance(instanceName, false)

		gotClient, err := NewCrashTracker(ctx, dryRunOptions)
		assert.Nil(t, gotClient)
		assert.EqualError(t, err, "error trying to cast "+instanceName)
	})
}
