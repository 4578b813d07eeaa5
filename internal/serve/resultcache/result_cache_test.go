package resultcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohaboy/cbe-verifier/internal/monitor"
	"github.com/yohaboy/cbe-verifier/internal/receipt"
	"github.com/yohaboy/cbe-verifier/internal/verifier"
)

func Test_NewResultCache(t *testing.T) {
	t.Run("🔴 ttl must be positive", func(t *testing.T) {
		for _, ttl := range []time.Duration{0, -time.Second} {
			cache, err := NewResultCache(Options{TTL: ttl})
			assert.EqualError(t, err, "ttl must be positive")
			assert.Nil(t, cache)
		}
	})

	t.Run("🟢 uses the default size", func(t *testing.T) {
		cache, err := NewResultCache(Options{TTL: time.Minute})
		require.NoError(t, err)
		defer cache.Close()

		assert.Equal(t, time.Minute, cache.ttl)
		assert.Equal(t, int64(DefaultMaxEntries), cache.cache.MaxCost())
	})
}

func Test_ResultCache_GetSet(t *testing.T) {
	ctx := context.Background()
	success := verifier.Succeeded(receipt.Fields{Payer: "John Doe", Reference: "FT24012345"})

	t.Run("stores successful results", func(t *testing.T) {
		cache, err := NewResultCache(Options{TTL: time.Minute})
		require.NoError(t, err)
		defer cache.Close()

		_, found := cache.Get(ctx, "FT24012345", "12345678")
		assert.False(t, found)

		cache.Set(ctx, "FT24012345", "12345678", success)

		got, found := cache.Get(ctx, "FT24012345", "12345678")
		require.True(t, found)
		assert.Equal(t, success, got)

		_, found = cache.Get(ctx, "FT24012345", "87654321")
		assert.False(t, found)
	})

	t.Run("never stores failures", func(t *testing.T) {
		cache, err := NewResultCache(Options{TTL: time.Minute})
		require.NoError(t, err)
		defer cache.Close()

		cache.Set(ctx, "FT24012345", "12345678", verifier.Failed(verifier.ErrorKindMaxRetriesReached, "Max retries reached"))

		_, found := cache.Get(ctx, "FT24012345", "12345678")
		assert.False(t, found)
	})

	t.Run("entries expire", func(t *testing.T) {
		cache, err := NewResultCache(Options{TTL: 50 * time.Millisecond})
		require.NoError(t, err)
		defer cache.Close()

		cache.Set(ctx, "FT24012345", "12345678", success)
		_, found := cache.Get(ctx, "FT24012345", "12345678")
		require.True(t, found)

		assert.Eventually(t, func() bool {
			_, found := cache.Get(ctx, "FT24012345", "12345678")
			return !found
		}, 2*time.Second, 20*time.Millisecond)
	})
}

func Test_ResultCache_monitorsLookups(t *testing.T) {
	ctx := context.Background()

	mMonitorService := monitor.NewMockMonitorService(t)
	mMonitorService.
		On("MonitorCounters", monitor.ResultCacheLookupsTotalTag, map[string]string{"result": "miss"}).
		Return(nil).
		Once()
	mMonitorService.
		On("MonitorCounters", monitor.ResultCacheLookupsTotalTag, map[string]string{"result": "hit"}).
		Return(nil).
		Once()

	cache, err := NewResultCache(Options{TTL: time.Minute, MonitorService: mMonitorService})
	require.NoError(t, err)
	defer cache.Close()

	_, found := cache.Get(ctx, "FT24012345", "12345678")
	assert.False(t, found)

	cache.Set(ctx, "FT24012345", "12345678", verifier.Succeeded(receipt.Fields{Payer: "John Doe"}))
	_, found = cache.Get(ctx, "FT24012345", "12345678")
	assert.True(t, found)
}
