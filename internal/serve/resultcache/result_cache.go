package resultcache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/stellar/go-stellar-sdk/support/log"

	"github.com/yohaboy/cbe-verifier/internal/monitor"
	"github.com/yohaboy/cbe-verifier/internal/verifier"
)

const (
	DefaultMaxEntries = 10_000

	hitResult  = "hit"
	missResult = "miss"
)

//go:generate mockery --name=ResultCacheInterface --case=underscore --structname=MockResultCache --filename=result_cache_mock.go --inpackage
type ResultCacheInterface interface {
	Get(ctx context.Context, reference, accountSuffix string) (verifier.Result, bool)
	Set(ctx context.Context, reference, accountSuffix string, result verifier.Result)
}

type Options struct {
	// TTL is how long a successful result is served from memory.
	TTL            time.Duration
	MaxEntries     int64
	MonitorService monitor.MonitorServiceInterface
}

// ResultCache keeps successful verification results in memory, keyed by reference and account
// suffix. It is safe for concurrent use.
type ResultCache struct {
	cache          *ristretto.Cache
	ttl            time.Duration
	monitorService monitor.MonitorServiceInterface
}

var _ ResultCacheInterface = (*ResultCache)(nil)

func NewResultCache(opts Options) (*ResultCache, error) {
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("ttl must be positive")
	}

	maxEntries := opts.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}

	return &ResultCache{
		cache:          cache,
		ttl:            opts.TTL,
		monitorService: opts.MonitorService,
	}, nil
}

func (c *ResultCache) Get(ctx context.Context, reference, accountSuffix string) (verifier.Result, bool) {
	cached, found := c.cache.Get(cacheKey(reference, accountSuffix))
	result, ok := cached.(verifier.Result)
	hit := found && ok

	label := missResult
	if hit {
		label = hitResult
	}
	c.recordLookup(ctx, label)

	return result, hit
}

// Set stores the result when it is a success. Failed results are ignored.
func (c *ResultCache) Set(ctx context.Context, reference, accountSuffix string, result verifier.Result) {
	if !result.Success {
		return
	}

	if !c.cache.SetWithTTL(cacheKey(reference, accountSuffix), result, 1, c.ttl) {
		log.Ctx(ctx).Debug("result was not admitted to the cache")
		return
	}
	c.cache.Wait()
}

func (c *ResultCache) Close() {
	c.cache.Close()
}

func (c *ResultCache) recordLookup(ctx context.Context, result string) {
	if c.monitorService == nil {
		return
	}

	labels := monitor.ResultCacheLabels{Result: result}.ToMap()
	if err := c.monitorService.MonitorCounters(monitor.ResultCacheLookupsTotalTag, labels); err != nil {
		log.Ctx(ctx).Errorf("monitoring result cache lookup: %v", err)
	}
}

func cacheKey(reference, accountSuffix string) string {
	return reference + accountSuffix
}
