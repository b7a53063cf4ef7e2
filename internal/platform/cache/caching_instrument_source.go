// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"fno_analyzer/internal/feature/catalog/domain/entity"
	"fno_analyzer/internal/feature/catalog/usecase"
)

// CachingInstrumentSource decorates an InstrumentSource with Redis caching,
// so a process restart does not re-download the multi-megabyte instrument
// master. The in-process catalog guard still applies on top; this layer only
// spares the network fetch. Caching is best effort: with no Redis configured
// or on any cache error the inner source is used directly.
type CachingInstrumentSource struct {
	inner usecase.InstrumentSource
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

// Compile-time check that the decorator stays an InstrumentSource.
var _ usecase.InstrumentSource = (*CachingInstrumentSource)(nil)

// NewCachingInstrumentSource decorates an InstrumentSource with Redis
// caching. If ttl is 0, it defaults to the time until the next 08:00 IST,
// when the exchange publishes a fresh reference list. If key is empty, it
// uses "instruments:NSE".
func NewCachingInstrumentSource(rdb *redis.Client, ttl time.Duration, inner usecase.InstrumentSource, key string) *CachingInstrumentSource {
	if ttl <= 0 {
		ttl = TimeUntilNext8AMIST()
	}
	if key == "" {
		key = "instruments:NSE"
	}
	return &CachingInstrumentSource{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// FetchInstruments returns the instrument list, checking cache first then
// falling back to the inner source.
func (c *CachingInstrumentSource) FetchInstruments(ctx context.Context) ([]entity.Instrument, error) {
	if c.rdb == nil {
		return c.inner.FetchInstruments(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Instrument
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to the live feed
	out, err := c.inner.FetchInstruments(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}
