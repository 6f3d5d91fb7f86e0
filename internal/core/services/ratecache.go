package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/quickconvert/quickconvert/internal/core/ports"
	"github.com/quickconvert/quickconvert/internal/models"
)

// DefaultRateTTL is how long a fetched rate table stays fresh.
const DefaultRateTTL = 10 * time.Minute

// RateCache memoizes a full exchange rate table from a RateSource for a TTL
// window. The table is replaced wholesale on every successful fetch and is
// never partially updated; a failed fetch leaves the previous table (and its
// timestamp) untouched, so the next call retries naturally.
//
// The clock is injectable so tests control expiry without sleeping.
type RateCache struct {
	source ports.RateSource
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu        sync.Mutex
	rates     models.RateTable
	fetchedAt time.Time
}

// NewRateCache creates a RateCache over source. A non-positive ttl falls back
// to DefaultRateTTL; a nil now falls back to time.Now.
func NewRateCache(source ports.RateSource, ttl time.Duration, now func() time.Time, logger *slog.Logger) *RateCache {
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RateCache{source: source, ttl: ttl, now: now, logger: logger}
}

// Rates returns the current rate table, fetching from the source when the
// cached table is absent or older than the TTL.
func (c *RateCache) Rates(ctx context.Context) (models.RateTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rates != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.rates, nil
	}

	rates, err := c.source.FetchRates(ctx)
	if err != nil {
		return nil, err
	}

	c.rates = rates
	c.fetchedAt = c.now()
	c.logger.Info("exchange rate table refreshed",
		slog.Int("currencies", len(rates)),
		slog.Time("fetched_at", c.fetchedAt),
	)
	return c.rates, nil
}
