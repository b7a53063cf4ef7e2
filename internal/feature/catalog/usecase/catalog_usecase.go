// Package usecase implements the business logic for the instrument catalog feature.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fno_analyzer/internal/feature/catalog/domain"
	"fno_analyzer/internal/feature/catalog/domain/entity"
)

const (
	instrumentTypeEquity = "EQ"
	segmentCashEquity    = "NSE_EQ"
	exchangeNSE          = "NSE"
)

// InstrumentSource abstracts the download of the exchange instrument
// reference list. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type InstrumentSource interface {
	FetchInstruments(ctx context.Context) ([]entity.Instrument, error)
}

// Catalog holds the instrument reference list for the life of the process.
// The first successful load is cached; later calls reuse it without any
// network access. A failed load is not cached, so the next caller retries.
type Catalog struct {
	source InstrumentSource

	mu          sync.Mutex
	loaded      bool
	instruments []entity.Instrument
}

// NewCatalog creates a Catalog backed by the given source. Nothing is
// fetched until the first Load or Lookup.
func NewCatalog(source InstrumentSource) *Catalog {
	return &Catalog{source: source}
}

// Load fetches the instrument reference list on first call and caches it.
// Concurrent first callers are serialized so the source is hit at most once.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return nil
	}

	instruments, err := c.source.FetchInstruments(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	c.instruments = instruments
	c.loaded = true
	slog.Info("instrument catalog loaded", "count", len(instruments))
	return nil
}

// Lookup returns the equity instrument record for a trading symbol. The
// match requires trading symbol, equity type, cash-equity segment and the
// NSE exchange; the first matching record wins (uniqueness of the 4-tuple
// is assumed, not verified). Returns domain.ErrInstrumentNotFound on a miss.
func (c *Catalog) Lookup(ctx context.Context, tradingSymbol string) (entity.Instrument, error) {
	if err := c.Load(ctx); err != nil {
		return entity.Instrument{}, err
	}

	c.mu.Lock()
	instruments := c.instruments
	c.mu.Unlock()

	for _, inst := range instruments {
		if inst.TradingSymbol == tradingSymbol &&
			inst.InstrumentType == instrumentTypeEquity &&
			inst.Segment == segmentCashEquity &&
			inst.Exchange == exchangeNSE {
			return inst, nil
		}
	}
	return entity.Instrument{}, fmt.Errorf("%w: %s", domain.ErrInstrumentNotFound, tradingSymbol)
}
