// Package usecase implements the business logic for the F&O analysis feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fno_analyzer/internal/feature/analysis/domain"
	"fno_analyzer/internal/feature/analysis/domain/entity"
	catalogdomain "fno_analyzer/internal/feature/catalog/domain"
	catalogentity "fno_analyzer/internal/feature/catalog/domain/entity"
	"fno_analyzer/internal/shared/ratelimiter"
)

const (
	// analysisWorkers bounds the number of in-flight instrument fetches.
	analysisWorkers = 5
	// maxErrorListLen caps the error summary returned to the client.
	maxErrorListLen = 10
)

// DateLayout is the wire format for analysis dates.
const DateLayout = "2006-01-02"

// CatalogRepository resolves trading symbols to instrument records.
// Following Go convention, interfaces are defined by the consumer (usecase).
type CatalogRepository interface {
	Load(ctx context.Context) error
	Lookup(ctx context.Context, tradingSymbol string) (catalogentity.Instrument, error)
}

// MarketRepository fetches the two time-anchored price samples per
// instrument. Both operations return domain.ErrNoCandleData when the
// response holds no usable candle, and *domain.StatusError on HTTP failures.
type MarketRepository interface {
	// FetchPreviousClose returns the daily close print for one session date.
	FetchPreviousClose(ctx context.Context, instrumentKey string, date time.Time) (entity.Quote, error)
	// FetchIntradaySample returns the 09:20:00 minute print for the date.
	FetchIntradaySample(ctx context.Context, instrumentKey string, date time.Time) (entity.Quote, error)
}

// ResultRepository persists one run's result set as a full snapshot for the
// analysis date, replacing any prior snapshot.
type ResultRepository interface {
	Replace(ctx context.Context, analysisDate time.Time, results []entity.StockAnalysisResult, filtered []entity.FilteredStock) error
}

// AnalysisUsecase drives one batch: for each configured instrument it
// resolves, fetches, analyzes, then stores everything in one batch write.
type AnalysisUsecase struct {
	catalog     CatalogRepository
	market      MarketRepository
	results     ResultRepository
	rateLimiter ratelimiter.RateLimiterInterface
	universe    []string
}

// NewAnalysisUsecase creates a new AnalysisUsecase over the fixed F&O universe.
func NewAnalysisUsecase(catalog CatalogRepository, market MarketRepository, results ResultRepository,
	rl ratelimiter.RateLimiterInterface) *AnalysisUsecase {
	return &AnalysisUsecase{
		catalog:     catalog,
		market:      market,
		results:     results,
		rateLimiter: rl,
		universe:    FnOStockNames,
	}
}

// Run analyzes the whole universe for the given date pair. Per-instrument
// failures are recorded against that instrument and never abort the batch;
// catalog load and persistence failures abort the run.
func (u *AnalysisUsecase) Run(ctx context.Context, previousDate, currentDate time.Time) (*entity.AnalysisRun, error) {
	if err := u.catalog.Load(ctx); err != nil {
		return nil, err
	}

	results := make([]entity.StockAnalysisResult, len(u.universe))

	// Bounded worker pool. Each slot of results is written by exactly one
	// worker, and the output order stays the input order.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < analysisWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = u.processStock(ctx, previousDate, currentDate, u.universe[i])
			}
		}()
	}
	for i := range u.universe {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	filtered := make([]entity.FilteredStock, 0)
	for _, r := range results {
		if Filtered(r.PercentChange) {
			filtered = append(filtered, entity.FilteredStock{Symbol: r.Symbol, PercentChange: *r.PercentChange})
		}
	}

	if err := u.results.Replace(ctx, currentDate, results, filtered); err != nil {
		return nil, fmt.Errorf("persist analysis results: %w", err)
	}

	run := &entity.AnalysisRun{
		CurrentDate:    currentDate.Format(DateLayout),
		PreviousDate:   previousDate.Format(DateLayout),
		Results:        results,
		FilteredStocks: filtered,
		Errors:         summarizeErrors(results),
	}
	slog.Info("analysis run finished",
		"current_date", run.CurrentDate,
		"previous_date", run.PreviousDate,
		"processed", len(results),
		"filtered", len(filtered),
		"errors", len(run.Errors))
	return run, nil
}

// processStock resolves and analyzes a single display name. It never
// returns an error; failures are recorded on the result.
func (u *AnalysisUsecase) processStock(ctx context.Context, previousDate, currentDate time.Time, displayName string) entity.StockAnalysisResult {
	symbol := DeriveTradingSymbol(displayName)
	result := entity.StockAnalysisResult{Symbol: symbol}

	inst, err := u.catalog.Lookup(ctx, symbol)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrInstrumentNotFound) {
			slog.Warn("instrument key not found", "symbol", symbol, "display_name", displayName)
			result.Failures = append(result.Failures, entity.Failure{
				Kind:    entity.FailureSymbolUnresolved,
				Message: "instrument key not found in catalog",
			})
			return result
		}
		result.Failures = append(result.Failures, fetchFailure("catalog lookup", err))
		return result
	}

	u.rateLimiter.WaitIfNeeded()
	if q, err := u.market.FetchPreviousClose(ctx, inst.InstrumentKey, previousDate); err == nil {
		result.PreviousClose = &q.Price
		result.PreviousOpenInterest = &q.OpenInterest
	} else if !errors.Is(err, domain.ErrNoCandleData) {
		result.Failures = append(result.Failures, fetchFailure("previous close fetch", err))
	}

	u.rateLimiter.WaitIfNeeded()
	if q, err := u.market.FetchIntradaySample(ctx, inst.InstrumentKey, currentDate); err == nil {
		result.CurrentPrice = &q.Price
		result.CurrentOpenInterest = &q.OpenInterest
	} else if !errors.Is(err, domain.ErrNoCandleData) {
		result.Failures = append(result.Failures, fetchFailure("intraday fetch", err))
	}

	result.PercentChange = PercentChange(result.PreviousClose, result.CurrentPrice)
	return result
}

// fetchFailure classifies a fetch error into the failure taxonomy. A 401 is
// an authentication failure; everything else is a transport failure.
func fetchFailure(stage string, err error) entity.Failure {
	kind := entity.FailureTransport
	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) && statusErr.IsAuthFailure() {
		kind = entity.FailureAuth
	}
	return entity.Failure{Kind: kind, Message: fmt.Sprintf("%s failed: %v", stage, err)}
}

// summarizeErrors collects per-instrument failure messages in input order,
// capped to keep the response payload bounded even when most of the batch
// fails.
func summarizeErrors(results []entity.StockAnalysisResult) []string {
	errs := make([]string, 0)
	for _, r := range results {
		for _, f := range r.Failures {
			if len(errs) == maxErrorListLen {
				return errs
			}
			errs = append(errs, fmt.Sprintf("%s: %s", r.Symbol, f.Message))
		}
	}
	return errs
}
