package upstox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"fno_analyzer/internal/feature/analysis/domain"
	"fno_analyzer/internal/feature/analysis/domain/entity"
	"fno_analyzer/internal/feature/analysis/usecase"
	"fno_analyzer/internal/platform/externalapi/upstox/dto"
)

const (
	dateLayout = "2006-01-02"

	// The intraday sample is anchored at 09:20:00, the candle ten minutes
	// after the NSE cash open.
	targetHour   = 9
	targetMinute = 20

	// maxErrorBodyBytes bounds how much of an error response is kept for
	// the error message.
	maxErrorBodyBytes = 200
)

// UpstoxMarket is the MarketRepository implementation backed by the Upstox
// historical candle API.
type UpstoxMarket struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that UpstoxMarket implements MarketRepository.
var _ usecase.MarketRepository = (*UpstoxMarket)(nil)

// NewUpstoxMarket creates a new UpstoxMarket with the given configuration
// and HTTP client.
func NewUpstoxMarket(cfg Config, client *http.Client) *UpstoxMarket {
	return &UpstoxMarket{cfg: cfg, client: client}
}

// FetchPreviousClose issues a daily-granularity query for exactly one
// session date and extracts close and open interest from its single candle.
// Returns domain.ErrNoCandleData when the response holds no usable candle.
func (m *UpstoxMarket) FetchPreviousClose(ctx context.Context, instrumentKey string, date time.Time) (entity.Quote, error) {
	u := fmt.Sprintf("%s/v3/historical-candle/%s/days/1/%s",
		m.cfg.BaseURL, url.PathEscape(instrumentKey), date.Format(dateLayout))

	body, err := m.getCandles(ctx, u)
	if err != nil {
		return entity.Quote{}, err
	}
	if len(body.Data.Candles) == 0 {
		return entity.Quote{}, fmt.Errorf("%w: %s on %s", domain.ErrNoCandleData, instrumentKey, date.Format(dateLayout))
	}

	candle, err := parseCandle(body.Data.Candles[0])
	if err != nil {
		slog.Warn("incomplete daily candle", "instrument_key", instrumentKey, "error", err)
		return entity.Quote{}, fmt.Errorf("%w: %s on %s", domain.ErrNoCandleData, instrumentKey, date.Format(dateLayout))
	}
	return entity.Quote{Price: candle.Close, OpenInterest: candle.OpenInterest}, nil
}

// FetchIntradaySample returns the 09:20:00 minute print of the given date.
//
// The upstream returns the requested date's minute data when queried with
// the NEXT calendar day, so the request is issued for date+1 while the
// returned stream is filtered for a candle whose own embedded timestamp
// matches the target date and time exactly. Candles with unparseable
// timestamps are skipped. A missing match is domain.ErrNoCandleData, not a
// failure: it is the expected outcome on non-trading windows.
func (m *UpstoxMarket) FetchIntradaySample(ctx context.Context, instrumentKey string, date time.Time) (entity.Quote, error) {
	queryDate := date.AddDate(0, 0, 1).Format(dateLayout)
	u := fmt.Sprintf("%s/v3/historical-candle/%s/minutes/1/%s?from_date=%s",
		m.cfg.BaseURL, url.PathEscape(instrumentKey), queryDate, queryDate)

	body, err := m.getCandles(ctx, u)
	if err != nil {
		return entity.Quote{}, err
	}

	for _, raw := range body.Data.Candles {
		candle, err := parseCandle(raw)
		if err != nil {
			slog.Warn("skipping malformed intraday candle", "instrument_key", instrumentKey, "error", err)
			continue
		}
		if matchesTarget(candle.Time, date) {
			return entity.Quote{Price: candle.Close, OpenInterest: candle.OpenInterest}, nil
		}
	}
	return entity.Quote{}, fmt.Errorf("%w: no %02d:%02d candle for %s on %s",
		domain.ErrNoCandleData, targetHour, targetMinute, instrumentKey, date.Format(dateLayout))
}

// getCandles performs an authenticated GET and decodes the candle payload.
// HTTP error statuses become *domain.StatusError; a 401 marks the bearer
// credential as rejected. Nothing is retried here.
func (m *UpstoxMarket) getCandles(ctx context.Context, u string) (dto.CandleResponse, error) {
	var body dto.CandleResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return body, err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.AccessToken)
	req.Header.Set("Accept", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return body, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		return body, &domain.StatusError{StatusCode: res.StatusCode, Detail: string(snippet)}
	}

	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return body, fmt.Errorf("decode candle response: %w", err)
	}
	return body, nil
}

// parseCandle converts one raw candle tuple into the domain entity.
func parseCandle(raw []any) (entity.Candle, error) {
	if len(raw) < 7 {
		return entity.Candle{}, fmt.Errorf("candle tuple has %d fields, want 7", len(raw))
	}

	ts, ok := raw[0].(string)
	if !ok {
		return entity.Candle{}, fmt.Errorf("candle timestamp is %T, want string", raw[0])
	}
	tm, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse timestamp %q: %w", ts, err)
	}

	nums := make([]float64, 0, 6)
	for i := 1; i < 7; i++ {
		v, ok := raw[i].(float64)
		if !ok {
			return entity.Candle{}, fmt.Errorf("candle field %d is %T, want number", i, raw[i])
		}
		nums = append(nums, v)
	}

	return entity.Candle{
		Time:         tm,
		Open:         nums[0],
		High:         nums[1],
		Low:          nums[2],
		Close:        nums[3],
		Volume:       int64(nums[4]),
		OpenInterest: int64(nums[5]),
	}, nil
}

// matchesTarget reports whether a candle's own timestamp falls on the target
// calendar date at exactly 09:20:00, evaluated in the candle's location.
func matchesTarget(candleTime, date time.Time) bool {
	y, mo, d := candleTime.Date()
	ty, tmo, td := date.Date()
	if y != ty || mo != tmo || d != td {
		return false
	}
	h, mi, s := candleTime.Clock()
	return h == targetHour && mi == targetMinute && s == 0
}
