package upstox

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"fno_analyzer/internal/feature/catalog/domain/entity"
	"fno_analyzer/internal/feature/catalog/usecase"
	"fno_analyzer/internal/platform/externalapi/upstox/dto"
)

// InstrumentClient downloads the gzipped NSE instrument reference list. The
// feed is public; no credential is attached.
type InstrumentClient struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that InstrumentClient implements InstrumentSource.
var _ usecase.InstrumentSource = (*InstrumentClient)(nil)

// NewInstrumentClient creates a new InstrumentClient with the given
// configuration and HTTP client.
func NewInstrumentClient(cfg Config, client *http.Client) *InstrumentClient {
	return &InstrumentClient{cfg: cfg, client: client}
}

// FetchInstruments downloads, decompresses and parses the instrument master.
func (c *InstrumentClient) FetchInstruments(ctx context.Context) ([]entity.Instrument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.InstrumentsURL, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("instrument master http %d", res.StatusCode)
	}

	gz, err := gzip.NewReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("decompress instrument master: %w", err)
	}
	defer func() {
		if err := gz.Close(); err != nil {
			slog.Warn("failed to close gzip reader", "error", err)
		}
	}()

	var records []dto.Instrument
	if err := json.NewDecoder(gz).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse instrument master: %w", err)
	}

	instruments := make([]entity.Instrument, 0, len(records))
	for _, r := range records {
		instruments = append(instruments, entity.Instrument{
			TradingSymbol:  r.TradingSymbol,
			InstrumentType: r.InstrumentType,
			Segment:        r.Segment,
			Exchange:       r.Exchange,
			InstrumentKey:  r.InstrumentKey,
		})
	}
	return instruments, nil
}
