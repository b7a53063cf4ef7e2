// Package dto defines data transfer objects for Upstox API responses.
package dto

// CandleResponse represents the JSON response of the historical candle
// endpoints. Each candle is a heterogeneous tuple
// [timestamp, open, high, low, close, volume, openInterest].
type CandleResponse struct {
	Status string `json:"status"`
	Data   struct {
		Candles [][]any `json:"candles"`
	} `json:"data"`
}

// Instrument represents one record of the NSE instrument master feed.
type Instrument struct {
	TradingSymbol  string `json:"trading_symbol"`
	InstrumentType string `json:"instrument_type"`
	Segment        string `json:"segment"`
	Exchange       string `json:"exchange"`
	InstrumentKey  string `json:"instrument_key"`
}
