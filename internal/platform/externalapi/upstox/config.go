// Package upstox provides a client for the Upstox market data HTTP API and
// the NSE instrument master feed.
package upstox

import "time"

const (
	// DefaultBaseURL is the production Upstox API host.
	DefaultBaseURL = "https://api.upstox.com"
	// DefaultInstrumentsURL serves the gzipped NSE instrument reference list.
	DefaultInstrumentsURL = "https://assets.upstox.com/market-quote/instruments/exchange/NSE.json.gz"
)

// Config holds configuration for the Upstox API client. The access token is
// a bearer credential supplied externally; this client never refreshes it.
type Config struct {
	AccessToken    string        // Bearer credential for the candle endpoints
	BaseURL        string        // API host (e.g., DefaultBaseURL)
	InstrumentsURL string        // Instrument master URL, fetched unauthenticated
	Timeout        time.Duration // HTTP request timeout
}
