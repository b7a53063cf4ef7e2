// Package entity defines the domain models for the instrument catalog feature.
package entity

// Instrument is one record of the exchange instrument reference list.
// Records are immutable once loaded; the full set forms the catalog.
type Instrument struct {
	TradingSymbol  string // Human-readable trading symbol (e.g., "RELIANCE")
	InstrumentType string // Instrument classification (e.g., "EQ")
	Segment        string // Exchange sub-market (e.g., "NSE_EQ")
	Exchange       string // Listing exchange (e.g., "NSE")
	InstrumentKey  string // Opaque broker identifier used by the market data API
}
