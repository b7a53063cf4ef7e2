// Package entity defines the domain models for the analysis feature.
package entity

import "time"

// Candle represents a single time-stamped market print returned by the
// historical candle API.
type Candle struct {
	Time         time.Time // Timestamp embedded in the candle itself
	Open         float64   // Opening price
	High         float64   // Highest price
	Low          float64   // Lowest price
	Close        float64   // Closing price
	Volume       int64     // Traded volume
	OpenInterest int64     // Outstanding contract count (zero for cash equities)
}

// Quote is the slice of a candle consumed downstream: the price print and
// its open interest.
type Quote struct {
	Price        float64
	OpenInterest int64
}
