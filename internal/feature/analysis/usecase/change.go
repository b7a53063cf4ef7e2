package usecase

import "math"

// FilterThresholdPercent is the fixed cutoff for the filtered subset. An
// instrument is filtered iff the absolute percent change strictly exceeds it.
const FilterThresholdPercent = 2.0

// PercentChange computes the relative change between the previous close and
// the current price, rounded to two decimal places. Returns nil when either
// sample is missing or the previous close is zero; insufficient data is an
// expected terminal state for an instrument, not an error.
func PercentChange(previousClose, currentPrice *float64) *float64 {
	if previousClose == nil || currentPrice == nil || *previousClose == 0 {
		return nil
	}
	change := ((*currentPrice - *previousClose) / *previousClose) * 100
	change = math.Round(change*100) / 100
	return &change
}

// Filtered reports whether a percent change puts the instrument into the
// filtered subset. Exactly the threshold is not filtered.
func Filtered(percentChange *float64) bool {
	return percentChange != nil && math.Abs(*percentChange) > FilterThresholdPercent
}
