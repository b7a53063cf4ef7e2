// Package domain defines domain-level errors for the analysis feature.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoCandleData indicates that the market data API answered but the
// response contained no usable candle for the requested date and time.
// This is an expected outcome (non-trading window, out-of-range token)
// and is not treated as a failure.
var ErrNoCandleData = errors.New("no candle data")

// StatusError is a market data fetch failure carrying the upstream HTTP
// status. A 401 is an authentication failure; everything else is a transport
// failure. Neither is retried.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream http %d: %s", e.StatusCode, e.Detail)
}

// IsAuthFailure reports whether the upstream rejected the bearer credential.
func (e *StatusError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized
}
