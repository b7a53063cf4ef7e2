package entity

import "strings"

// FailureKind classifies a per-instrument failure.
type FailureKind string

const (
	// FailureSymbolUnresolved means the derived symbol had no catalog match.
	FailureSymbolUnresolved FailureKind = "symbol_unresolved"
	// FailureAuth means the market data API rejected the bearer credential (HTTP 401).
	FailureAuth FailureKind = "auth_failure"
	// FailureTransport covers every other HTTP or network level fetch failure.
	FailureTransport FailureKind = "transport_failure"
)

// Failure is one typed per-instrument failure. Failures are kept as an
// ordered list rather than a concatenated string, so that both fetch
// failures of one instrument survive.
type Failure struct {
	Kind    FailureKind
	Message string
}

// StockAnalysisResult is the per-instrument outcome of one analysis run.
// It is created once per instrument and never mutated afterwards.
// Price fields are nil when the corresponding sample could not be obtained.
type StockAnalysisResult struct {
	Symbol               string
	PreviousClose        *float64
	PreviousOpenInterest *int64
	CurrentPrice         *float64
	CurrentOpenInterest  *int64
	PercentChange        *float64
	Failures             []Failure
}

// ErrorMessage joins the failure messages for storage. Returns nil when the
// instrument had no failures.
func (r StockAnalysisResult) ErrorMessage() *string {
	if len(r.Failures) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		msgs = append(msgs, f.Message)
	}
	s := strings.Join(msgs, "; ")
	return &s
}

// FilteredStock is one entry of the filtered subset: an instrument whose
// absolute percent change exceeded the threshold.
type FilteredStock struct {
	Symbol        string
	PercentChange float64
}

// AnalysisRun is the summary of one orchestration call.
type AnalysisRun struct {
	CurrentDate    string
	PreviousDate   string
	Results        []StockAnalysisResult
	FilteredStocks []FilteredStock
	Errors         []string // capped, first entries only
}
