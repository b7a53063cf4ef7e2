// Package dto defines the HTTP response DTOs for the analysis feature.
package dto

// FilteredStockResponse is one filtered instrument in the response payload.
type FilteredStockResponse struct {
	Symbol        string  `json:"symbol"`
	PercentChange float64 `json:"percent_change"`
}

// AnalysisResponse is the payload of a successful analysis run.
type AnalysisResponse struct {
	FilteredStocks       []FilteredStockResponse `json:"filtered_stocks"`
	ProcessedStocksCount int                     `json:"processed_stocks_count"`
	ErrorsList           []string                `json:"errors_list"` // capped at 10 entries
}

// ErrorResponse is the payload of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
