package usecase_test

import (
	"testing"

	"fno_analyzer/internal/feature/analysis/usecase"
)

// TestDeriveTradingSymbol covers the alias rule, the first-token fallback
// and the documented misresolutions of the heuristic.
func TestDeriveTradingSymbol(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		displayName string
		expected    string
	}{
		{"alias wins", "Tata Consultancy Services (TCS)", "TCS"},
		{"alias upper-cased", "State Bank of India (sbi)", "SBI"},
		{"alias with surrounding whitespace", "  InterGlobe Aviation (IndiGo)  ", "INDIGO"},
		{"alias with ampersand", "Larsen & Toubro (L&T)", "L&T"},
		{"single word", "Infosys", "INFOSYS"},
		{"first token of multi-word name", "Reliance Industries", "RELIANCE"},
		{"punctuation stripped from token", "Dr. Reddy's Laboratories", "DR"},
		{"known misresolution without alias", "Larsen & Toubro", "LARSEN"},
		{"alphanumeric token kept", "M&M", "MM"},
		{"empty input", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := usecase.DeriveTradingSymbol(tc.displayName)
			if got != tc.expected {
				t.Errorf("DeriveTradingSymbol(%q) = %q, want %q", tc.displayName, got, tc.expected)
			}
		})
	}
}
