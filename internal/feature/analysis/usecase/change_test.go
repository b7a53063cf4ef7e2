package usecase_test

import (
	"testing"

	"fno_analyzer/internal/feature/analysis/usecase"
)

func f64(v float64) *float64 { return &v }

// TestPercentChange verifies the rounding and nil semantics of the change
// computation.
func TestPercentChange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		previous *float64
		current  *float64
		expected *float64
	}{
		{"small positive move", f64(1456.40), f64(1460.00), f64(0.25)},
		{"positive move above threshold", f64(1200.00), f64(1230.00), f64(2.50)},
		{"negative move rounded", f64(1500.00), f64(1450.00), f64(-3.33)},
		{"no move", f64(100), f64(100), f64(0)},
		{"previous missing", nil, f64(1460.00), nil},
		{"current missing", f64(1456.40), nil, nil},
		{"both missing", nil, nil, nil},
		{"zero previous close", f64(0), f64(10), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := usecase.PercentChange(tc.previous, tc.current)

			if tc.expected == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %v, got nil", *tc.expected)
			}
			if *got != *tc.expected {
				t.Errorf("expected %v, got %v", *tc.expected, *got)
			}
		})
	}
}

// TestFiltered verifies the strict threshold boundary: exactly 2.00 stays
// out, 2.01 goes in.
func TestFiltered(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		change   *float64
		expected bool
	}{
		{"nil change", nil, false},
		{"below threshold", f64(0.25), false},
		{"exactly threshold", f64(2.00), false},
		{"exactly negative threshold", f64(-2.00), false},
		{"just above threshold", f64(2.01), true},
		{"just below negative threshold", f64(-2.01), true},
		{"well above threshold", f64(2.50), true},
		{"large negative move", f64(-3.33), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := usecase.Filtered(tc.change); got != tc.expected {
				t.Errorf("Filtered(%v) = %v, want %v", tc.change, got, tc.expected)
			}
		})
	}
}
