package locale

import (
	"math"
	"testing"
)

func TestParseTaxRate(t *testing.T) {
	vocab := DefaultVocabulary()

	testCases := []struct {
		input string
		rate  float64
		ok    bool
	}{
		{"8.1%", 0.081, true},
		{"8,1", 0.081, true},
		{"2,6", 0.026, true},
		{"2.6%", 0.026, true},
		{"3,8%", 0.038, true},
		{"+ IVA 8,1%", 0.081, true},
		{"IVA", 0, false},
		{"MWST", 0, false},
		{"", 0, false},
		{"nessuna imposta", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			rate, ok := vocab.ParseTaxRate(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseTaxRate(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && rate != tc.rate {
				t.Errorf("ParseTaxRate(%q) = %v, want %v", tc.input, rate, tc.rate)
			}
		})
	}
}

func TestParseTaxRateNumericFallback(t *testing.T) {
	vocab := DefaultVocabulary()

	// Unknown rates still parse numerically: percentages above 1 are
	// divided by 100, fractions at or below 1 pass through.
	testCases := []struct {
		input string
		rate  float64
	}{
		{"5,0%", 0.05},
		{"7.7%", 0.077},
		{"0.5", 0.5},
	}

	for _, tc := range testCases {
		rate, ok := vocab.ParseTaxRate(tc.input)
		if !ok {
			t.Fatalf("ParseTaxRate(%q) failed", tc.input)
		}
		if math.Abs(rate-tc.rate) > 1e-12 {
			t.Errorf("ParseTaxRate(%q) = %v, want %v", tc.input, rate, tc.rate)
		}
	}
}
