package services

import (
	"math"
	"strings"
	"testing"

	"github.com/pyhub-apps/listino/pkg/locale"
)

func TestConfidence(t *testing.T) {
	testCases := []struct {
		name        string
		serviceName string
		priceCents  int
		taxResolved bool
		unit        locale.BillingUnit
		want        float64
	}{
		{"base", "Massaggio relax", 8000, false, locale.OneTime, 0.85},
		{"tax and monthly", "Massaggio relax", 136500, true, locale.Monthly, 0.95},
		{"tax only", "Massaggio relax", 8000, true, locale.OneTime, 0.90},
		{"per session only", "Lezione", 9500, false, locale.PerSession, 0.90},
		{"long name", strings.Repeat("x", 61), 8000, false, locale.OneTime, 0.75},
		{"implausible price", "Massaggio", 10_000_001, false, locale.OneTime, 0.55},
		{"worst case", strings.Repeat("x", 61), 10_000_001, false, locale.OneTime, 0.45},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Confidence(tc.serviceName, tc.priceCents, tc.taxResolved, tc.unit)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConfidenceClamped(t *testing.T) {
	names := []string{"Massaggio", strings.Repeat("x", 100)}
	prices := []int{1, 8000, 20_000_000}
	units := []locale.BillingUnit{locale.OneTime, locale.Monthly, locale.PerSession}

	for _, name := range names {
		for _, price := range prices {
			for _, unit := range units {
				for _, tax := range []bool{false, true} {
					got := Confidence(name, price, tax, unit)
					if got < 0.1 || got > 1.0 {
						t.Errorf("Confidence(%d-rune name, %d, %v, %s) = %v out of [0.1, 1.0]",
							len(name), price, tax, unit, got)
					}
				}
			}
		}
	}
}
