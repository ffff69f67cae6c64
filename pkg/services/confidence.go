package services

import (
	"unicode/utf8"

	"github.com/pyhub-apps/listino/pkg/locale"
)

// Confidence heuristics. Adjustments are additive and applied in a fixed
// order before clamping.
const (
	confidenceBase = 0.85

	// Names longer than this suggest a merged or runaway chunk
	longNameRunes   = 60
	longNamePenalty = 0.10

	// Prices above 100'000 CHF almost always mean a mis-parsed row
	implausiblePriceCents   = 10_000_000
	implausiblePricePenalty = 0.30

	taxResolvedBonus = 0.05
	recurringBonus   = 0.05

	confidenceFloor = 0.1
	confidenceCeil  = 1.0
)

// Confidence scores one extracted service from its resolved fields.
// The result is always within [0.1, 1.0].
func Confidence(name string, priceCents int, taxResolved bool, unit locale.BillingUnit) float64 {
	score := confidenceBase

	if utf8.RuneCountInString(name) > longNameRunes {
		score -= longNamePenalty
	}
	if priceCents > implausiblePriceCents {
		score -= implausiblePricePenalty
	}
	if taxResolved {
		score += taxResolvedBonus
	}
	if unit != locale.OneTime {
		score += recurringBonus
	}

	if score < confidenceFloor {
		return confidenceFloor
	}
	if score > confidenceCeil {
		return confidenceCeil
	}
	return score
}
