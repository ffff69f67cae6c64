package locale

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice converts a Swiss price expression to integer cents.
//
// Handled formats:
//
//	CHF 1'365.00 -> 136500
//	CHF 850.–    -> 85000
//	1.365,00     -> 136500 (European format)
//	Fr. 25.00    -> 2500
//
// The second return is false when no numeric value can be recovered.
func (v *Vocabulary) ParsePrice(priceStr string) (int, bool) {
	if priceStr == "" {
		return 0, false
	}

	cleaned := v.currencyMark.ReplaceAllString(priceStr, "")
	cleaned = strings.TrimSpace(cleaned)

	// Swiss thousands separator
	cleaned = strings.ReplaceAll(cleaned, "'", "")

	// Trailing dash notation: 850.– means 850.00
	cleaned = v.trailingDash.ReplaceAllString(cleaned, "")

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")

	switch {
	case lastComma > lastDot:
		// European format: 1.234,56 -> comma is decimal
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case lastDot > lastComma:
		// Swiss/US format: 1,234.56 or 1234.56 -> dot is decimal
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case lastComma != -1:
		// Only a comma: decimal if exactly two fractional digits follow
		parts := strings.Split(cleaned, ",")
		if len(parts) == 2 && len(parts[1]) == 2 {
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	cleaned = v.nonNumeric.ReplaceAllString(cleaned, "")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	// Round half away from zero
	return int(math.Round(value * 100)), true
}
