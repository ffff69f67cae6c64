package locale

import (
	"strconv"
	"strings"
)

// ParseTaxRate extracts a fractional Swiss tax rate from free text.
// Known rate spellings are matched as substrings first; otherwise the first
// decimal-number substring is parsed, with values above 1 read as
// percentages. The second return is false when no rate can be resolved.
func (v *Vocabulary) ParseTaxRate(taxStr string) (float64, bool) {
	if taxStr == "" {
		return 0, false
	}

	cleaned := strings.TrimSpace(taxStr)

	for _, tok := range v.TaxTokens {
		if strings.Contains(cleaned, tok.Text) {
			return tok.Rate, true
		}
	}

	match := v.decimalNumber.FindString(cleaned)
	if match == "" {
		return 0, false
	}

	rate, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil || rate <= 0 || rate >= 100 {
		return 0, false
	}

	if rate > 1 {
		return rate / 100, true
	}
	return rate, true
}
