package locale

import (
	"strings"
)

// DetectBillingUnit classifies the recurrence of a price from free text.
// Patterns are tested in table order, so a text matching both a monthly and
// a per-session phrase is classified monthly. The second return is the
// matched phrase, empty when the unit is OneTime.
func (v *Vocabulary) DetectBillingUnit(text string) (BillingUnit, string) {
	lower := strings.ToLower(text)

	for _, bp := range v.BillingPatterns {
		if match := bp.Pattern.FindString(lower); match != "" {
			return bp.Unit, match
		}
	}

	return OneTime, ""
}
