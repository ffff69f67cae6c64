package services

import (
	"fmt"
	"strings"

	"github.com/pyhub-apps/listino/pkg/pdf"
)

// fallbackConfidence is fixed: without positions there is no signal to
// grade individual matches.
const fallbackConfidence = 0.6

// extractFallback sweeps each page's raw text with the name+price pattern.
// It runs only when the structured pass produced nothing, so it keeps its
// own dedup set. The billing unit is detected from the name text since no
// separate duration column exists here, and notes carry a fallback marker.
func (e *Extractor) extractFallback(doc pdf.Document) []ParsedService {
	var services []ParsedService
	seen := make(map[string]struct{})

	for _, page := range doc.GetPages() {
		text := page.Text()
		if text == "" {
			continue
		}

		for _, match := range e.vocab.FallbackMatches(text) {
			name := strings.TrimSpace(match[0])
			if !e.vocab.IsServiceName(name) {
				continue
			}

			normalized := dedupKey(name)
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}

			priceCents, ok := e.vocab.ParsePrice(match[1])
			if !ok || priceCents <= 0 {
				continue
			}

			unit, phrase := e.vocab.DetectBillingUnit(name)

			var durationText *string
			if phrase != "" {
				durationText = &phrase
			}

			services = append(services, ParsedService{
				Name:         name,
				PriceCents:   priceCents,
				BillingUnit:  unit,
				TaxRate:      nil,
				DurationText: durationText,
				Notes:        fmt.Sprintf("Page %d (fallback)", page.GetPageNumber()),
				Confidence:   fallbackConfidence,
			})
		}
	}

	return services
}
