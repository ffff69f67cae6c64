package services

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pyhub-apps/listino/pkg/layout"
	"github.com/pyhub-apps/listino/pkg/locale"
	"github.com/pyhub-apps/listino/pkg/pdf"
)

// dedupKey normalizes a service name for duplicate detection. NFC keeps a
// decomposed accent from slipping past its precomposed form when a backend
// hands over un-normalized text.
func dedupKey(name string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(name)))
}

// Extractor runs the full extraction pipeline over a document. The
// vocabulary and layout options are fixed at construction so a single
// Extractor can be reused across documents.
type Extractor struct {
	vocab *locale.Vocabulary
	opts  layout.Options
}

// NewExtractor creates an Extractor with the given vocabulary and layout
// options
func NewExtractor(vocab *locale.Vocabulary, opts layout.Options) *Extractor {
	return &Extractor{vocab: vocab, opts: opts}
}

// Extract runs structured extraction across all pages in order; if that
// yields nothing, the whole-text fallback sweep runs instead. The result
// is sorted by confidence descending, stable for ties.
func (e *Extractor) Extract(doc pdf.Document) Result {
	services := e.extractStructured(doc)

	if len(services) == 0 {
		services = e.extractFallback(doc)
	}

	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Confidence > services[j].Confidence
	})

	method := MethodStructured
	if len(services) > 0 && strings.Contains(services[0].Notes, "fallback") {
		method = MethodFallback
	}

	if services == nil {
		services = []ParsedService{}
	}

	return Result{
		Success:  true,
		Services: services,
		Count:    len(services),
		Method:   method,
	}
}

// extractStructured runs the layout pipeline page by page. Pages are
// processed strictly in order: the dedup set spans the whole document and
// the first occurrence of a name wins. A page that fails mid-extraction
// is skipped, not fatal.
func (e *Extractor) extractStructured(doc pdf.Document) []ParsedService {
	var services []ParsedService
	seen := make(map[string]struct{})

	for _, page := range doc.GetPages() {
		services = append(services, e.pageServices(page, seen)...)
	}

	return services
}

// pageServices extracts the services of one page, recovering from panics
// in malformed page content.
func (e *Extractor) pageServices(page pdf.Page, seen map[string]struct{}) (out []ParsedService) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
		}
	}()

	fragments := page.Fragments()
	if len(fragments) == 0 {
		return nil
	}

	rows := layout.ClusterRows(fragments, e.opts.RowThreshold)
	if len(rows) == 0 {
		return nil
	}

	hints := layout.DetectColumns(rows, e.vocab, e.opts.HeaderScanRows)
	pageWidth := page.GetWidth()

	for _, row := range rows {
		data, ok := layout.SegmentRow(row, hints, pageWidth, e.vocab, e.opts)
		if !ok {
			continue
		}

		// The name claims its dedup slot before price validation, so a
		// price-rejected row still shadows later duplicates.
		normalized := dedupKey(data.Name)
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}

		priceCents, priceOK := e.vocab.ParsePrice(data.PriceText)
		if !priceOK || priceCents <= 0 {
			continue
		}

		unit, _ := e.vocab.DetectBillingUnit(data.Name + " " + data.DurationText)

		var taxRate *float64
		if data.TaxText != "" {
			if rate, ok := e.vocab.ParseTaxRate(data.TaxText); ok {
				taxRate = &rate
			}
		}

		var durationText *string
		if data.DurationText != "" {
			d := data.DurationText
			durationText = &d
		}

		out = append(out, ParsedService{
			Name:         data.Name,
			PriceCents:   priceCents,
			BillingUnit:  unit,
			TaxRate:      taxRate,
			DurationText: durationText,
			Notes:        fmt.Sprintf("Page %d", page.GetPageNumber()),
			Confidence:   Confidence(data.Name, priceCents, taxRate != nil, unit),
		})
	}

	return out
}
