package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/pyhub-apps/listino/pkg/locale"
)

// RowField is a merged run of horizontally adjacent fragments within a row
type RowField struct {
	Text string
	X0   float64
	X1   float64
}

// FieldKind tags a classified row chunk
type FieldKind int

const (
	FieldName FieldKind = iota
	FieldPrice
	FieldDuration
	FieldTax
)

// ClassifiedField is a row chunk with its resolved classification. The
// price variant additionally carries the leading text that may serve as
// the row's name.
type ClassifiedField struct {
	Kind FieldKind
	Text string

	// LeadingName is the name-like text preceding a price token,
	// set only for FieldPrice
	LeadingName string
}

// RowData holds the raw field texts segmented out of one row. Empty
// strings mean the field is absent.
type RowData struct {
	Name         string
	PriceText    string
	DurationText string
	TaxText      string
}

// MergeFields merges adjacent fragments of a row into larger text chunks.
// A fragment joins the running chunk when its X0 is less than mergeGap
// from the chunk's right edge.
func MergeFields(row Row, mergeGap float64) []RowField {
	if len(row) == 0 {
		return nil
	}

	var fields []RowField
	current := RowField{Text: row[0].Text, X0: row[0].X0, X1: row[0].X1}

	for _, frag := range row[1:] {
		if frag.X0-current.X1 < mergeGap {
			current.Text += " " + frag.Text
			current.X1 = frag.X1
		} else {
			current.Text = strings.TrimSpace(current.Text)
			fields = append(fields, current)
			current = RowField{Text: frag.Text, X0: frag.X0, X1: frag.X1}
		}
	}

	current.Text = strings.TrimSpace(current.Text)
	fields = append(fields, current)

	return fields
}

// SegmentRow merges a row's fragments into chunks and classifies them into
// at most one name, price, duration, and tax field. Column hints are
// advisory and currently unused for gating; they are accepted so callers
// can thread them through once position gating tightens.
//
// Price, duration, and tax are write-once: a chunk that would classify as
// an already-claimed kind falls through to the next test, so a trailing
// "8.1%" still lands in the tax slot when the price slot is taken. The
// final name-candidate branch deliberately keeps overwriting: the last
// qualifying chunk wins even when a name was already set.
//
// The second return is false when no name could be resolved; such rows
// are rejected.
func SegmentRow(row Row, hints map[locale.ColumnKind]ColumnHint, pageWidth float64, vocab *locale.Vocabulary, opts Options) (RowData, bool) {
	fields := MergeFields(row, opts.MergeGap)
	if len(fields) == 0 {
		return RowData{}, false
	}

	var data RowData

	for _, field := range fields {
		cf, ok := classify(field, data, pageWidth, vocab)
		if !ok {
			continue
		}

		switch cf.Kind {
		case FieldPrice:
			data.PriceText = cf.Text
			if data.Name == "" && cf.LeadingName != "" {
				data.Name = cf.LeadingName
			}
		case FieldTax:
			data.TaxText = cf.Text
		case FieldDuration:
			data.DurationText = cf.Text
			if utf8.RuneCountInString(field.Text) > opts.LongChunkRunes && vocab.IsServiceName(field.Text) {
				data.Name = field.Text
			}
		case FieldName:
			data.Name = cf.Text
		}
	}

	if data.Name == "" {
		return RowData{}, false
	}

	return data, true
}

// classify resolves one chunk against the current row state, first match
// wins. The evaluation order is semantically significant: price, then tax,
// then duration, then the name fallback.
func classify(field RowField, data RowData, pageWidth float64, vocab *locale.Vocabulary) (ClassifiedField, bool) {
	text := field.Text

	if data.PriceText == "" && vocab.IsPriceLike(text) {
		if token, start := vocab.FindPriceToken(text); start >= 0 {
			leading := strings.TrimSpace(text[:start])
			if leading != "" && !vocab.IsServiceName(leading) {
				leading = ""
			}
			return ClassifiedField{Kind: FieldPrice, Text: token, LeadingName: leading}, true
		}
	}

	if data.TaxText == "" && vocab.IsTaxLike(text) {
		return ClassifiedField{Kind: FieldTax, Text: text}, true
	}

	if data.DurationText == "" {
		if unit, _ := vocab.DetectBillingUnit(text); unit != locale.OneTime {
			return ClassifiedField{Kind: FieldDuration, Text: text}, true
		}
	}

	if vocab.IsServiceName(text) {
		relPos := 0.0
		if pageWidth > 0 {
			relPos = (field.X0 + field.X1) / 2 / pageWidth
		}
		if relPos < 0.5 || data.Name == "" {
			return ClassifiedField{Kind: FieldName, Text: text}, true
		}
	}

	return ClassifiedField{}, false
}
