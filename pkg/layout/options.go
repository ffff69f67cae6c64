// Package layout reconstructs tabular structure from positioned text
// fragments: it clusters fragments into rows, locates column headers, and
// segments each row into name/price/duration/tax fields.
package layout

// Options holds the geometric thresholds of the layout pipeline, in page
// coordinate units.
type Options struct {
	// RowThreshold is the maximum vertical distance from a row's anchor
	// for a fragment to join the row
	RowThreshold float64

	// MergeGap is the maximum horizontal gap between adjacent fragments
	// merged into one field
	MergeGap float64

	// HeaderScanRows bounds how many leading rows are scanned for
	// column headers
	HeaderScanRows int

	// LongChunkRunes is the length above which a duration chunk is also
	// considered as the row's name
	LongChunkRunes int
}

// DefaultOptions returns the thresholds tuned for Swiss price-list PDFs
func DefaultOptions() Options {
	return Options{
		RowThreshold:   8.0,
		MergeGap:       20.0,
		HeaderScanRows: 10,
		LongChunkRunes: 20,
	}
}
