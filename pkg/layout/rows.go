package layout

import (
	"sort"
	"strings"

	"github.com/pyhub-apps/listino/pkg/pdf"
)

// Row is an ordered sequence of fragments judged to lie on the same
// horizontal line, sorted left to right by X0.
type Row []pdf.Fragment

// Text returns the row's fragment texts joined with single spaces
func (r Row) Text() string {
	parts := make([]string, len(r))
	for i, frag := range r {
		parts[i] = frag.Text
	}
	return strings.Join(parts, " ")
}

// ClusterRows groups a page's fragments into rows by vertical proximity.
// Fragments are sorted by Y0; a row is anchored at its first member's Y0
// and the anchor never updates, so later members may drift up to the
// threshold from the anchor. Each finished row is sorted by X0.
func ClusterRows(fragments []pdf.Fragment, threshold float64) []Row {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]pdf.Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y0 < sorted[j].Y0
	})

	var rows []Row
	current := Row{sorted[0]}
	anchorY := sorted[0].Y0

	for _, frag := range sorted[1:] {
		if abs(frag.Y0-anchorY) <= threshold {
			current = append(current, frag)
		} else {
			rows = append(rows, sortRow(current))
			current = Row{frag}
			anchorY = frag.Y0
		}
	}

	rows = append(rows, sortRow(current))

	return rows
}

func sortRow(row Row) Row {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X0 < row[j].X0
	})
	return row
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
