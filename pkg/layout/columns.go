package layout

import (
	"strings"

	"github.com/pyhub-apps/listino/pkg/locale"
)

// Column hint margins: header cells are narrower than the data below them,
// so the matched fragment's box is widened before use.
const (
	hintMarginLeft  = 10.0
	hintMarginRight = 100.0
)

// ColumnHint is an advisory x-range for a table column, derived from a
// matched header fragment. The segmenter does not hard-gate fields by it.
type ColumnHint struct {
	Kind locale.ColumnKind
	XMin float64
	XMax float64
}

// DetectColumns scans at most the first scanRows rows for known header
// phrases and records a hint per column kind. The first match per kind
// wins; later rows never overwrite an existing hint. The returned map may
// be missing some or all kinds.
func DetectColumns(rows []Row, vocab *locale.Vocabulary, scanRows int) map[locale.ColumnKind]ColumnHint {
	hints := make(map[locale.ColumnKind]ColumnHint)

	if len(rows) > scanRows {
		rows = rows[:scanRows]
	}

	for _, row := range rows {
		rowText := strings.ToUpper(row.Text())

		for _, kind := range locale.ColumnKinds {
			if _, found := hints[kind]; found {
				continue
			}

			for _, header := range vocab.Headers[kind] {
				if !strings.Contains(rowText, header) {
					continue
				}

				for _, frag := range row {
					if strings.Contains(strings.ToUpper(frag.Text), header) {
						hints[kind] = ColumnHint{
							Kind: kind,
							XMin: frag.X0 - hintMarginLeft,
							XMax: frag.X1 + hintMarginRight,
						}
						break
					}
				}
				if _, found := hints[kind]; found {
					break
				}
			}
		}
	}

	return hints
}
