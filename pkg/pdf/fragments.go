package pdf

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// lineTolerance groups character cells into text lines before word
// assembly. Row-level clustering downstream uses a much looser threshold.
const lineTolerance = 2.0

// xTolerance is the maximum horizontal gap between characters of the
// same fragment, in page units.
const xTolerance = 3.0

// charCell is a single positioned glyph, the unit both backends produce
// before fragments are assembled.
type charCell struct {
	text     string
	font     string
	fontSize float64
	x0       float64
	y0       float64
	x1       float64
	y1       float64
}

// buildFragments assembles character cells into word-level fragments and a
// plain-text rendition of the page (one line per text line, fragments
// separated by single spaces). Fragment text is NFC-normalized so accented
// Italian/German names compare canonically downstream.
func buildFragments(chars []charCell) ([]Fragment, string) {
	if len(chars) == 0 {
		return nil, ""
	}

	sorted := make([]charCell, len(chars))
	copy(sorted, chars)

	sort.Slice(sorted, func(i, j int) bool {
		if abs(sorted[i].y0-sorted[j].y0) > lineTolerance {
			return sorted[i].y0 < sorted[j].y0
		}
		return sorted[i].x0 < sorted[j].x0
	})

	lines := groupIntoLines(sorted)

	var fragments []Fragment
	var text strings.Builder

	for i, line := range lines {
		lineFragments := fragmentsFromLine(line)
		if len(lineFragments) == 0 {
			continue
		}

		if i > 0 && text.Len() > 0 {
			text.WriteString("\n")
		}
		for j, frag := range lineFragments {
			if j > 0 {
				text.WriteString(" ")
			}
			text.WriteString(frag.Text)
		}

		fragments = append(fragments, lineFragments...)
	}

	return fragments, text.String()
}

// groupIntoLines groups character cells into lines based on Y position.
// The line anchor is the first cell's Y0 and does not drift.
func groupIntoLines(chars []charCell) [][]charCell {
	if len(chars) == 0 {
		return nil
	}

	var lines [][]charCell
	var currentLine []charCell

	currentY := chars[0].y0

	for _, char := range chars {
		if abs(char.y0-currentY) > lineTolerance {
			if len(currentLine) > 0 {
				lines = append(lines, currentLine)
			}
			currentLine = []charCell{char}
			currentY = char.y0
		} else {
			currentLine = append(currentLine, char)
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, currentLine)
	}

	return lines
}

// fragmentsFromLine assembles word fragments from a single line of cells.
// A gap wider than xTolerance, or wider than 30% of the next character's
// width, starts a new fragment.
func fragmentsFromLine(lineChars []charCell) []Fragment {
	if len(lineChars) == 0 {
		return nil
	}

	sort.Slice(lineChars, func(i, j int) bool {
		return lineChars[i].x0 < lineChars[j].x0
	})

	var fragments []Fragment
	var current []charCell

	for i, char := range lineChars {
		if i == 0 {
			current = []charCell{char}
			continue
		}

		gap := char.x0 - lineChars[i-1].x1
		if gap > xTolerance || gap > (char.x1-char.x0)*0.3 {
			if frag, ok := makeFragment(current); ok {
				fragments = append(fragments, frag)
			}
			current = []charCell{char}
		} else {
			current = append(current, char)
		}
	}

	if frag, ok := makeFragment(current); ok {
		fragments = append(fragments, frag)
	}

	return fragments
}

// makeFragment merges a run of cells into one Fragment. Runs whose text is
// empty after trimming are dropped.
func makeFragment(chars []charCell) (Fragment, bool) {
	if len(chars) == 0 {
		return Fragment{}, false
	}

	var text strings.Builder
	minX, minY := chars[0].x0, chars[0].y0
	maxX, maxY := chars[0].x1, chars[0].y1

	for _, char := range chars {
		text.WriteString(char.text)
		minX = min(minX, char.x0)
		minY = min(minY, char.y0)
		maxX = max(maxX, char.x1)
		maxY = max(maxY, char.y1)
	}

	normalized := norm.NFC.String(strings.TrimSpace(text.String()))
	if normalized == "" {
		return Fragment{}, false
	}

	return Fragment{
		Text:     normalized,
		Font:     chars[0].font,
		FontSize: chars[0].fontSize,
		X0:       minX,
		Y0:       minY,
		X1:       maxX,
		Y1:       maxY,
	}, true
}

// Helper functions
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
