package pdf

import (
	"testing"
)

func cell(text string, x0, x1, y float64) charCell {
	return charCell{text: text, x0: x0, x1: x1, y0: y, y1: y + 10, fontSize: 10, font: "Helvetica"}
}

func TestBuildFragmentsGroupsWords(t *testing.T) {
	chars := []charCell{
		cell("C", 40, 45, 100),
		cell("a", 45, 50, 100),
		cell("n", 50, 55, 100),
		cell("e", 55, 60, 100),
		// gap of 10 starts a new fragment
		cell("5", 70, 75, 100),
		cell("0", 75, 80, 100),
	}

	fragments, text := buildFragments(chars)

	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(fragments))
	}
	if fragments[0].Text != "Cane" || fragments[1].Text != "50" {
		t.Errorf("fragments = %q, %q", fragments[0].Text, fragments[1].Text)
	}
	if fragments[0].X0 != 40 || fragments[0].X1 != 60 {
		t.Errorf("first fragment spans [%v, %v], want [40, 60]", fragments[0].X0, fragments[0].X1)
	}
	if text != "Cane 50" {
		t.Errorf("page text = %q, want %q", text, "Cane 50")
	}
}

func TestBuildFragmentsSplitsLines(t *testing.T) {
	chars := []charCell{
		// second line listed first; buildFragments sorts by position
		cell("B", 40, 45, 120),
		cell("A", 40, 45, 100),
	}

	fragments, text := buildFragments(chars)

	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(fragments))
	}
	if fragments[0].Text != "A" || fragments[1].Text != "B" {
		t.Errorf("fragments out of reading order: %q, %q", fragments[0].Text, fragments[1].Text)
	}
	if text != "A\nB" {
		t.Errorf("page text = %q, want %q", text, "A\nB")
	}
}

func TestBuildFragmentsSmallYJitterStaysOnOneLine(t *testing.T) {
	chars := []charCell{
		cell("a", 40, 45, 100),
		cell("b", 45, 50, 101.5),
	}

	fragments, _ := buildFragments(chars)

	if len(fragments) != 1 || fragments[0].Text != "ab" {
		t.Fatalf("jittered cells not merged: %+v", fragments)
	}
}

func TestBuildFragmentsNormalizesNFC(t *testing.T) {
	// "e" followed by a combining acute accent composes to "é"
	chars := []charCell{
		cell("C", 40, 45, 100),
		cell("a", 45, 50, 100),
		cell("f", 50, 55, 100),
		cell("e", 55, 60, 100),
		cell("́", 60, 60, 100),
	}

	fragments, _ := buildFragments(chars)

	if len(fragments) != 1 {
		t.Fatalf("got %d fragments, want 1", len(fragments))
	}
	if fragments[0].Text != "Café" {
		t.Errorf("text = %q, want precomposed %q", fragments[0].Text, "Café")
	}
}

func TestBuildFragmentsDropsWhitespaceRuns(t *testing.T) {
	chars := []charCell{
		cell(" ", 40, 45, 100),
		cell("P", 40, 45, 120),
	}

	fragments, text := buildFragments(chars)

	if len(fragments) != 1 || fragments[0].Text != "P" {
		t.Fatalf("fragments = %+v, want only %q", fragments, "P")
	}
	if text != "P" {
		t.Errorf("page text = %q, want %q (no leading newline)", text, "P")
	}
}

func TestBuildFragmentsEmptyInput(t *testing.T) {
	fragments, text := buildFragments(nil)
	if fragments != nil || text != "" {
		t.Errorf("got %v, %q for empty input", fragments, text)
	}
}
