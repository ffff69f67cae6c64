package locale

import (
	"testing"
)

func TestDetectBillingUnit(t *testing.T) {
	vocab := DefaultVocabulary()

	testCases := []struct {
		input  string
		unit   BillingUnit
		phrase string
	}{
		{"CHF 50.– al mese", Monthly, "al mese"},
		{"CHF 20.– per ora", PerSession, "per ora"},
		{"CHF 30.–", OneTime, ""},
		{"Pensione completa mensile", Monthly, "mensile"},
		{"Pro Monat", Monthly, "pro monat"},
		{"monatlich", Monthly, "monatlich"},
		{"CHF 15 / mese", Monthly, "/ mese"},
		{"al giorno", PerSession, "al giorno"},
		{"giornaliero", PerSession, "giornaliero"},
		{"pro Stunde", PerSession, "pro stunde"},
		{"per lezione", PerSession, "lezione"},
		{"pro Lektion", PerSession, "pro lektion"},
		{"täglich", PerSession, "täglich"},
		{"Massaggio relax", OneTime, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			unit, phrase := vocab.DetectBillingUnit(tc.input)
			if unit != tc.unit {
				t.Errorf("DetectBillingUnit(%q) unit = %q, want %q", tc.input, unit, tc.unit)
			}
			if phrase != tc.phrase {
				t.Errorf("DetectBillingUnit(%q) phrase = %q, want %q", tc.input, phrase, tc.phrase)
			}
		})
	}
}

func TestDetectBillingUnitMonthlyWinsOverSession(t *testing.T) {
	vocab := DefaultVocabulary()

	// Monthly patterns are checked first, so a text matching both groups
	// is classified monthly.
	unit, _ := vocab.DetectBillingUnit("al mese + al giorno")
	if unit != Monthly {
		t.Errorf("unit = %q, want %q", unit, Monthly)
	}
}
