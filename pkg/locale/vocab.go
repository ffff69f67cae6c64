// Package locale holds the Italian/German vocabulary tables and the
// locale-aware normalizers for Swiss service price lists: price strings to
// cents, billing-unit phrases, tax-rate tokens, and the service-name test.
package locale

import (
	"regexp"
)

// BillingUnit classifies the recurrence of a price
type BillingUnit string

const (
	OneTime    BillingUnit = "one_time"
	Monthly    BillingUnit = "monthly"
	PerSession BillingUnit = "per_session"
)

// ColumnKind identifies a price-list table column
type ColumnKind string

const (
	ColumnName     ColumnKind = "name"
	ColumnDuration ColumnKind = "duration"
	ColumnPrice    ColumnKind = "price"
	ColumnTax      ColumnKind = "tax"
)

// ColumnKinds lists all column kinds in header-scan order
var ColumnKinds = []ColumnKind{ColumnName, ColumnDuration, ColumnPrice, ColumnTax}

// BillingPattern pairs a compiled phrase pattern with the unit it implies
type BillingPattern struct {
	Unit    BillingUnit
	Pattern *regexp.Regexp
}

// TaxToken maps a literal rate spelling to its fractional value
type TaxToken struct {
	Text string
	Rate float64
}

// Vocabulary is the immutable pattern and token configuration the pipeline
// components consume. Build it once with DefaultVocabulary; tests may
// construct their own to swap locale tables. Evaluation order inside the
// slices is semantically significant and must not be changed.
type Vocabulary struct {
	// Headers maps column kinds to uppercase header phrases
	Headers map[ColumnKind][]string

	// TaxTokens are scanned in order as substrings before numeric parsing
	TaxTokens []TaxToken

	// BillingPatterns are tested in order against lowercased text;
	// monthly phrases come before per-session phrases
	BillingPatterns []BillingPattern

	// skipNames rejects text that starts like a total, tax label,
	// currency label, page marker, or bare numeric token
	skipNames []*regexp.Regexp

	numericOnly   *regexp.Regexp
	priceHint     *regexp.Regexp
	priceToken    *regexp.Regexp
	taxHint       *regexp.Regexp
	currencyMark  *regexp.Regexp
	trailingDash  *regexp.Regexp
	nonNumeric    *regexp.Regexp
	decimalNumber *regexp.Regexp
	fallbackLine  *regexp.Regexp
}

// DefaultVocabulary returns the Italian/German vocabulary for Swiss price
// lists.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Headers: map[ColumnKind][]string{
			ColumnName: {"PRESTAZIONE", "SERVIZIO", "PRESTAZIONE / SERVIZIO", "PRESTAZIONE/SERVIZIO",
				"LEISTUNG", "DIENSTLEISTUNG", "SERVICE"},
			ColumnDuration: {"DURATA", "DAUER", "ZEITRAUM"},
			ColumnPrice:    {"PREZZO", "PREIS", "PRICE", "CHF"},
			ColumnTax:      {"IVA", "+ IVA", "+IVA", "MWST", "TVA"},
		},
		TaxTokens: []TaxToken{
			{"8.1", 0.081}, {"8,1", 0.081}, {"8.1%", 0.081}, {"8,1%", 0.081},
			{"2.6", 0.026}, {"2,6", 0.026}, {"2.6%", 0.026}, {"2,6%", 0.026},
			{"3.8", 0.038}, {"3,8", 0.038}, {"3.8%", 0.038}, {"3,8%", 0.038},
		},
		BillingPatterns: []BillingPattern{
			{Monthly, regexp.MustCompile(`al\s+mese`)},
			{Monthly, regexp.MustCompile(`mensile`)},
			{Monthly, regexp.MustCompile(`per\s+mese`)},
			{Monthly, regexp.MustCompile(`/\s*mese`)},
			{Monthly, regexp.MustCompile(`pro\s+monat`)},
			{Monthly, regexp.MustCompile(`monatlich`)},
			{Monthly, regexp.MustCompile(`/\s*monat`)},
			{Monthly, regexp.MustCompile(`mtl\.?`)},
			{PerSession, regexp.MustCompile(`al\s+giorno`)},
			{PerSession, regexp.MustCompile(`per\s+giorno`)},
			{PerSession, regexp.MustCompile(`/\s*giorno`)},
			{PerSession, regexp.MustCompile(`giornalier[oa]`)},
			{PerSession, regexp.MustCompile(`pro\s+tag`)},
			{PerSession, regexp.MustCompile(`täglich`)},
			{PerSession, regexp.MustCompile(`/\s*tag`)},
			{PerSession, regexp.MustCompile(`per\s+ora`)},
			{PerSession, regexp.MustCompile(`all'?\s*ora`)},
			{PerSession, regexp.MustCompile(`/\s*ora`)},
			{PerSession, regexp.MustCompile(`pro\s+stunde`)},
			{PerSession, regexp.MustCompile(`/\s*stunde`)},
			{PerSession, regexp.MustCompile(`lezione`)},
			{PerSession, regexp.MustCompile(`per\s+lezione`)},
			{PerSession, regexp.MustCompile(`/\s*lezione`)},
			{PerSession, regexp.MustCompile(`pro\s+lektion`)},
			{PerSession, regexp.MustCompile(`/\s*lektion`)},
		},
		skipNames: []*regexp.Regexp{
			regexp.MustCompile(`^(tot|total|subtot|summe|somma)`),
			regexp.MustCompile(`^(iva|mwst|tva|tax)`),
			regexp.MustCompile(`^(chf|eur|usd|fr\.)`),
			regexp.MustCompile(`^(pagina|page|seite)`),
			regexp.MustCompile(`^\d+[.,]\d+%?$`),
		},
		numericOnly:   regexp.MustCompile(`^[\d\s.,\-–—/'"]+$`),
		priceHint:     regexp.MustCompile(`(?i)CHF|Fr\.|SFr|€|\d+['.,]\d+`),
		priceToken:    regexp.MustCompile(`(?i)(?:CHF|Fr\.|SFr\.?|€)?\s*[\d'.,]+(?:[.–—-]|(?:\d{2}))?`),
		taxHint:       regexp.MustCompile(`(?i)\d+[.,]\d+\s*%|IVA|MWST|TVA`),
		currencyMark:  regexp.MustCompile(`(?i)CHF|Fr\.|SFr\.?|€|\$`),
		trailingDash:  regexp.MustCompile(`[.–—-]+$`),
		nonNumeric:    regexp.MustCompile(`[^\d.]`),
		decimalNumber: regexp.MustCompile(`\d+[.,]\d+`),
		fallbackLine:  regexp.MustCompile(`([A-Za-zÀ-ÿ][^CHF€\n]{3,60}?)\s*(?:CHF|Fr\.|€)?\s*([\d'.,]+(?:[.–—-]|\d{2})?)(?:\s*(?:CHF|Fr\.))?`),
	}
}

// IsPriceLike reports whether the text contains a currency marker or a
// grouped/decimal number.
func (v *Vocabulary) IsPriceLike(text string) bool {
	return v.priceHint.MatchString(text)
}

// FindPriceToken returns the leftmost price expression in the text and the
// index where it starts. The second return is -1 when no token is found.
func (v *Vocabulary) FindPriceToken(text string) (string, int) {
	loc := v.priceToken.FindStringIndex(text)
	if loc == nil {
		return "", -1
	}
	return text[loc[0]:loc[1]], loc[0]
}

// IsTaxLike reports whether the text contains a percentage or a known tax
// label token (IVA/MWST/TVA).
func (v *Vocabulary) IsTaxLike(text string) bool {
	return v.taxHint.MatchString(text)
}

// FallbackMatches runs the whole-text price sweep and returns
// (name, price) candidate pairs in match order.
func (v *Vocabulary) FallbackMatches(text string) [][2]string {
	var out [][2]string
	for _, m := range v.fallbackLine.FindAllStringSubmatch(text, -1) {
		out = append(out, [2]string{m[1], m[2]})
	}
	return out
}
