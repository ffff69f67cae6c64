// Package listino extracts structured, priced services from Swiss service
// price-list PDFs (Italian or German): service name, price in cents,
// billing unit, tax rate, and a confidence score per entry.
package listino

import (
	"github.com/pyhub-apps/listino/pkg/layout"
	"github.com/pyhub-apps/listino/pkg/locale"
	"github.com/pyhub-apps/listino/pkg/pdf"
	"github.com/pyhub-apps/listino/pkg/services"
)

// Re-export types from the internal packages for the public API
type (
	Document      = pdf.Document
	Page          = pdf.Page
	Fragment      = pdf.Fragment
	BoundingBox   = pdf.BoundingBox
	Metadata      = pdf.Metadata
	BillingUnit   = locale.BillingUnit
	Vocabulary    = locale.Vocabulary
	Options       = layout.Options
	ParsedService = services.ParsedService
	Result        = services.Result
	Failure       = services.Failure
)

// Billing unit values
const (
	OneTime    = locale.OneTime
	Monthly    = locale.Monthly
	PerSession = locale.PerSession
)

// ErrInvalidDocument reports a file that is not a readable PDF
var ErrInvalidDocument = pdf.ErrInvalidDocument

// Open opens and validates a PDF file. The container is checked with
// pdfcpu, then text extraction backends are tried in accuracy order.
func Open(filepath string) (Document, error) {
	return pdf.Open(filepath)
}

// Extract runs the full pipeline on an open document with the default
// Italian/German vocabulary and layout thresholds.
func Extract(doc Document) Result {
	ex := services.NewExtractor(locale.DefaultVocabulary(), layout.DefaultOptions())
	return ex.Extract(doc)
}

// ExtractFile opens a PDF and extracts its services in one call
func ExtractFile(filepath string) (Result, error) {
	doc, err := Open(filepath)
	if err != nil {
		return Result{}, err
	}
	defer doc.Close()

	return Extract(doc), nil
}
