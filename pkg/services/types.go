// Package services assembles the final priced-service records: it drives
// the layout pipeline across pages, normalizes fields, deduplicates by
// name, scores confidence, and falls back to a whole-text sweep when the
// structured pass finds nothing.
package services

import (
	"github.com/pyhub-apps/listino/pkg/locale"
)

// Extraction method names reported in Result.Method
const (
	MethodStructured = "structured"
	MethodFallback   = "fallback"
)

// ParsedService is one extracted priced service. Records are immutable
// once created and scoped to a single document run.
type ParsedService struct {
	Name         string             `json:"name"`
	PriceCents   int                `json:"price_cents"`
	BillingUnit  locale.BillingUnit `json:"billing_unit"`
	TaxRate      *float64           `json:"tax_rate"`
	DurationText *string            `json:"duration_text"`
	Notes        string             `json:"notes"`
	Confidence   float64            `json:"confidence"`
}

// Result is the success output shape of a document run
type Result struct {
	Success  bool            `json:"success"`
	Services []ParsedService `json:"services"`
	Count    int             `json:"count"`
	Method   string          `json:"method"`
}

// Failure is the error output shape of a document run
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewFailure builds the failure shape from an error message
func NewFailure(msg string) Failure {
	return Failure{Success: false, Error: msg}
}
