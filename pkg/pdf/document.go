package pdf

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ErrInvalidDocument reports a file that cannot be opened or parsed at the
// PDF container level. Callers can match it with errors.Is.
var ErrInvalidDocument = errors.New("invalid PDF document")

// Open opens a PDF file and returns a Document.
// The container is validated with pdfcpu first; extraction then uses the
// ledongthuc backend, falling back to the dslipak backend if it fails.
func Open(filepath string) (Document, error) {
	if err := Validate(filepath); err != nil {
		return nil, err
	}

	doc, err := OpenWithLedongthuc(filepath)
	if err == nil {
		return doc, nil
	}

	return OpenWithDslipak(filepath)
}

// Validate checks that the file exists and is a structurally valid PDF.
// Failures are wrapped in ErrInvalidDocument.
func Validate(filepath string) error {
	if _, err := os.Stat(filepath); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := api.ValidateFile(filepath, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// ReadMetadata reads the document information dictionary via pdfcpu.
// Missing or unresolvable entries yield zero values, never an error.
func ReadMetadata(filepath string) Metadata {
	ctx, err := api.ReadContextFile(filepath)
	if err != nil || ctx.Info == nil {
		return Metadata{}
	}

	dict, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil || dict == nil {
		return Metadata{}
	}

	return Metadata{
		Title:        getStringFromDict(dict, "Title"),
		Author:       getStringFromDict(dict, "Author"),
		Subject:      getStringFromDict(dict, "Subject"),
		Keywords:     getStringFromDict(dict, "Keywords"),
		Creator:      getStringFromDict(dict, "Creator"),
		Producer:     getStringFromDict(dict, "Producer"),
		CreationDate: parsePDFDate(getStringFromDict(dict, "CreationDate")),
		ModDate:      parsePDFDate(getStringFromDict(dict, "ModDate")),
	}
}

func getStringFromDict(dict types.Dict, key string) string {
	if dict == nil {
		return ""
	}

	obj := dict[key]
	if obj == nil {
		return ""
	}

	switch v := obj.(type) {
	case types.StringLiteral:
		return string(v)
	case types.HexLiteral:
		return string(v)
	default:
		return ""
	}
}

// parsePDFDate parses the PDF date format D:YYYYMMDDHHmmSSOHH'mm,
// ignoring the timezone suffix.
func parsePDFDate(dateStr string) time.Time {
	if len(dateStr) >= 2 && dateStr[:2] == "D:" {
		dateStr = dateStr[2:]
	}

	if len(dateStr) >= 14 {
		t, err := time.Parse("20060102150405", dateStr[:14])
		if err == nil {
			return t
		}
	}

	return time.Time{}
}
