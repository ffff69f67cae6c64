package listino_test

import (
	"errors"
	"testing"

	"github.com/pyhub-apps/listino"
)

func TestOpenMissingFile(t *testing.T) {
	doc, err := listino.Open("testdata/nope.pdf")
	if err == nil {
		doc.Close()
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, listino.ErrInvalidDocument) {
		t.Errorf("error %v does not match ErrInvalidDocument", err)
	}
}

func TestExtractFileMissingFile(t *testing.T) {
	_, err := listino.ExtractFile("testdata/nope.pdf")
	if !errors.Is(err, listino.ErrInvalidDocument) {
		t.Errorf("error %v does not match ErrInvalidDocument", err)
	}
}
