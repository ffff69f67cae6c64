// Command listino extracts priced services from a Swiss price-list PDF and
// prints the result as JSON on stdout.
//
// Exit code 1 means no path argument was supplied or the document could
// not be opened; any error caught during processing is still reported as
// structured JSON with exit code 0.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pyhub-apps/listino"
	"github.com/pyhub-apps/listino/pkg/services"
)

func main() {
	if len(os.Args) < 2 {
		emit(services.NewFailure("No PDF path provided"))
		os.Exit(1)
	}

	doc, err := listino.Open(os.Args[1])
	if err != nil {
		emit(services.NewFailure(fmt.Sprintf("Invalid PDF file: %v", err)))
		os.Exit(1)
	}
	defer doc.Close()

	result, err := extract(doc)
	if err != nil {
		emit(services.NewFailure(err.Error()))
		return
	}

	emit(result)
}

// extract runs the pipeline, converting panics from malformed documents
// into errors.
func extract(doc listino.Document) (result listino.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extraction failed: %v", r)
		}
	}()
	return listino.Extract(doc), nil
}

func emit(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
