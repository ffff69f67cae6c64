// Command dump-rows prints the clustered rows and segmented fields of each
// page, for debugging layout reconstruction on a problem PDF.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pyhub-apps/listino"
	"github.com/pyhub-apps/listino/pkg/layout"
	"github.com/pyhub-apps/listino/pkg/locale"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: dump-rows <pdf_file>")
		os.Exit(1)
	}

	doc, err := listino.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	vocab := locale.DefaultVocabulary()
	opts := layout.DefaultOptions()

	for _, page := range doc.GetPages() {
		fmt.Printf("=== Page %d (width %.1f) ===\n", page.GetPageNumber(), page.GetWidth())

		rows := layout.ClusterRows(page.Fragments(), opts.RowThreshold)
		hints := layout.DetectColumns(rows, vocab, opts.HeaderScanRows)

		for kind, hint := range hints {
			fmt.Printf("column %-8s x=[%.1f, %.1f]\n", kind, hint.XMin, hint.XMax)
		}

		for i, row := range rows {
			y := 0.0
			if len(row) > 0 {
				y = row[0].Y0
			}
			fmt.Printf("row %2d y=%.1f  %q\n", i, y, row.Text())

			data, ok := layout.SegmentRow(row, hints, page.GetWidth(), vocab, opts)
			if !ok {
				continue
			}
			fmt.Printf("        name=%q price=%q duration=%q tax=%q\n",
				data.Name, data.PriceText, data.DurationText, data.TaxText)
		}

		fmt.Println()
	}
}
