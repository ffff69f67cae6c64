// Command dump-fragments prints document metadata and the raw positioned
// fragments of each page, for inspecting what the extraction backends see.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pyhub-apps/listino"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: dump-fragments <pdf_file>")
		os.Exit(1)
	}

	doc, err := listino.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	meta := doc.GetMetadata()
	fmt.Printf("Title:    %s\n", meta.Title)
	fmt.Printf("Author:   %s\n", meta.Author)
	fmt.Printf("Producer: %s\n", meta.Producer)
	if !meta.CreationDate.IsZero() {
		fmt.Printf("Created:  %s\n", meta.CreationDate.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Pages:    %d\n\n", doc.PageCount())

	for _, page := range doc.GetPages() {
		fragments := page.Fragments()
		fmt.Printf("=== Page %d: %d fragments ===\n", page.GetPageNumber(), len(fragments))

		for _, frag := range fragments {
			fmt.Printf("  (%7.2f,%7.2f)-(%7.2f,%7.2f) size=%.1f %q\n",
				frag.X0, frag.Y0, frag.X1, frag.Y1, frag.FontSize, frag.Text)
		}

		fmt.Println()
	}
}
