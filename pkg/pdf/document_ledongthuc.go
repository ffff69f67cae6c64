package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using the
// ledongthuc/pdf library, which exposes positioned text runs.
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	pages    []Page
	metadata Metadata
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	doc := &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
		metadata: ReadMetadata(filepath),
	}

	doc.initializePages()

	if len(doc.pages) == 0 {
		f.Close()
		return nil, fmt.Errorf("no readable pages in %s", filepath)
	}

	return doc, nil
}

// initializePages builds all readable pages of the document. A page whose
// content cannot be extracted is skipped rather than failing the document.
func (d *LedongthucDocument) initializePages() {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, 0, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := newLedongthucPage(d.reader, i)
		if err != nil {
			continue
		}
		d.pages = append(d.pages, page)
	}
}

// GetMetadata returns the PDF metadata
func (d *LedongthucDocument) GetMetadata() Metadata {
	return d.metadata
}

// GetPages returns all pages in the document
func (d *LedongthucDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf.
// Fragments and text are extracted eagerly at construction.
type LedongthucPage struct {
	pageNumber int
	width      float64
	height     float64
	fragments  []Fragment
	text       string
}

func newLedongthucPage(reader *lpdf.Reader, pageNumber int) (Page, error) {
	page := reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d is null", pageNumber)
	}

	// Page dimensions from MediaBox, defaulting to US Letter
	width, height := 612.0, 792.0

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		width = mediaBox.Index(2).Float64() - mediaBox.Index(0).Float64()
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	content, err := ledongthucContent(page)
	if err != nil {
		return nil, err
	}

	var chars []charCell
	for _, text := range content.Text {
		chars = append(chars, ledongthucCells(text, height)...)
	}

	fragments, pageText := buildFragments(chars)

	return &LedongthucPage{
		pageNumber: pageNumber,
		width:      width,
		height:     height,
		fragments:  fragments,
		text:       pageText,
	}, nil
}

// ledongthucContent reads page content, converting library panics on
// malformed content streams into errors.
func ledongthucContent(page lpdf.Page) (content lpdf.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("content extraction failed: %v", r)
		}
	}()
	content = page.Content()
	return content, nil
}

// ledongthucCells converts one text run into character cells.
// PDF coordinates grow upward from the bottom; the pipeline expects a
// top-left origin, so Y is inverted here. The baseline sits at roughly
// 80% of the font height.
func ledongthucCells(text lpdf.Text, pageHeight float64) []charCell {
	runes := []rune(text.S)
	if len(runes) == 0 {
		return nil
	}

	fontSize := text.FontSize
	yTop := pageHeight - (text.Y + fontSize*0.8)

	charWidth := text.W / float64(len(runes))
	x := text.X

	var cells []charCell
	for _, ch := range runes {
		if ch != ' ' {
			cells = append(cells, charCell{
				text:     string(ch),
				font:     text.Font,
				fontSize: fontSize,
				x0:       x,
				y0:       yTop,
				x1:       x + charWidth,
				y1:       yTop + fontSize,
			})
		}
		x += charWidth
	}

	return cells
}

// Text returns the plain page text assembled from the extracted fragments
func (p *LedongthucPage) Text() string {
	return p.text
}

// Fragments returns the positioned text fragments of the page
func (p *LedongthucPage) Fragments() []Fragment {
	return p.fragments
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *LedongthucPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *LedongthucPage) GetHeight() float64 {
	return p.height
}
