package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// DslipakDocument implements the Document interface using the dslipak/pdf
// library. It serves as the fallback backend when ledongthuc cannot open
// the file.
type DslipakDocument struct {
	reader   *gopdf.Reader
	filepath string
	pages    []Page
	metadata Metadata
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	doc := &DslipakDocument{
		reader:   r,
		filepath: filepath,
		metadata: ReadMetadata(filepath),
	}

	doc.initializePages()

	if len(doc.pages) == 0 {
		return nil, fmt.Errorf("no readable pages in %s", filepath)
	}

	return doc, nil
}

// initializePages builds all readable pages, skipping pages whose content
// cannot be extracted.
func (d *DslipakDocument) initializePages() {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, 0, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := newDslipakPage(d.reader, i)
		if err != nil {
			continue
		}
		d.pages = append(d.pages, page)
	}
}

// GetMetadata returns the PDF metadata
func (d *DslipakDocument) GetMetadata() Metadata {
	return d.metadata
}

// GetPages returns all pages in the document
func (d *DslipakDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *DslipakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *DslipakDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *DslipakDocument) Close() error {
	d.reader = nil
	d.pages = nil
	return nil
}

// DslipakPage implements the Page interface using dslipak/pdf
type DslipakPage struct {
	pageNumber int
	width      float64
	height     float64
	fragments  []Fragment
	text       string
}

func newDslipakPage(reader *gopdf.Reader, pageNumber int) (Page, error) {
	page := reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d is null", pageNumber)
	}

	width, height := 612.0, 792.0

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == gopdf.Array && mediaBox.Len() == 4 {
		width = mediaBox.Index(2).Float64() - mediaBox.Index(0).Float64()
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	content, err := dslipakContent(page)
	if err != nil {
		return nil, err
	}

	var chars []charCell
	for _, text := range content.Text {
		chars = append(chars, dslipakCells(text, height)...)
	}

	fragments, pageText := buildFragments(chars)

	return &DslipakPage{
		pageNumber: pageNumber,
		width:      width,
		height:     height,
		fragments:  fragments,
		text:       pageText,
	}, nil
}

// dslipakContent reads page content, converting library panics on
// malformed content streams into errors.
func dslipakContent(page gopdf.Page) (content gopdf.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("content extraction failed: %v", r)
		}
	}()
	content = page.Content()
	return content, nil
}

// dslipakCells converts one text run into character cells, inverting Y to
// the top-left origin the pipeline expects.
func dslipakCells(text gopdf.Text, pageHeight float64) []charCell {
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
		if ch != ' ' && ch != '\n' && ch != '\r' {
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
func (p *DslipakPage) Text() string {
	return p.text
}

// Fragments returns the positioned text fragments of the page
func (p *DslipakPage) Fragments() []Fragment {
	return p.fragments
}

// GetPageNumber returns the page number (1-based)
func (p *DslipakPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *DslipakPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *DslipakPage) GetHeight() float64 {
	return p.height
}
