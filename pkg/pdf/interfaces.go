package pdf

// Document represents an opened PDF document
type Document interface {
	// GetMetadata returns the PDF metadata
	GetMetadata() Metadata

	// GetPages returns all pages in the document
	GetPages() []Page

	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// PageCount returns the total number of pages
	PageCount() int

	// Close releases resources associated with the document
	Close() error
}

// Page represents a single page in a PDF document
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// GetWidth returns the page width
	GetWidth() float64

	// GetHeight returns the page height
	GetHeight() float64

	// Fragments returns the positioned text fragments of the page,
	// filtered to non-empty text. Order is unspecified.
	Fragments() []Fragment

	// Text returns the raw page text without position information
	Text() string
}
