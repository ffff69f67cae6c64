package pdf

import (
	"time"
)

// Fragment represents a positioned run of text on a page.
// Coordinates use a top-left origin: Y0 is the top edge and Y increases
// downward, matching the convention of the downstream layout code.
type Fragment struct {
	Text     string
	Font     string
	FontSize float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
}

// BBox returns the fragment's bounding box
func (f Fragment) BBox() BoundingBox {
	return BoundingBox{X0: f.X0, Y0: f.Y0, X1: f.X1, Y1: f.Y1}
}

// Width returns the fragment's horizontal extent
func (f Fragment) Width() float64 {
	return f.X1 - f.X0
}

// BoundingBox represents a rectangular area with coordinates
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Contains checks if a point is within the bounding box
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Intersects checks if two bounding boxes intersect
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.X1 < other.X0 || b.X0 > other.X1 || b.Y1 < other.Y0 || b.Y0 > other.Y1)
}

// Metadata represents PDF document metadata
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate time.Time
	ModDate      time.Time
}
