package composite

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for composite package.
var (
	// ErrInvalidDimensions is returned for non-positive sizes or an
	// unsupported channel count.
	ErrInvalidDimensions = errors.New("composite: invalid dimensions")

	// ErrOutOfBounds is returned when a view rectangle leaves the buffer.
	ErrOutOfBounds = errors.New("composite: view outside buffer")

	// ErrLengthMismatch is returned when rects and bitmaps differ in length.
	ErrLengthMismatch = errors.New("composite: rects and bitmaps must have same length")

	// ErrSliceRange is returned when a work slice reaches past the glyphs.
	ErrSliceRange = errors.New("composite: work slice out of range")
)

// OverlapError reports two view rectangles that share pixels. It always
// indicates a layout bug.
type OverlapError struct {
	A, B         int
	RectA, RectB image.Rectangle
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("composite: views %d %v and %d %v overlap", e.A, e.RectA, e.B, e.RectB)
}

// SizeMismatchError is returned when a bitmap does not match its view.
type SizeMismatchError struct {
	Index         int
	View          image.Point
	Width, Height int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("composite: bitmap %d is %dx%d, view is %dx%d",
		e.Index, e.Width, e.Height, e.View.X, e.View.Y)
}
