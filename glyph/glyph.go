// Package glyph holds the font-unit geometry shared by the ranking,
// layout and rendering stages of an atlas build.
//
// All coordinates in this package are font design units with the y axis
// pointing up, as stored in the font's glyf/CFF tables.
package glyph

import "errors"

// Sentinel errors reported by font collaborators. The atlas pipeline
// treats them as recoverable: the glyph is skipped and a diagnostic is
// recorded.
var (
	// ErrNoGlyph is returned when the font has no glyph for a codepoint.
	ErrNoGlyph = errors.New("glyph: codepoint not in font")

	// ErrNoAdvance is returned when the glyph has no horizontal metrics.
	ErrNoAdvance = errors.New("glyph: missing horizontal advance")

	// ErrNoShape is returned when the glyph has no outline to render.
	ErrNoShape = errors.New("glyph: no renderable shape")
)

// ID is a glyph index within a font.
type ID uint16

// Rect is a bounding box in font units.
type Rect struct {
	XMin, YMin int
	XMax, YMax int
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() int {
	return r.XMax - r.XMin
}

// Height returns the vertical extent of the box.
func (r Rect) Height() int {
	return r.YMax - r.YMin
}

// Area returns Width * Height.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// IsEmpty reports whether the box encloses no area.
func (r Rect) IsEmpty() bool {
	return r.XMin >= r.XMax || r.YMin >= r.YMax
}

// Metrics is the per-glyph result of font introspection.
type Metrics struct {
	ID ID

	// Advance is the horizontal advance width.
	Advance int

	// SideBearing is the left side bearing.
	SideBearing int

	// Bounds is the glyph's bounding box. Zero for blank glyphs.
	Bounds Rect
}

// FontMetrics are font-wide values used when assembling output records.
type FontMetrics struct {
	UnitsPerEm int
	Ascender   int
	Descender  int

	// LineHeight is Ascender + Descender.
	LineHeight int
}

// Box is the bounding box of one requested codepoint, as collected by
// the ranker. It is immutable once collected.
type Box struct {
	Codepoint rune
	ID        ID
	Bounds    Rect

	// Advance and SideBearing are carried through to the output records.
	Advance     int
	SideBearing int
}

// Skip records a requested codepoint that was left out of some stage of
// an atlas build. Reason wraps one of the sentinel errors above, or the
// collaborator error that caused the skip.
type Skip struct {
	Codepoint rune
	Reason    error
}
