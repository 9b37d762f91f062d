package msdfatlas

import (
	"cmp"
	"image"
	"slices"

	"github.com/gogpu/msdfatlas/composite"
	"github.com/gogpu/msdfatlas/glyph"
	"github.com/gogpu/msdfatlas/layout"
	"github.com/gogpu/msdfatlas/uv"
)

// GlyphRecord locates one glyph in the atlas texture. Metrics are in font
// units.
type GlyphRecord struct {
	Codepoint rune

	// Advance is the horizontal advance.
	Advance int

	// Width and Height are the bounding box size.
	Width, Height int

	// BearingX is the left side bearing. BearingY is the sum of the
	// bounding box's top and bottom edges.
	BearingX, BearingY int

	// UV is the glyph's region of the texture.
	UV uv.Rect
}

// Atlas is the result of a build.
type Atlas struct {
	// Width and Height are the texture dimensions in pixels.
	Width, Height int

	// Buffer holds the composited pixels.
	Buffer *composite.Buffer

	// Records holds one entry per placed glyph, sorted by codepoint.
	Records []GlyphRecord

	// Font holds the font-wide metrics.
	Font glyph.FontMetrics

	// Skipped lists characters that were left out of the layout, and
	// placed glyphs that contributed no pixels.
	Skipped []glyph.Skip

	// Plan is the shelf layout the atlas was built from.
	Plan *layout.Plan

	// Trace lists the characters of every shelf row.
	Trace *layout.Trace
}

// Image returns the texture as an image. It shares memory with Buffer
// when the channel count allows it.
func (a *Atlas) Image() image.Image {
	return a.Buffer.Image()
}

// Record returns the first record for codepoint r.
func (a *Atlas) Record(r rune) (GlyphRecord, bool) {
	i, ok := slices.BinarySearchFunc(a.Records, r, func(rec GlyphRecord, r rune) int {
		return cmp.Compare(rec.Codepoint, r)
	})
	if !ok {
		return GlyphRecord{}, false
	}
	return a.Records[i], true
}
