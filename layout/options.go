package layout

import (
	"math"

	"github.com/gogpu/msdfatlas/glyph"
)

// Options controls how font-unit boxes become atlas pixels.
type Options struct {
	// Scale converts font units to pixels.
	Scale float64

	// Padding is the space reserved around glyphs. Half of it is added to
	// each glyph's scaled width and height.
	Padding int

	// MaxWidth is the desired atlas width. It grows when a single glyph
	// does not fit.
	MaxWidth int

	// PowerOfTwoHeight rounds the atlas height with NextPowerOfTwo.
	PowerOfTwoHeight bool

	// Trace, when set, receives the characters placed on each row.
	Trace *Trace
}

// ScaledSize returns the pixel size of r without padding. This is the
// size the glyph bitmap is rendered at.
func (o Options) ScaledSize(r glyph.Rect) (w, h int) {
	return o.scale(r.Width()), o.scale(r.Height())
}

// PaddedSize returns the pixel size r occupies on a shelf.
func (o Options) PaddedSize(r glyph.Rect) (w, h int) {
	w, h = o.ScaledSize(r)
	return w + o.Padding/2, h + o.Padding/2
}

func (o Options) scale(units int) int {
	return int(math.Round(float64(units) * o.Scale))
}
