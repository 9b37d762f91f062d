package msdfatlas

import (
	"github.com/gogpu/msdfatlas/composite"
	"github.com/gogpu/msdfatlas/glyph"
	"github.com/gogpu/msdfatlas/layout"
)

// Font is the font introspection collaborator of a build.
//
// Implementations must be safe for concurrent calls to Outline: glyphs are
// rendered by several workers at once.
type Font interface {
	layout.MetricsSource

	// Outline returns the vector shape of a glyph. Glyphs without a shape
	// return an error wrapping glyph.ErrNoShape.
	Outline(id glyph.ID) (*glyph.Outline, error)

	// FontMetrics returns the font-wide metrics.
	FontMetrics() (glyph.FontMetrics, error)
}

// RenderParams is the projection and field setup for one glyph.
type RenderParams struct {
	// Scale converts font units to bitmap pixels.
	Scale float64

	// TranslateX and TranslateY are added to outline points, in font
	// units, before scaling. They move the glyph's bounding box to the
	// bitmap origin.
	TranslateX float64
	TranslateY float64

	// Range is the distance field range in pixels.
	Range float64

	// Angle is the corner angle threshold in radians.
	Angle float64

	Mode ColorMode

	// Channels is the number of samples per bitmap pixel.
	Channels int
}

// Renderer turns a glyph outline into a float bitmap of exactly
// width x height pixels. The y axis of the bitmap points down.
//
// Implementations must be safe for concurrent use.
type Renderer interface {
	Render(shape *glyph.Outline, width, height int, p RenderParams) (*composite.Bitmap, error)
}
