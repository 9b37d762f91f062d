package fontsrc

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/msdfatlas/glyph"
)

// GoText is a font backed by github.com/go-text/typesetting.
//
// font.Face keeps per-face state, so every query holds mu.
type GoText struct {
	mu   sync.Mutex
	face *font.Face
}

// ParseGoText parses a TrueType or OpenType font.
func ParseGoText(data []byte) (*GoText, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to parse font: %w", err)
	}
	return &GoText{face: face}, nil
}

// GlyphMetrics implements layout.MetricsSource.
func (g *GoText) GlyphMetrics(r rune) (glyph.Metrics, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	gid, ok := g.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return glyph.Metrics{}, fmt.Errorf("fontsrc: %U: %w", r, glyph.ErrNoGlyph)
	}
	if gid > math.MaxUint16 {
		return glyph.Metrics{}, fmt.Errorf("fontsrc: %U: glyph index %d out of range: %w", r, gid, glyph.ErrNoGlyph)
	}

	advance := g.face.HorizontalAdvance(gid)

	var bounds glyph.Rect
	if ext, ok := g.face.GlyphExtents(gid); ok && ext.Width != 0 && ext.Height != 0 {
		// Extents are y-up with the origin at the top-left corner, so
		// Height is negative.
		x0, x1 := float64(ext.XBearing), float64(ext.XBearing+ext.Width)
		y0, y1 := float64(ext.YBearing+ext.Height), float64(ext.YBearing)
		bounds = glyph.Rect{
			XMin: int(math.Floor(min(x0, x1))),
			YMin: int(math.Floor(min(y0, y1))),
			XMax: int(math.Ceil(max(x0, x1))),
			YMax: int(math.Ceil(max(y0, y1))),
		}
	}

	return glyph.Metrics{
		ID:          glyph.ID(gid),
		Advance:     int(math.Round(float64(advance))),
		SideBearing: bounds.XMin,
		Bounds:      bounds,
	}, nil
}

// Outline returns the vector shape of glyph id. Bitmap and SVG glyphs
// report glyph.ErrNoShape.
func (g *GoText) Outline(id glyph.ID) (*glyph.Outline, error) {
	g.mu.Lock()
	data := g.face.GlyphData(font.GID(id))
	g.mu.Unlock()

	outline, ok := data.(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return nil, fmt.Errorf("fontsrc: glyph %d: %w", id, glyph.ErrNoShape)
	}

	out := &glyph.Outline{
		ID:       id,
		Segments: make([]glyph.Segment, 0, len(outline.Segments)),
	}
	for _, seg := range outline.Segments {
		var outSeg glyph.Segment
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			outSeg.Op = glyph.OpMoveTo
		case opentype.SegmentOpLineTo:
			outSeg.Op = glyph.OpLineTo
		case opentype.SegmentOpQuadTo:
			outSeg.Op = glyph.OpQuadTo
		case opentype.SegmentOpCubeTo:
			outSeg.Op = glyph.OpCubeTo
		default:
			continue
		}
		for i, p := range seg.Args {
			outSeg.Args[i] = glyph.Point{X: float64(p.X), Y: float64(p.Y)}
		}
		out.Segments = append(out.Segments, outSeg)
	}
	return out, nil
}

// FontMetrics returns the font-wide metrics.
func (g *GoText) FontMetrics() (glyph.FontMetrics, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ext, ok := g.face.FontHExtents()
	if !ok {
		return glyph.FontMetrics{}, fmt.Errorf("fontsrc: font has no horizontal extents")
	}
	asc := int(math.Round(float64(ext.Ascender)))
	desc := int(math.Round(float64(ext.Descender)))
	return glyph.FontMetrics{
		UnitsPerEm: int(g.face.Upem()),
		Ascender:   asc,
		Descender:  desc,
		LineHeight: asc + desc,
	}, nil
}
