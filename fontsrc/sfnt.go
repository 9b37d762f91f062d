package fontsrc

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/msdfatlas/glyph"
)

// SFNT is a font backed by golang.org/x/image/font/sfnt.
type SFNT struct {
	font *sfnt.Font

	// ppem makes one pixel equal one font unit, so the 26.6 values the
	// sfnt package returns are font units times 64.
	ppem fixed.Int26_6
}

// ParseSFNT parses a TrueType or OpenType font.
func ParseSFNT(data []byte) (*SFNT, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to parse font: %w", err)
	}
	return &SFNT{font: f, ppem: fixed.I(int(f.UnitsPerEm()))}, nil
}

// Name returns the font's family name, or "" if it has none.
func (s *SFNT) Name() string {
	name, err := s.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// GlyphMetrics implements layout.MetricsSource.
func (s *SFNT) GlyphMetrics(r rune) (glyph.Metrics, error) {
	var buf sfnt.Buffer

	idx, err := s.font.GlyphIndex(&buf, r)
	if err != nil {
		return glyph.Metrics{}, fmt.Errorf("fontsrc: %U: %w", r, err)
	}
	if idx == 0 {
		return glyph.Metrics{}, fmt.Errorf("fontsrc: %U: %w", r, glyph.ErrNoGlyph)
	}

	advance, err := s.font.GlyphAdvance(&buf, idx, s.ppem, font.HintingNone)
	if err != nil {
		return glyph.Metrics{}, fmt.Errorf("fontsrc: %U: %w: %w", r, glyph.ErrNoAdvance, err)
	}

	b, _, err := s.font.GlyphBounds(&buf, idx, s.ppem, font.HintingNone)
	if err != nil {
		return glyph.Metrics{}, fmt.Errorf("fontsrc: %U: %w", r, err)
	}

	// sfnt bounds have y pointing down.
	bounds := glyph.Rect{
		XMin: b.Min.X.Floor(),
		YMin: -b.Max.Y.Ceil(),
		XMax: b.Max.X.Ceil(),
		YMax: -b.Min.Y.Floor(),
	}
	if bounds.IsEmpty() {
		bounds = glyph.Rect{}
	}

	return glyph.Metrics{
		ID:          glyph.ID(idx),
		Advance:     advance.Round(),
		SideBearing: bounds.XMin,
		Bounds:      bounds,
	}, nil
}

// Outline returns the vector shape of glyph id. It returns an error
// wrapping glyph.ErrNoShape for glyphs without contours.
func (s *SFNT) Outline(id glyph.ID) (*glyph.Outline, error) {
	var buf sfnt.Buffer

	segments, err := s.font.LoadGlyph(&buf, sfnt.GlyphIndex(id), s.ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: glyph %d: %w", id, err)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("fontsrc: glyph %d: %w", id, glyph.ErrNoShape)
	}

	out := &glyph.Outline{
		ID:       id,
		Segments: make([]glyph.Segment, 0, len(segments)),
	}
	for _, seg := range segments {
		var outSeg glyph.Segment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			outSeg.Op = glyph.OpMoveTo
		case sfnt.SegmentOpLineTo:
			outSeg.Op = glyph.OpLineTo
		case sfnt.SegmentOpQuadTo:
			outSeg.Op = glyph.OpQuadTo
		case sfnt.SegmentOpCubeTo:
			outSeg.Op = glyph.OpCubeTo
		default:
			continue
		}
		for i, p := range seg.Args {
			outSeg.Args[i] = fixedToPoint(p)
		}
		out.Segments = append(out.Segments, outSeg)
	}
	return out, nil
}

// FontMetrics returns the font-wide metrics.
func (s *SFNT) FontMetrics() (glyph.FontMetrics, error) {
	if s.ppem == 0 {
		return glyph.FontMetrics{}, errors.New("fontsrc: font has zero units per em")
	}

	var buf sfnt.Buffer
	m, err := s.font.Metrics(&buf, s.ppem, font.HintingNone)
	if err != nil {
		return glyph.FontMetrics{}, fmt.Errorf("fontsrc: %w", err)
	}

	asc := m.Ascent.Round()
	desc := -m.Descent.Round()
	return glyph.FontMetrics{
		UnitsPerEm: s.ppem.Round(),
		Ascender:   asc,
		Descender:  desc,
		LineHeight: asc + desc,
	}, nil
}

// fixedToPoint converts a y-down 26.6 point to y-up font units.
func fixedToPoint(p fixed.Point26_6) glyph.Point {
	return glyph.Point{
		X: float64(p.X) / 64,
		Y: -float64(p.Y) / 64,
	}
}
