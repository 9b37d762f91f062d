package layout

import (
	"cmp"
	"slices"

	"github.com/gogpu/msdfatlas/glyph"
	"github.com/gogpu/msdfatlas/internal/logx"
)

// MetricsSource resolves a codepoint to its glyph metrics.
//
// Implementations return an error wrapping glyph.ErrNoGlyph when the font
// has no glyph for r, and glyph.ErrNoAdvance when the glyph lacks a
// horizontal advance.
type MetricsSource interface {
	GlyphMetrics(r rune) (glyph.Metrics, error)
}

// Rank resolves chars through src and returns their boxes in packing
// order, together with the characters that could not be resolved.
//
// Boxes are grouped by identical padded height (see Options.PaddedSize),
// groups are ordered tallest first, and within a group boxes are ordered
// by area, largest first. Equal areas keep their order in chars.
func Rank(chars []rune, src MetricsSource, opts Options) ([]glyph.Box, []glyph.Skip) {
	log := logx.Logger()

	buckets := make(map[int][]glyph.Box)
	heights := make([]int, 0, 8)
	var skipped []glyph.Skip

	for _, c := range chars {
		m, err := src.GlyphMetrics(c)
		if err != nil {
			log.Debug("layout: skipped codepoint", "char", string(c), "codepoint", int(c), "reason", err)
			skipped = append(skipped, glyph.Skip{Codepoint: c, Reason: err})
			continue
		}

		box := glyph.Box{
			Codepoint:   c,
			ID:          m.ID,
			Bounds:      m.Bounds,
			Advance:     m.Advance,
			SideBearing: m.SideBearing,
		}
		_, h := opts.PaddedSize(m.Bounds)
		if _, ok := buckets[h]; !ok {
			heights = append(heights, h)
		}
		buckets[h] = append(buckets[h], box)
	}

	slices.SortFunc(heights, func(a, b int) int { return cmp.Compare(b, a) })

	ranked := make([]glyph.Box, 0, len(chars)-len(skipped))
	for _, h := range heights {
		bucket := buckets[h]
		slices.SortStableFunc(bucket, func(a, b glyph.Box) int {
			return cmp.Compare(b.Bounds.Area(), a.Bounds.Area())
		})
		ranked = append(ranked, bucket...)
	}

	log.Debug("layout: ranked glyphs", "count", len(ranked), "rows", len(heights), "skipped", len(skipped))
	return ranked, skipped
}
