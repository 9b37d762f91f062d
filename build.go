package msdfatlas

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/msdfatlas/composite"
	"github.com/gogpu/msdfatlas/glyph"
	"github.com/gogpu/msdfatlas/internal/logx"
	"github.com/gogpu/msdfatlas/layout"
	"github.com/gogpu/msdfatlas/parallel"
	"github.com/gogpu/msdfatlas/uv"
)

// Build packs chars into an atlas.
//
// Characters f cannot resolve are skipped and reported in Atlas.Skipped.
// Glyphs whose outline or rendering fails keep their layout space and
// their record, and are reported too. Duplicate characters are packed
// once per occurrence; use Charset to deduplicate.
//
// Build fails with ErrNoGlyphs when no character resolves, with a
// *ConfigError for an invalid cfg, and with a composite error when a
// renderer returns a bitmap of the wrong size.
func Build(f Font, r Renderer, chars []rune, cfg Config) (*Atlas, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if r == nil {
		return nil, ErrNilRenderer
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logx.Logger()

	trace := &layout.Trace{}
	opts := layout.Options{
		Scale:            cfg.Scale,
		Padding:          cfg.Padding,
		MaxWidth:         cfg.MaxWidth,
		PowerOfTwoHeight: cfg.PowerOfTwoHeight,
		Trace:            trace,
	}

	boxes, skipped := layout.Rank(chars, f, opts)
	if len(boxes) == 0 {
		return nil, fmt.Errorf("%w: none of %d characters resolved", ErrNoGlyphs, len(chars))
	}

	fm, err := f.FontMetrics()
	if err != nil {
		return nil, fmt.Errorf("msdfatlas: font metrics: %w", err)
	}

	plan := layout.NewPlan(boxes, opts)
	buf, err := composite.NewBuffer(plan.Width, plan.Height, cfg.Channels)
	if err != nil {
		return nil, fmt.Errorf("msdfatlas: %w", err)
	}

	work := parallel.Partition(plan.Len(), cfg.Threads)
	log.Debug("msdfatlas: partitioned workload", "glyphs", plan.Len(), "workers", len(work))

	bitmaps, failed := render(f, r, plan, cfg, work)
	for _, s := range failed {
		log.Debug("msdfatlas: glyph not rendered", "char", string(s.Codepoint), "codepoint", int(s.Codepoint), "reason", s.Reason)
	}
	skipped = append(skipped, failed...)

	if err := composite.Composite(buf, plan.Rects(), bitmaps, work); err != nil {
		return nil, fmt.Errorf("msdfatlas: %w", err)
	}

	records := make([]GlyphRecord, plan.Len())
	for i, p := range plan.Placements {
		b := p.Box.Bounds
		records[i] = GlyphRecord{
			Codepoint: p.Box.Codepoint,
			Advance:   p.Box.Advance,
			Width:     b.Width(),
			Height:    b.Height(),
			BearingX:  p.Box.SideBearing,
			BearingY:  b.YMax + b.YMin,
			UV:        uv.Map(p.Rect(), plan.Width, plan.Height, cfg.UVSpace),
		}
	}
	slices.SortStableFunc(records, func(a, b GlyphRecord) int {
		return cmp.Compare(a.Codepoint, b.Codepoint)
	})

	log.Info("msdfatlas: built atlas",
		"width", plan.Width, "height", plan.Height,
		"glyphs", len(records), "skipped", len(skipped))

	return &Atlas{
		Width:   plan.Width,
		Height:  plan.Height,
		Buffer:  buf,
		Records: records,
		Font:    fm,
		Skipped: skipped,
		Plan:    plan,
		Trace:   trace,
	}, nil
}

// render produces the bitmap of every placement. Workers write only their
// own indices of the result slices, so no locking is needed.
func render(f Font, r Renderer, plan *layout.Plan, cfg Config, work []parallel.Slice) ([]*composite.Bitmap, []glyph.Skip) {
	bitmaps := make([]*composite.Bitmap, plan.Len())
	errs := make([]error, plan.Len())

	parallel.Run(work, func(_ int, s parallel.Slice) {
		for i := s.Start; i < s.End(); i++ {
			bitmaps[i], errs[i] = renderOne(f, r, plan.Placements[i], cfg)
		}
	})

	var failed []glyph.Skip
	for i, err := range errs {
		if err != nil {
			failed = append(failed, glyph.Skip{Codepoint: plan.Placements[i].Box.Codepoint, Reason: err})
		}
	}
	return bitmaps, failed
}

func renderOne(f Font, r Renderer, p layout.Placement, cfg Config) (*composite.Bitmap, error) {
	// Blank glyphs such as space reserve no pixels and have nothing to draw.
	if p.Width == 0 || p.Height == 0 {
		return nil, nil
	}

	shape, err := f.Outline(p.Box.ID)
	if err != nil {
		return nil, err
	}
	if shape.IsEmpty() {
		return nil, glyph.ErrNoShape
	}

	params := RenderParams{
		Scale:      cfg.Scale,
		TranslateX: -float64(p.Box.Bounds.XMin),
		TranslateY: -float64(p.Box.Bounds.YMin),
		Range:      cfg.Range,
		Angle:      cfg.Angle * math.Pi / 180,
		Mode:       cfg.ColorMode,
		Channels:   3,
	}
	bm, err := r.Render(shape, p.Width, p.Height, params)
	if err != nil {
		return nil, err
	}
	if bm == nil {
		return nil, errors.New("msdfatlas: renderer returned no bitmap")
	}
	return bm, nil
}
