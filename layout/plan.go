package layout

import (
	"image"

	"github.com/gogpu/msdfatlas/glyph"
	"github.com/gogpu/msdfatlas/internal/logx"
)

// Placement is one glyph's reserved rectangle in the atlas.
type Placement struct {
	Box glyph.Box

	// X, Y is the top-left corner in atlas pixels.
	X, Y int

	// Width and Height are the scaled size without padding, which is the
	// size of the glyph's bitmap.
	Width, Height int

	// Row is the shelf index.
	Row int
}

// Rect returns the placement as a pixel rectangle.
func (p Placement) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Plan is the result of shelf packing.
type Plan struct {
	// Width and Height are the atlas dimensions in pixels.
	Width, Height int

	// Placements follow the ranked order passed to NewPlan.
	Placements []Placement

	// RowHeights holds the padded height of every shelf, top to bottom.
	RowHeights []int
}

// Len returns the number of placed glyphs.
func (p *Plan) Len() int {
	return len(p.Placements)
}

// IsEmpty reports whether nothing was placed.
func (p *Plan) IsEmpty() bool {
	return len(p.Placements) == 0
}

// Rects returns the rectangle of every placement, in order.
func (p *Plan) Rects() []image.Rectangle {
	rects := make([]image.Rectangle, len(p.Placements))
	for i, pl := range p.Placements {
		rects[i] = pl.Rect()
	}
	return rects
}

// NewPlan places ranked boxes on shelves.
//
// The atlas width starts at opts.MaxWidth. Any glyph whose padded width
// reaches the current width grows it to NextPowerOfTwo of that padded
// width; the widest glyph wins. Glyphs are then placed left to right and
// a new row opens when x + paddedWidth >= width. A row is as tall as its
// tallest padded glyph, which for ranked input is its first glyph.
//
// An empty input yields an empty plan with zero dimensions.
func NewPlan(boxes []glyph.Box, opts Options) *Plan {
	if len(boxes) == 0 {
		return &Plan{}
	}
	log := logx.Logger()

	width := bestFitWidth(boxes, opts)
	plan := &Plan{
		Width:      width,
		Placements: make([]Placement, 0, len(boxes)),
		RowHeights: make([]int, 0, 8),
	}

	x, y := 0, 0
	row, rowHeight := 0, 0
	for _, box := range boxes {
		pw, ph := opts.PaddedSize(box.Bounds)
		if x > 0 && x+pw >= width {
			log.Debug("layout: row closed", "row", row, "width", x, "height", rowHeight, "chars", opts.Trace.Row(row))
			plan.RowHeights = append(plan.RowHeights, rowHeight)
			y += rowHeight
			row++
			x, rowHeight = 0, 0
		}

		w, h := opts.ScaledSize(box.Bounds)
		plan.Placements = append(plan.Placements, Placement{
			Box:    box,
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
			Row:    row,
		})
		opts.Trace.place(row, box.Codepoint)

		rowHeight = max(rowHeight, ph)
		x += pw
	}

	// The last row never wrapped; fold its height in.
	log.Debug("layout: row closed", "row", row, "width", x, "height", rowHeight, "chars", opts.Trace.Row(row))
	plan.RowHeights = append(plan.RowHeights, rowHeight)
	y += rowHeight

	plan.Height = y
	if opts.PowerOfTwoHeight {
		plan.Height = NextPowerOfTwo(y)
		log.Debug("layout: rounded atlas height", "from", y, "to", plan.Height)
	}
	return plan
}

// bestFitWidth grows the desired width for glyphs that cannot fit on an
// empty row.
func bestFitWidth(boxes []glyph.Box, opts Options) int {
	width := opts.MaxWidth
	for _, box := range boxes {
		pw, _ := opts.PaddedSize(box.Bounds)
		if pw >= width {
			grown := NextPowerOfTwo(pw)
			logx.Logger().Debug("layout: grew atlas width", "from", width, "to", grown, "char", string(box.Codepoint))
			width = grown
		}
	}
	return width
}
