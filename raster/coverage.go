// Package raster renders glyph outlines into float bitmaps for the atlas
// compositor.
package raster

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/msdfatlas"
	"github.com/gogpu/msdfatlas/composite"
	"github.com/gogpu/msdfatlas/glyph"
)

// Coverage is an anti-aliased outline rasterizer. It fills the glyph with
// the non-zero winding rule and writes the same coverage value into every
// channel, so the bitmap is usable as a plain alpha atlas whatever the
// requested color mode.
//
// Coverage holds no state and is safe for concurrent use.
type Coverage struct{}

// Render implements msdfatlas.Renderer.
//
// Outline points are projected with (p + translate) * scale and the y axis
// is flipped so the top row of the bitmap holds the top of the glyph.
func (Coverage) Render(shape *glyph.Outline, width, height int, p msdfatlas.RenderParams) (*composite.Bitmap, error) {
	if shape.IsEmpty() {
		return nil, glyph.ErrNoShape
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("raster: invalid bitmap size %dx%d", width, height)
	}
	channels := p.Channels
	if channels <= 0 {
		channels = 3
	}
	bm := composite.NewBitmap(width, height, channels)
	if width == 0 || height == 0 {
		return bm, nil
	}

	h := float32(height)
	project := func(pt glyph.Point) (float32, float32) {
		x := float32((pt.X + p.TranslateX) * p.Scale)
		y := float32((pt.Y + p.TranslateY) * p.Scale)
		return x, h - y
	}

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src
	open := false
	for _, seg := range shape.Segments {
		switch seg.Op {
		case glyph.OpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(project(seg.Args[0]))
			open = true
		case glyph.OpLineTo:
			z.LineTo(project(seg.Args[0]))
		case glyph.OpQuadTo:
			bx, by := project(seg.Args[0])
			cx, cy := project(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case glyph.OpCubeTo:
			bx, by := project(seg.Args[0])
			cx, cy := project(seg.Args[1])
			dx, dy := project(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := range height {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+width]
		for x, a := range row {
			px := bm.At(x, y)
			v := float32(a) / 255
			for c := range px {
				px[c] = v
			}
		}
	}
	return bm, nil
}
