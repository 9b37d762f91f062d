package composite

import (
	"image"
	"image/color"
	"slices"
)

// Buffer is the shared atlas: Width*Height pixels of Channels bytes each,
// row-major, top row first. The zero byte is the background.
//
// Thread safety: a Buffer is written concurrently only through views
// obtained from one Views call.
type Buffer struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
	Stride   int
}

// NewBuffer allocates a cleared buffer. Channels must be 1 to 4.
func NewBuffer(width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 || channels < 1 || channels > 4 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		Pix:      make([]uint8, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
		Stride:   width * channels,
	}, nil
}

// Bounds returns the buffer rectangle.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return y*b.Stride + x*b.Channels
}

// Bytes returns the buffer as a flat byte slice.
func (b *Buffer) Bytes() []byte {
	return b.Pix
}

// Image returns the buffer as an image for encoding. One channel is
// grayscale, two are gray plus alpha, three are RGB with opaque alpha and
// four are non-premultiplied RGBA. Gray and RGBA images share Pix.
func (b *Buffer) Image() image.Image {
	switch b.Channels {
	case 1:
		return &image.Gray{Pix: b.Pix, Stride: b.Stride, Rect: b.Bounds()}
	case 4:
		return &image.NRGBA{Pix: b.Pix, Stride: b.Stride, Rect: b.Bounds()}
	}

	img := image.NewNRGBA(b.Bounds())
	for y := range b.Height {
		for x := range b.Width {
			px := b.Pix[b.PixOffset(x, y):]
			c := color.NRGBA{A: 255}
			if b.Channels == 2 {
				c = color.NRGBA{R: px[0], G: px[0], B: px[0], A: px[1]}
			} else {
				c.R, c.G, c.B = px[0], px[1], px[2]
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Views returns one view per rectangle. It fails if any rectangle leaves
// the buffer or if any two rectangles overlap; empty rectangles are
// allowed and never overlap anything.
func (b *Buffer) Views(rects []image.Rectangle) ([]View, error) {
	bounds := b.Bounds()
	for _, r := range rects {
		if !r.Empty() && !r.In(bounds) {
			return nil, ErrOutOfBounds
		}
	}
	if err := checkDisjoint(rects); err != nil {
		return nil, err
	}

	views := make([]View, len(rects))
	for i, r := range rects {
		views[i] = View{buf: b, rect: r}
	}
	return views, nil
}

// checkDisjoint sweeps the rectangles top to bottom and compares each one
// only with those that start above its bottom edge.
func checkDisjoint(rects []image.Rectangle) error {
	order := make([]int, 0, len(rects))
	for i, r := range rects {
		if !r.Empty() {
			order = append(order, i)
		}
	}
	slices.SortFunc(order, func(a, b int) int {
		return rects[a].Min.Y - rects[b].Min.Y
	})

	for n, i := range order {
		ri := rects[i]
		for _, j := range order[n+1:] {
			rj := rects[j]
			if rj.Min.Y >= ri.Max.Y {
				break
			}
			if ri.Overlaps(rj) {
				a, b := min(i, j), max(i, j)
				return &OverlapError{A: a, B: b, RectA: rects[a], RectB: rects[b]}
			}
		}
	}
	return nil
}
