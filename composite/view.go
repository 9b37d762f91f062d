package composite

import "image"

// View is a window onto a Buffer. Coordinates passed to a view are local:
// (0, 0) is the top-left of its rectangle.
type View struct {
	buf  *Buffer
	rect image.Rectangle
}

// Bounds returns the view's rectangle in buffer coordinates.
func (v View) Bounds() image.Rectangle {
	return v.rect
}

// Size returns the view's width and height.
func (v View) Size() image.Point {
	return v.rect.Size()
}

// Set quantizes samples into pixel (x, y) of the view. Samples beyond the
// buffer's channel count are dropped and a single sample fills every color
// channel. When the buffer has an alpha channel that the samples do not
// cover, alpha is written as opaque.
func (v View) Set(x, y int, samples []float32) {
	b := v.buf
	i := b.PixOffset(v.rect.Min.X+x, v.rect.Min.Y+y)
	px := b.Pix[i : i+b.Channels : i+b.Channels]

	n := min(len(samples), len(px))
	if len(samples) == 1 {
		n = colorChannels(len(px))
		q := Quantize(samples[0])
		for c := range n {
			px[c] = q
		}
	} else {
		for c := range n {
			px[c] = Quantize(samples[c])
		}
	}
	if (len(px) == 4 || len(px) == 2) && n < len(px) {
		px[len(px)-1] = 255
	}
}

// Draw copies src into the view. The sizes must match.
func (v View) Draw(src *Bitmap) {
	size := v.Size()
	for y := range size.Y {
		for x := range size.X {
			v.Set(x, y, src.At(x, y))
		}
	}
}

// colorChannels returns how many leading channels carry color.
func colorChannels(channels int) int {
	if channels >= 3 {
		return 3
	}
	return 1
}
