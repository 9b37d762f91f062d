package composite

// Bitmap is a rendered glyph: Width*Height pixels of Channels float
// samples each, row-major, top row first. Samples are expected in [0, 1].
type Bitmap struct {
	Pix      []float32
	Width    int
	Height   int
	Channels int
}

// NewBitmap allocates a zeroed bitmap.
func NewBitmap(width, height, channels int) *Bitmap {
	return &Bitmap{
		Pix:      make([]float32, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// PixOffset returns the index of the first sample of pixel (x, y).
func (b *Bitmap) PixOffset(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// At returns the samples of pixel (x, y). The slice aliases Pix.
func (b *Bitmap) At(x, y int) []float32 {
	i := b.PixOffset(x, y)
	return b.Pix[i : i+b.Channels : i+b.Channels]
}

// Set writes the samples of pixel (x, y). Extra values are ignored.
func (b *Bitmap) Set(x, y int, samples ...float32) {
	copy(b.At(x, y), samples)
}

// Quantize converts a float sample to a byte, clamping to [0, 1] first.
func Quantize(v float32) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
