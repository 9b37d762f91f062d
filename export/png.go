package export

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/msdfatlas/composite"
)

// ErrEmptyImage is returned when encoding a buffer with no pixels.
var ErrEmptyImage = errors.New("export: empty image")

// WritePNG encodes buf as an 8-bit PNG. Three-channel buffers are written
// as opaque RGB, four-channel buffers as RGBA.
func WritePNG(w io.Writer, buf *composite.Buffer) error {
	if buf == nil || buf.Width == 0 || buf.Height == 0 {
		return ErrEmptyImage
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, buf.Image()); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// SavePNG writes buf to a PNG file at path.
func SavePNG(path string, buf *composite.Buffer) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close file: %w", cerr)
		}
	}()
	return WritePNG(f, buf)
}
