package composite

import (
	"image"

	"github.com/gogpu/msdfatlas/internal/logx"
	"github.com/gogpu/msdfatlas/parallel"
)

// Composite copies bitmaps[i] into buf at rects[i], running one worker per
// slice. A nil bitmap is skipped: its rectangle keeps the background.
//
// All views are built, and every bitmap is checked against its view,
// before any worker starts. Composite returns after every worker has
// finished.
func Composite(buf *Buffer, rects []image.Rectangle, bitmaps []*Bitmap, slices []parallel.Slice) error {
	if len(rects) != len(bitmaps) {
		return ErrLengthMismatch
	}

	for _, s := range slices {
		if s.Start < 0 || s.Count < 0 || s.End() > len(rects) {
			return ErrSliceRange
		}
	}

	views, err := buf.Views(rects)
	if err != nil {
		return err
	}
	for i, bm := range bitmaps {
		if bm == nil {
			continue
		}
		size := views[i].Size()
		if bm.Width != size.X || bm.Height != size.Y {
			return &SizeMismatchError{Index: i, View: size, Width: bm.Width, Height: bm.Height}
		}
	}

	log := logx.Logger()
	parallel.Run(slices, func(worker int, s parallel.Slice) {
		log.Debug("composite: worker started", "worker", worker, "start", s.Start, "count", s.Count)
		for i := s.Start; i < s.End(); i++ {
			if bitmaps[i] != nil {
				views[i].Draw(bitmaps[i])
			}
		}
	})
	return nil
}
