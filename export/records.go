package export

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/msdfatlas"
	"github.com/gogpu/msdfatlas/glyph"
	"github.com/gogpu/msdfatlas/uv"
)

// Blob format constants.
const (
	// Magic opens every record blob.
	Magic = "MSDA"

	// Version is the blob layout version written by WriteRecords.
	Version = 1

	// RecordStride is the size in bytes of one packed record.
	RecordStride = 40

	// maxRecords bounds the count ReadRecords accepts. It is far above the
	// number of codepoints in Unicode.
	maxRecords = 1 << 24
)

// Blob errors.
var (
	ErrBadMagic   = errors.New("export: not a glyph record blob")
	ErrBadVersion = errors.New("export: unsupported blob version")
	ErrBadStride  = errors.New("export: unexpected record stride")
)

// blobHeader is the fixed header of a record blob. All fields are
// little-endian.
type blobHeader struct {
	Magic   [4]byte
	Version uint32
	Count   uint32
	Stride  uint32

	Width, Height uint32

	UnitsPerEm int32
	Ascender   int32
	Descender  int32
	LineHeight int32
}

// blobRecord is one packed glyph. Its size is RecordStride.
type blobRecord struct {
	Unicode  int32
	Advance  float32
	Width    float32
	Height   float32
	BearingX float32
	BearingY float32
	UMin     float32
	VMin     float32
	UMax     float32
	VMax     float32
}

// RecordSet is the decoded content of a record blob.
type RecordSet struct {
	Width, Height int
	Font          glyph.FontMetrics
	Records       []msdfatlas.GlyphRecord
}

// WriteRecords packs the records of a into w: a header with the record
// count, stride, atlas size and font metrics, followed by the records in
// their order in a.
func WriteRecords(w io.Writer, a *msdfatlas.Atlas) error {
	if uint64(len(a.Records)) > maxRecords {
		return fmt.Errorf("export: too many records: %d", len(a.Records))
	}
	h := blobHeader{
		Version:    Version,
		Count:      uint32(len(a.Records)),
		Stride:     RecordStride,
		Width:      uint32(a.Width),
		Height:     uint32(a.Height),
		UnitsPerEm: int32(a.Font.UnitsPerEm),
		Ascender:   int32(a.Font.Ascender),
		Descender:  int32(a.Font.Descender),
		LineHeight: int32(a.Font.LineHeight),
	}
	copy(h.Magic[:], Magic)
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	recs := make([]blobRecord, len(a.Records))
	for i, r := range a.Records {
		recs[i] = blobRecord{
			Unicode:  r.Codepoint,
			Advance:  float32(r.Advance),
			Width:    float32(r.Width),
			Height:   float32(r.Height),
			BearingX: float32(r.BearingX),
			BearingY: float32(r.BearingY),
			UMin:     r.UV.UMin,
			VMin:     r.UV.VMin,
			UMax:     r.UV.UMax,
			VMax:     r.UV.VMax,
		}
	}
	if err := binary.Write(w, binary.LittleEndian, recs); err != nil {
		return fmt.Errorf("export: write records: %w", err)
	}
	return nil
}

// ReadRecords decodes a blob written by WriteRecords.
func ReadRecords(r io.Reader) (*RecordSet, error) {
	var h blobHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("export: read header: %w", err)
	}
	if string(h.Magic[:]) != Magic {
		return nil, ErrBadMagic
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, h.Version)
	}
	if h.Stride != RecordStride {
		return nil, fmt.Errorf("%w: %d", ErrBadStride, h.Stride)
	}

	if h.Count > maxRecords {
		return nil, fmt.Errorf("export: record count %d too large", h.Count)
	}
	recs := make([]blobRecord, h.Count)
	if err := binary.Read(r, binary.LittleEndian, recs); err != nil {
		return nil, fmt.Errorf("export: read records: %w", err)
	}

	set := &RecordSet{
		Width:  int(h.Width),
		Height: int(h.Height),
		Font: glyph.FontMetrics{
			UnitsPerEm: int(h.UnitsPerEm),
			Ascender:   int(h.Ascender),
			Descender:  int(h.Descender),
			LineHeight: int(h.LineHeight),
		},
		Records: make([]msdfatlas.GlyphRecord, len(recs)),
	}
	for i, b := range recs {
		set.Records[i] = msdfatlas.GlyphRecord{
			Codepoint: b.Unicode,
			Advance:   int(math.Round(float64(b.Advance))),
			Width:     int(math.Round(float64(b.Width))),
			Height:    int(math.Round(float64(b.Height))),
			BearingX:  int(math.Round(float64(b.BearingX))),
			BearingY:  int(math.Round(float64(b.BearingY))),
			UV:        uv.Rect{UMin: b.UMin, VMin: b.VMin, UMax: b.UMax, VMax: b.VMax},
		}
	}
	return set, nil
}
