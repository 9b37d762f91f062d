package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/msdfatlas"
	"github.com/gogpu/msdfatlas/composite"
	"github.com/gogpu/msdfatlas/glyph"
	"github.com/gogpu/msdfatlas/uv"
)

func testAtlas(t *testing.T, channels int) *msdfatlas.Atlas {
	t.Helper()
	buf, err := composite.NewBuffer(4, 2, channels)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	copy(buf.Pix[buf.PixOffset(1, 0):], []uint8{10, 20, 30, 255}[:channels])
	return &msdfatlas.Atlas{
		Width:  4,
		Height: 2,
		Buffer: buf,
		Font:   glyph.FontMetrics{UnitsPerEm: 2048, Ascender: 1854, Descender: -434, LineHeight: 1420},
		Records: []msdfatlas.GlyphRecord{
			{Codepoint: 'A', Advance: 1255, Width: 1251, Height: 1409, BearingX: 2, BearingY: 1409, UV: uv.Rect{UMin: 0, VMin: 0, UMax: 0.25, VMax: 0.5}},
			{Codepoint: 'g', Advance: 1118, Width: 936, Height: 1482, BearingX: 90, BearingY: 623, UV: uv.Rect{UMin: 0.25, VMin: 0.5, UMax: 0.75, VMax: 1}},
		},
	}
}

func TestRecords_RoundTrip(t *testing.T) {
	a := testAtlas(t, 3)
	var buf bytes.Buffer
	if err := WriteRecords(&buf, a); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}
	want := binary.Size(blobHeader{}) + RecordStride*len(a.Records)
	if buf.Len() != want {
		t.Errorf("blob is %d bytes, want %d", buf.Len(), want)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte(Magic)) {
		t.Errorf("blob does not start with %q", Magic)
	}

	set, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if set.Width != 4 || set.Height != 2 {
		t.Errorf("size = %dx%d, want 4x2", set.Width, set.Height)
	}
	if diff := cmp.Diff(a.Font, set.Font); diff != "" {
		t.Errorf("font metrics mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a.Records, set.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordStride(t *testing.T) {
	if got := binary.Size(blobRecord{}); got != RecordStride {
		t.Errorf("binary.Size(blobRecord) = %d, want %d", got, RecordStride)
	}
}

func TestReadRecords_Errors(t *testing.T) {
	var good bytes.Buffer
	if err := WriteRecords(&good, testAtlas(t, 3)); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	corrupt := func(off int, b byte) []byte {
		data := bytes.Clone(good.Bytes())
		data[off] = b
		return data
	}
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"magic", corrupt(0, 'X'), ErrBadMagic},
		{"version", corrupt(4, 9), ErrBadVersion},
		{"stride", corrupt(12, 41), ErrBadStride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadRecords(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("ReadRecords error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ReadRecords(bytes.NewReader(good.Bytes()[:good.Len()-1])); err == nil {
		t.Error("truncated blob accepted")
	}
}

func TestWritePNG(t *testing.T) {
	for _, channels := range []int{3, 4} {
		a := testAtlas(t, channels)
		var buf bytes.Buffer
		if err := WritePNG(&buf, a.Buffer); err != nil {
			t.Fatalf("channels=%d: WritePNG: %v", channels, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("channels=%d: decode: %v", channels, err)
		}
		if img.Bounds() != image.Rect(0, 0, 4, 2) {
			t.Errorf("channels=%d: bounds = %v", channels, img.Bounds())
		}
		r, g, b, _ := img.At(1, 0).RGBA()
		if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
			t.Errorf("channels=%d: pixel = (%d,%d,%d), want (10,20,30)", channels, r>>8, g>>8, b>>8)
		}
	}
}

func TestWritePNG_Empty(t *testing.T) {
	if err := WritePNG(&bytes.Buffer{}, nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("WritePNG(nil) = %v, want ErrEmptyImage", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.png")
	if err := SavePNG(path, testAtlas(t, 3).Buffer); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "atlas.png"), testAtlas(t, 3).Buffer); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}

func TestWriteCHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCHeader(&buf, "Go Regular", testAtlas(t, 3)); err != nil {
		t.Fatalf("WriteCHeader: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"#ifndef _GO_REGULAR_H_",
		"#define GO_REGULAR_WIDTH 4\n",
		"#define GO_REGULAR_LINE_HEIGHT 1420\n",
		"#define GO_REGULAR_GLYPH_COUNT 2\n",
		"static const MSDFAtlasGlyph GO_REGULAR_GLYPHS[2] = {",
		"{65, 1255, 1251, 1409, 2, 1409, 0.0f, 0.0f, 0.25f, 0.5f}, // U+0041 'A'",
		"{103, 1118, 936, 1482, 90, 623, 0.25f, 0.5f, 0.75f, 1.0f}, // U+0067 'g'",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "#endif\n") {
		t.Error("header does not close its include guard")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCHeader_WriteError(t *testing.T) {
	if err := WriteCHeader(failWriter{}, "x", testAtlas(t, 3)); err == nil {
		t.Error("write error was dropped")
	}
}

func TestCharComment(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'a', "U+0061 'a'"},
		{'\\', "U+005C"},
		{'\n', "U+000A"},
		{'\u00e9', "U+00E9"},
	}
	for _, tt := range tests {
		if got := charComment(tt.r); got != tt.want {
			t.Errorf("charComment(%U) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
