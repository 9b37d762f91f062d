package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/gogpu/msdfatlas"
)

// WriteCHeader emits a C header describing a: the atlas and font metrics
// as macros and the records as a constant array. Identifiers are prefixed
// with name in SCREAMING_SNAKE_CASE.
func WriteCHeader(w io.Writer, name string, a *msdfatlas.Atlas) error {
	id := strcase.ToScreamingSnake(name)
	if id == "" {
		id = "MSDF_ATLAS"
	}
	e := &errWriter{w: w}

	e.printf(headerGuard, id)
	e.printf(headerTypes)

	e.printf("#define %s_WIDTH %d\n", id, a.Width)
	e.printf("#define %s_HEIGHT %d\n", id, a.Height)
	e.printf("#define %s_UNITS_PER_EM %d\n", id, a.Font.UnitsPerEm)
	e.printf("#define %s_ASCENDER %d\n", id, a.Font.Ascender)
	e.printf("#define %s_DESCENDER %d\n", id, a.Font.Descender)
	e.printf("#define %s_LINE_HEIGHT %d\n", id, a.Font.LineHeight)
	e.printf("#define %s_GLYPH_COUNT %d\n\n", id, len(a.Records))

	e.printf("static const MSDFAtlasGlyph %s_GLYPHS[%d] = {\n", id, max(len(a.Records), 1))
	for _, r := range a.Records {
		e.printf("    {%d, %d, %d, %d, %d, %d, %s, %s, %s, %s}, // %s\n",
			r.Codepoint, r.Advance, r.Width, r.Height, r.BearingX, r.BearingY,
			cFloat(r.UV.UMin), cFloat(r.UV.VMin), cFloat(r.UV.UMax), cFloat(r.UV.VMax),
			charComment(r.Codepoint),
		)
	}
	if len(a.Records) == 0 {
		e.printf("    {0},\n")
	}
	e.printf("};\n\n#endif\n")
	return e.err
}

// charComment shows printable ASCII next to its codepoint. A backslash
// would splice the next line into the comment.
func charComment(r rune) string {
	if r < unicode.MaxASCII && unicode.IsPrint(r) && r != '\\' {
		return fmt.Sprintf("U+%04X '%c'", r, r)
	}
	return fmt.Sprintf("U+%04X", r)
}

// cFloat formats v as a C float literal with the shortest exact digits.
func cFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s + "f"
}

// errWriter keeps the first write error so emission code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

const headerGuard = `#ifndef _%s_H_
#define _%[1]s_H_
`

const headerTypes = `
#include <stdint.h>

#ifndef _MSDF_ATLAS_TYPES_
#define _MSDF_ATLAS_TYPES_

typedef struct MSDFAtlasGlyph {
  int32_t unicode;
  int32_t advance;
  int32_t width;
  int32_t height;
  int32_t bearingX;
  int32_t bearingY;
  float uMin;
  float vMin;
  float uMax;
  float vMax;
} MSDFAtlasGlyph;

#endif

`
