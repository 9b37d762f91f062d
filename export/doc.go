// Package export writes a built atlas to files: the texture as PNG, the
// glyph records as a fixed-stride binary blob, and both the dimensions and
// records as a C header.
package export
