// Package uv converts atlas pixel rectangles to normalized texture
// coordinates.
package uv

import "image"

// Space selects the texture coordinate convention. Flags combine freely;
// the zero value maps pixels to UVs with the origin at the top-left.
type Space uint32

// Coordinate space flags.
const (
	Default Space = 0

	// OneMinusU mirrors the horizontal axis: u becomes 1 - u.
	OneMinusU Space = 1 << 0

	// OneMinusV mirrors the vertical axis: v becomes 1 - v. Use it for
	// graphics APIs with a bottom-left texture origin.
	OneMinusV Space = 1 << 1
)

// Has reports whether every flag in f is set in s.
func (s Space) Has(f Space) bool {
	return s&f == f
}

// String returns the flag names joined by "|".
func (s Space) String() string {
	switch s {
	case Default:
		return "Default"
	case OneMinusU:
		return "OneMinusU"
	case OneMinusV:
		return "OneMinusV"
	case OneMinusU | OneMinusV:
		return "OneMinusU|OneMinusV"
	default:
		return "Space(invalid)"
	}
}

// Rect is a region in texture space. Min is never greater than Max on
// either axis, whatever the flags.
type Rect struct {
	UMin, VMin float32
	UMax, VMax float32
}

// Map converts r, in pixels of an atlas of the given size, to texture
// coordinates in s. Each coordinate is divided by the atlas size and
// clamped to [0, 1]. A mirrored axis maps its min from 1 - max and its
// max from 1 - min.
func Map(r image.Rectangle, width, height int, s Space) Rect {
	uMin := normalize(r.Min.X, width)
	uMax := normalize(r.Max.X, width)
	vMin := normalize(r.Min.Y, height)
	vMax := normalize(r.Max.Y, height)

	if s.Has(OneMinusU) {
		uMin, uMax = 1-uMax, 1-uMin
	}
	if s.Has(OneMinusV) {
		vMin, vMax = 1-vMax, 1-vMin
	}
	return Rect{UMin: uMin, VMin: vMin, UMax: uMax, VMax: vMax}
}

// Unmap reverses Map for rectangles inside the atlas, returning pixel
// coordinates as floats.
func Unmap(uv Rect, width, height int, s Space) (minX, minY, maxX, maxY float64) {
	uMin, uMax := uv.UMin, uv.UMax
	vMin, vMax := uv.VMin, uv.VMax
	if s.Has(OneMinusU) {
		uMin, uMax = 1-uMax, 1-uMin
	}
	if s.Has(OneMinusV) {
		vMin, vMax = 1-vMax, 1-vMin
	}
	w, h := float64(width), float64(height)
	return float64(uMin) * w, float64(vMin) * h, float64(uMax) * w, float64(vMax) * h
}

func normalize(v, size int) float32 {
	if size <= 0 {
		return 0
	}
	return min(max(float32(v)/float32(size), 0), 1)
}
