package uv

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"
)

func TestMap(t *testing.T) {
	r := image.Rect(128, 64, 256, 128)
	tests := []struct {
		space Space
		want  Rect
	}{
		{Default, Rect{UMin: 0.25, VMin: 0.25, UMax: 0.5, VMax: 0.5}},
		{OneMinusU, Rect{UMin: 0.5, VMin: 0.25, UMax: 0.75, VMax: 0.5}},
		{OneMinusV, Rect{UMin: 0.25, VMin: 0.5, UMax: 0.5, VMax: 0.75}},
		{OneMinusU | OneMinusV, Rect{UMin: 0.5, VMin: 0.5, UMax: 0.75, VMax: 0.75}},
	}
	for _, tt := range tests {
		t.Run(tt.space.String(), func(t *testing.T) {
			if got := Map(r, 512, 256, tt.space); got != tt.want {
				t.Errorf("Map(%v) = %+v, want %+v", r, got, tt.want)
			}
		})
	}
}

func TestMap_Clamps(t *testing.T) {
	got := Map(image.Rect(-10, 0, 600, 300), 512, 256, Default)
	want := Rect{UMin: 0, VMin: 0, UMax: 1, VMax: 1}
	if got != want {
		t.Errorf("Map = %+v, want %+v", got, want)
	}
	if got := Map(image.Rect(0, 0, 1, 1), 0, 0, Default); got != (Rect{}) {
		t.Errorf("Map with zero atlas = %+v, want zero", got)
	}
}

func TestMap_MinNotAboveMax(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for range 1000 {
		x0, y0 := rng.IntN(512), rng.IntN(256)
		r := image.Rect(x0, y0, x0+rng.IntN(512-x0+1), y0+rng.IntN(256-y0+1))
		space := Space(rng.IntN(4))
		uv := Map(r, 512, 256, space)
		if uv.UMin > uv.UMax || uv.VMin > uv.VMax {
			t.Fatalf("Map(%v, %v) = %+v has min above max", r, space, uv)
		}
	}
}

func TestUnmap_RoundTrip(t *testing.T) {
	const eps = 1e-2
	rng := rand.New(rand.NewPCG(9, 9))
	for range 1000 {
		w, h := 1+rng.IntN(4096), 1+rng.IntN(4096)
		x0, y0 := rng.IntN(w), rng.IntN(h)
		r := image.Rect(x0, y0, x0+rng.IntN(w-x0+1), y0+rng.IntN(h-y0+1))
		space := Space(rng.IntN(4))

		minX, minY, maxX, maxY := Unmap(Map(r, w, h, space), w, h, space)
		if math.Abs(minX-float64(r.Min.X)) > eps || math.Abs(minY-float64(r.Min.Y)) > eps ||
			math.Abs(maxX-float64(r.Max.X)) > eps || math.Abs(maxY-float64(r.Max.Y)) > eps {
			t.Fatalf("round trip of %v in %dx%d %v gave (%g,%g)-(%g,%g)", r, w, h, space, minX, minY, maxX, maxY)
		}
	}
}

func TestSpaceHas(t *testing.T) {
	s := OneMinusU | OneMinusV
	if !s.Has(OneMinusU) || !s.Has(OneMinusV) {
		t.Error("combined space should have both flags")
	}
	if Default.Has(OneMinusU) {
		t.Error("Default should not have OneMinusU")
	}
	if got := Space(8).String(); got != "Space(invalid)" {
		t.Errorf("Space(8).String() = %q", got)
	}
}
