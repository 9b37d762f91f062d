package msdfatlas

import (
	"fmt"
	"math"

	"github.com/gogpu/msdfatlas/uv"
)

// ColorMode selects how a renderer assigns edge colors to channels.
type ColorMode uint8

// Color modes.
const (
	// ColorSimple assigns colors by corner angle only.
	ColorSimple ColorMode = iota

	// ColorInkTrap gives special treatment to small corners such as ink
	// traps.
	ColorInkTrap

	// ColorDistance colors edges by their distance to each other.
	ColorDistance
)

// String returns the lowercase name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorSimple:
		return "simple"
	case ColorInkTrap:
		return "inktrap"
	case ColorDistance:
		return "distance"
	default:
		return fmt.Sprintf("ColorMode(%d)", m)
	}
}

// ParseColorMode returns the mode named s, as printed by String.
func ParseColorMode(s string) (ColorMode, error) {
	for m := ColorSimple; m <= ColorDistance; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, &ConfigError{Field: "ColorMode", Reason: fmt.Sprintf("unknown mode %q", s)}
}

// Config holds the parameters of an atlas build.
type Config struct {
	// Scale converts font units to atlas pixels.
	Scale float64

	// Padding is the space reserved around every glyph, in pixels. Half of
	// it is added to the glyph's width and height on its shelf.
	Padding int

	// MaxWidth is the desired atlas width in pixels. A glyph too wide for
	// it grows the width to the next power of two above that glyph.
	MaxWidth int

	// Range is the distance field range passed to the renderer, in pixels.
	Range float64

	// Angle is the corner angle threshold passed to the renderer, in
	// degrees.
	Angle float64

	// ColorMode is passed to the renderer.
	ColorMode ColorMode

	// UVSpace selects the texture coordinate convention of the records.
	UVSpace uv.Space

	// PowerOfTwoHeight rounds the atlas height to a power of two.
	PowerOfTwoHeight bool

	// Threads is the requested number of compositing workers. It is
	// clamped to [1, 8] and to the glyph count.
	Threads int

	// Channels is the number of 8-bit channels per atlas pixel: 3 for RGB
	// or 4 for RGBA with an opaque alpha.
	Channels int
}

// DefaultConfig returns the default build configuration.
func DefaultConfig() Config {
	return Config{
		Scale:     1.0,
		Padding:   0,
		MaxWidth:  512,
		Range:     4.0,
		Angle:     3.0,
		ColorMode: ColorSimple,
		UVSpace:   uv.Default,
		Threads:   1,
		Channels:  3,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return &ConfigError{Field: "Scale", Reason: "must be positive and finite"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must not be negative"}
	}
	if c.MaxWidth <= 0 {
		return &ConfigError{Field: "MaxWidth", Reason: "must be positive"}
	}
	if !(c.Range > 0) {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if math.IsNaN(c.Angle) || math.IsInf(c.Angle, 0) {
		return &ConfigError{Field: "Angle", Reason: "must be finite"}
	}
	if c.ColorMode > ColorDistance {
		return &ConfigError{Field: "ColorMode", Reason: "unknown mode"}
	}
	if c.UVSpace > uv.OneMinusU|uv.OneMinusV {
		return &ConfigError{Field: "UVSpace", Reason: "unknown flags"}
	}
	if c.Channels != 3 && c.Channels != 4 {
		return &ConfigError{Field: "Channels", Reason: "must be 3 or 4"}
	}
	return nil
}
