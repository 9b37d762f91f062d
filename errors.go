package msdfatlas

import "errors"

// Sentinel errors for the build pipeline.
var (
	// ErrNoGlyphs is returned when none of the requested characters
	// resolved to a glyph, so no atlas size can be computed.
	ErrNoGlyphs = errors.New("msdfatlas: no glyphs to pack")

	// ErrNilFont is returned when Build is called without a font.
	ErrNilFont = errors.New("msdfatlas: font is nil")

	// ErrNilRenderer is returned when Build is called without a renderer.
	ErrNilRenderer = errors.New("msdfatlas: renderer is nil")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdfatlas: invalid config." + e.Field + ": " + e.Reason
}
