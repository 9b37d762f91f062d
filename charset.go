package msdfatlas

import (
	"golang.org/x/text/unicode/norm"
)

// Charset returns the distinct characters of s in first-seen order, after
// NFC normalization. Combining sequences with a precomposed form are
// packed as that single character.
func Charset(s string) []rune {
	s = norm.NFC.String(s)
	seen := make(map[rune]struct{}, len(s))
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Named character sets accepted by Preset.
const (
	// PresetASCII is printable ASCII, space through tilde.
	PresetASCII = "ascii"

	// PresetLetters is A-Z followed by a-z.
	PresetLetters = "letters"
)

// Preset returns the characters of a named set.
func Preset(name string) ([]rune, bool) {
	switch name {
	case PresetASCII:
		return runeRange(' ', '~'), true
	case PresetLetters:
		return append(runeRange('A', 'Z'), runeRange('a', 'z')...), true
	default:
		return nil, false
	}
}

func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}
