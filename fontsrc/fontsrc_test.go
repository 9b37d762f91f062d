package fontsrc

import (
	"errors"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/msdfatlas/glyph"
)

type testFont interface {
	GlyphMetrics(r rune) (glyph.Metrics, error)
	Outline(id glyph.ID) (*glyph.Outline, error)
	FontMetrics() (glyph.FontMetrics, error)
}

func backends(t *testing.T) map[string]testFont {
	t.Helper()
	s, err := ParseSFNT(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseSFNT: %v", err)
	}
	g, err := ParseGoText(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseGoText: %v", err)
	}
	return map[string]testFont{"sfnt": s, "gotext": g}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := ParseSFNT([]byte("not a font")); err == nil {
		t.Error("ParseSFNT accepted garbage")
	}
	if _, err := ParseGoText([]byte("not a font")); err == nil {
		t.Error("ParseGoText accepted garbage")
	}
}

func TestGlyphMetrics_Letter(t *testing.T) {
	for name, f := range backends(t) {
		t.Run(name, func(t *testing.T) {
			m, err := f.GlyphMetrics('A')
			if err != nil {
				t.Fatalf("GlyphMetrics('A'): %v", err)
			}
			if m.ID == 0 {
				t.Error("ID is the notdef glyph")
			}
			if m.Advance <= 0 {
				t.Errorf("Advance = %d, want > 0", m.Advance)
			}
			if m.Bounds.IsEmpty() {
				t.Fatalf("Bounds = %+v, want non-empty", m.Bounds)
			}
			if m.Bounds.YMin < -10 || m.Bounds.YMax <= 0 {
				t.Errorf("Bounds = %+v, want a glyph sitting on the baseline", m.Bounds)
			}
			if m.SideBearing != m.Bounds.XMin {
				t.Errorf("SideBearing = %d, want %d", m.SideBearing, m.Bounds.XMin)
			}
		})
	}
}

func TestGlyphMetrics_Descender(t *testing.T) {
	for name, f := range backends(t) {
		t.Run(name, func(t *testing.T) {
			m, err := f.GlyphMetrics('g')
			if err != nil {
				t.Fatalf("GlyphMetrics('g'): %v", err)
			}
			if m.Bounds.YMin >= 0 {
				t.Errorf("'g' YMin = %d, want below the baseline", m.Bounds.YMin)
			}
		})
	}
}

func TestGlyphMetrics_Missing(t *testing.T) {
	for name, f := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := f.GlyphMetrics('\U0001F600')
			if !errors.Is(err, glyph.ErrNoGlyph) {
				t.Errorf("GlyphMetrics(U+1F600) error = %v, want ErrNoGlyph", err)
			}
		})
	}
}

func TestGlyphMetrics_Space(t *testing.T) {
	for name, f := range backends(t) {
		t.Run(name, func(t *testing.T) {
			m, err := f.GlyphMetrics(' ')
			if err != nil {
				t.Fatalf("GlyphMetrics(' '): %v", err)
			}
			if m.Bounds != (glyph.Rect{}) {
				t.Errorf("space Bounds = %+v, want zero", m.Bounds)
			}
			if m.Advance <= 0 {
				t.Errorf("space Advance = %d, want > 0", m.Advance)
			}
			if _, err := f.Outline(m.ID); !errors.Is(err, glyph.ErrNoShape) {
				t.Errorf("Outline(space) error = %v, want ErrNoShape", err)
			}
		})
	}
}

func TestBackendsAgree(t *testing.T) {
	b := backends(t)
	s, g := b["sfnt"], b["gotext"]
	for _, r := range "AMWgjq@%019" {
		ms, err := s.GlyphMetrics(r)
		if err != nil {
			t.Fatalf("sfnt %q: %v", r, err)
		}
		mg, err := g.GlyphMetrics(r)
		if err != nil {
			t.Fatalf("gotext %q: %v", r, err)
		}
		if ms.ID != mg.ID {
			t.Errorf("%q: ID sfnt=%d gotext=%d", r, ms.ID, mg.ID)
		}
		if ms.Advance != mg.Advance {
			t.Errorf("%q: Advance sfnt=%d gotext=%d", r, ms.Advance, mg.Advance)
		}
		if !near(ms.Bounds, mg.Bounds, 2) {
			t.Errorf("%q: Bounds sfnt=%+v gotext=%+v", r, ms.Bounds, mg.Bounds)
		}
	}
}

func TestOutline_MatchesBounds(t *testing.T) {
	for name, f := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, r := range "Aeo8" {
				m, err := f.GlyphMetrics(r)
				if err != nil {
					t.Fatalf("GlyphMetrics(%q): %v", r, err)
				}
				o, err := f.Outline(m.ID)
				if err != nil {
					t.Fatalf("Outline(%q): %v", r, err)
				}
				if o.ID != m.ID {
					t.Errorf("Outline ID = %d, want %d", o.ID, m.ID)
				}
				if o.Segments[0].Op != glyph.OpMoveTo {
					t.Errorf("%q: first segment is %v, want MoveTo", r, o.Segments[0].Op)
				}
				if got := o.Bounds(); !near(got, m.Bounds, 2) {
					t.Errorf("%q: outline bounds %+v, metrics bounds %+v", r, got, m.Bounds)
				}
			}
		})
	}
}

func TestFontMetrics(t *testing.T) {
	for name, f := range backends(t) {
		t.Run(name, func(t *testing.T) {
			fm, err := f.FontMetrics()
			if err != nil {
				t.Fatalf("FontMetrics: %v", err)
			}
			if fm.UnitsPerEm != 2048 {
				t.Errorf("UnitsPerEm = %d, want 2048", fm.UnitsPerEm)
			}
			if fm.Ascender <= 0 || fm.Descender >= 0 {
				t.Errorf("Ascender = %d, Descender = %d, want positive and negative", fm.Ascender, fm.Descender)
			}
			if fm.LineHeight != fm.Ascender+fm.Descender {
				t.Errorf("LineHeight = %d, want %d", fm.LineHeight, fm.Ascender+fm.Descender)
			}
		})
	}
}

func TestConcurrentQueries(t *testing.T) {
	for name, f := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for _, r := range "abcdefghijklmnopqrstuvwxyz" {
						m, err := f.GlyphMetrics(r)
						if err != nil {
							t.Errorf("GlyphMetrics(%q): %v", r, err)
							return
						}
						if _, err := f.Outline(m.ID); err != nil {
							t.Errorf("Outline(%q): %v", r, err)
							return
						}
					}
				}()
			}
			wg.Wait()
		})
	}
}

func near(a, b glyph.Rect, tol int) bool {
	d := func(x, y int) bool { return x-y <= tol && y-x <= tol }
	return d(a.XMin, b.XMin) && d(a.YMin, b.YMin) && d(a.XMax, b.XMax) && d(a.YMax, b.YMax)
}
