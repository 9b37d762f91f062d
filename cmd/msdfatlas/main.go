// Command msdfatlas packs the glyphs of a TrueType or OpenType font into a
// texture atlas.
//
// Usage:
//
//	msdfatlas -font Go-Regular.ttf -charset ascii -scale 0.03125 -padding 10 \
//	    -out atlas.png -records glyphs.bin -header glyphs.h
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/msdfatlas"
	"github.com/gogpu/msdfatlas/export"
	"github.com/gogpu/msdfatlas/fontsrc"
	"github.com/gogpu/msdfatlas/raster"
	"github.com/gogpu/msdfatlas/uv"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		newLogger(os.Stderr, false).Error("msdfatlas failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	font    string
	chars   string
	charset string
	out     string
	records string
	header  string
	name    string
	backend string
	color   string
	flipU   bool
	flipV   bool
	verbose bool
	cfg     msdfatlas.Config
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{cfg: msdfatlas.DefaultConfig()}

	fs := flag.NewFlagSet("msdfatlas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.font, "font", "", "font file (TrueType or OpenType)")
	fs.StringVar(&o.chars, "chars", "", "characters to pack")
	fs.StringVar(&o.charset, "charset", "", "named character set: ascii or letters")
	fs.StringVar(&o.out, "out", "atlas.png", "output PNG file")
	fs.StringVar(&o.records, "records", "", "optional glyph record blob output")
	fs.StringVar(&o.header, "header", "", "optional C header output")
	fs.StringVar(&o.name, "name", "", "identifier prefix for the C header (default: font family)")
	fs.StringVar(&o.backend, "backend", "sfnt", "font backend: sfnt or gotext")
	fs.StringVar(&o.color, "color", o.cfg.ColorMode.String(), "edge color mode: simple, inktrap or distance")
	fs.Float64Var(&o.cfg.Scale, "scale", o.cfg.Scale, "font units to pixels")
	fs.IntVar(&o.cfg.Padding, "padding", o.cfg.Padding, "padding around glyphs in pixels")
	fs.IntVar(&o.cfg.MaxWidth, "max-width", o.cfg.MaxWidth, "desired atlas width in pixels")
	fs.Float64Var(&o.cfg.Range, "range", o.cfg.Range, "distance field range in pixels")
	fs.Float64Var(&o.cfg.Angle, "angle", o.cfg.Angle, "corner angle threshold in degrees")
	fs.BoolVar(&o.cfg.PowerOfTwoHeight, "pot", false, "round atlas height to a power of two")
	fs.IntVar(&o.cfg.Threads, "threads", o.cfg.Threads, "compositing workers (clamped to 1..8)")
	fs.IntVar(&o.cfg.Channels, "channels", o.cfg.Channels, "pixel channels: 3 (RGB) or 4 (RGBA)")
	fs.BoolVar(&o.flipU, "flip-u", false, "store u as 1 - u")
	fs.BoolVar(&o.flipV, "flip-v", false, "store v as 1 - v")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.font == "" {
		return nil, errors.New("-font is required")
	}
	if o.chars == "" && o.charset == "" {
		return nil, errors.New("one of -chars or -charset is required")
	}

	mode, err := msdfatlas.ParseColorMode(o.color)
	if err != nil {
		return nil, err
	}
	o.cfg.ColorMode = mode
	if o.flipU {
		o.cfg.UVSpace |= uv.OneMinusU
	}
	if o.flipV {
		o.cfg.UVSpace |= uv.OneMinusV
	}
	return o, nil
}

// newLogger writes text to terminals and JSON everywhere else.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	msdfatlas.SetLogger(newLogger(stderr, o.verbose))
	log := msdfatlas.Logger()

	text := o.chars
	if o.charset != "" {
		preset, ok := msdfatlas.Preset(o.charset)
		if !ok {
			return fmt.Errorf("unknown charset %q", o.charset)
		}
		text += string(preset)
	}
	chars := msdfatlas.Charset(text)

	data, err := os.ReadFile(filepath.Clean(o.font))
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}
	font, family, err := openFont(o.backend, data)
	if err != nil {
		return err
	}

	atlas, err := msdfatlas.Build(font, raster.Coverage{}, chars, o.cfg)
	if err != nil {
		return err
	}
	for _, s := range atlas.Skipped {
		log.Warn("glyph skipped", "char", string(s.Codepoint), "codepoint", fmt.Sprintf("%U", s.Codepoint), "reason", s.Reason)
	}

	if err := export.SavePNG(o.out, atlas.Buffer); err != nil {
		return err
	}
	if o.records != "" {
		if err := writeFile(o.records, func(w io.Writer) error { return export.WriteRecords(w, atlas) }); err != nil {
			return err
		}
	}
	if o.header != "" {
		name := o.name
		if name == "" {
			name = family
		}
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(o.font), filepath.Ext(o.font))
		}
		if err := writeFile(o.header, func(w io.Writer) error { return export.WriteCHeader(w, name, atlas) }); err != nil {
			return err
		}
	}

	log.Info("atlas written",
		"out", o.out, "width", atlas.Width, "height", atlas.Height,
		"glyphs", len(atlas.Records), "skipped", len(atlas.Skipped))
	return nil
}

func openFont(backend string, data []byte) (msdfatlas.Font, string, error) {
	switch backend {
	case "sfnt":
		f, err := fontsrc.ParseSFNT(data)
		if err != nil {
			return nil, "", err
		}
		return f, f.Name(), nil
	case "gotext":
		f, err := fontsrc.ParseGoText(data)
		if err != nil {
			return nil, "", err
		}
		return f, "", nil
	default:
		return nil, "", fmt.Errorf("unknown backend %q", backend)
	}
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}
