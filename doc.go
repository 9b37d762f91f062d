// Package msdfatlas packs the glyphs of a font into a single texture atlas
// and produces per-glyph records locating each glyph in that texture.
//
// # Overview
//
// A build runs in five stages:
//
//  1. Rank: requested characters are resolved through a [Font] and ordered
//     for packing, tallest rows first (package layout).
//  2. Plan: glyphs are placed on horizontal shelves whose width is chosen
//     once and whose height is the sum of the row heights (package layout).
//  3. Render: every glyph outline is rendered by a [Renderer] at its planned
//     size.
//  4. Composite: the atlas is divided among up to eight workers that copy
//     rendered glyphs into provably disjoint regions of one shared pixel
//     buffer (packages parallel and composite).
//  5. Map: placements are converted to normalized texture coordinates and
//     sorted by codepoint (package uv).
//
// # Quick Start
//
//	f, err := fontsrc.ParseSFNT(ttf)
//	if err != nil {
//	    return err
//	}
//	cfg := msdfatlas.DefaultConfig()
//	cfg.Scale = 1.0 / 32
//	atlas, err := msdfatlas.Build(f, raster.Coverage{}, msdfatlas.Charset("Hello"), cfg)
//	if err != nil {
//	    return err
//	}
//	err = export.WritePNG(w, atlas.Buffer)
//
// Characters the font cannot resolve are not an error. They are reported
// in [Atlas.Skipped] and left out of the atlas. Glyphs whose shape fails
// to render keep their space and their record.
package msdfatlas
