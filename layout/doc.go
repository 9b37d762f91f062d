// Package layout orders glyphs for packing and places them on shelves of
// a single atlas texture.
//
// Ranking groups glyphs by their scaled, padded height, tallest group
// first, and orders each group by bounding-box area, largest first. The
// planner then walks the ranked list left to right, wrapping to a new
// shelf row whenever the next glyph would reach the atlas width.
//
// Every placed rectangle lies inside the atlas and no two placed
// rectangles overlap. The compositor relies on this to write glyph
// pixels from several goroutines without locking.
package layout
