// Package composite copies rendered glyph bitmaps into one shared atlas
// buffer, optionally from several goroutines at once.
//
// Writers never take a lock. Instead, every glyph gets a View: a window
// onto the buffer built from the glyph's planned rectangle. Buffer.Views
// refuses rectangles that leave the buffer or overlap each other, so two
// views can never touch the same pixel and workers holding different
// views can write concurrently.
package composite
