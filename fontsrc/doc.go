// Package fontsrc adapts parsed font files to the metrics and outline
// queries an atlas build makes.
//
// Two backends are provided. SFNT uses golang.org/x/image/font/sfnt and is
// safe for concurrent use. GoText uses github.com/go-text/typesetting and
// serializes access to its face.
//
// Both report values in font design units with the y axis pointing up,
// whatever the convention of the underlying library.
package fontsrc
