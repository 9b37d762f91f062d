// Package parallel splits glyph work into contiguous slices and runs one
// goroutine per slice in a fork-join block.
//
// There is no persistent pool: every Run spawns its workers, waits for all
// of them and returns. Workers share nothing mutable except what the
// caller hands them, so the caller is responsible for giving each slice
// disjoint output.
package parallel
