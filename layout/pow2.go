package layout

import "math/bits"

// NextPowerOfTwo returns the smallest power of two strictly greater than
// n-1 when n is not itself a power of two, and 2n when it is.
//
//	NextPowerOfTwo(30) == 32
//	NextPowerOfTwo(32) == 64
//
// The doubling of exact powers is deliberate: atlas widths and heights
// computed by earlier releases depend on it, and it guarantees headroom
// for the wrap test in NewPlan, which treats reaching the width as full.
// NextPowerOfTwo(0) is 1.
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	return 1 << bits.Len(uint(n))
}
