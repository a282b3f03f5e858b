package grid

// Sq returns v². Wraps on overflow. Complexity: O(1).
func Sq(v int) int {
	return v * v
}

// CeilDiv returns ⌈dividend/divisor⌉ for positive operands.
// Used when partitioning a raster into fixed-size blocks where the
// last block may be partial. Complexity: O(1).
func CeilDiv(dividend, divisor int) int {
	return (dividend + divisor - 1) / divisor
}
