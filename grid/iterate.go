package grid

import "iter"

// Points enumerates every grid point of the half-open rectangle
// [0,p.X)×[0,p.Y) in row-major order: X increases fastest within a
// row, then Y increments. A non-positive dimension yields an empty
// sequence — no error, no partial row.
//
// The sequence is restartable: every range over it (and every call)
// starts an independent walk at (0,0) with its own cursor, so
// concurrent enumerations over the same point value never interfere.
//
// Complexity: O(X·Y) total, O(1) per element, O(1) memory.
func (p Point) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < p.Y; y++ {
			for x := 0; x < p.X; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
