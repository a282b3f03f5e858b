package grid

import (
	"cmp"
	"fmt"
)

// Point is an immutable pair of integer grid coordinates.
// It is a comparable value type: == is exact field-wise equality,
// so Point can be used directly as a map key.
type Point struct {
	X, Y int
}

// Zero is the origin point (0,0).
var Zero = Point{}

// Pt constructs a Point from raw coordinates.
// Any integer values are accepted; no validation is performed.
// Complexity: O(1).
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum p+q.
// Arithmetic wraps on overflow. Complexity: O(1).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p−q.
// Arithmetic wraps on overflow. Complexity: O(1).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the component-wise negation of p.
// Complexity: O(1).
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Area returns X·Y, the cell count of the rectangle p describes.
// Arithmetic wraps on overflow. Complexity: O(1).
func (p Point) Area() int {
	return p.X * p.Y
}

// LengthSq returns X²+Y², the squared Euclidean norm of p.
// Squaring avoids the square root when only comparisons are needed.
// Arithmetic wraps on overflow. Complexity: O(1).
func (p Point) LengthSq() int {
	return Sq(p.X) + Sq(p.Y)
}

// Contains reports whether q lies inside the half-open rectangle
// [0,p.X)×[0,p.Y); p is the exclusive size of a rectangle anchored at
// the origin. Complexity: O(1).
func (p Point) Contains(q Point) bool {
	return q.X >= 0 && q.Y >= 0 && q.X < p.X && q.Y < p.Y
}

// ToDouble widens both coordinates to float64.
// Exact for every coordinate a fingerprint raster can hold
// (|v| ≤ 2⁵³). Complexity: O(1).
func (p Point) ToDouble() DoublePoint {
	return DoublePoint{X: float64(p.X), Y: float64(p.Y)}
}

// Cmp compares p and q in row-major order: Y first, then X, both
// ascending. Returns −1 if p sorts before q, 0 if equal, +1 after.
// Suitable for slices.SortFunc. Complexity: O(1).
func (p Point) Cmp(q Point) int {
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}

	return cmp.Compare(p.X, q.X)
}

// Less reports whether p sorts strictly before q in row-major order.
// Complexity: O(1).
func (p Point) Less(q Point) bool {
	return p.Cmp(q) < 0
}

// goldenGamma is the 64-bit golden-ratio multiplier used to mix
// coordinates (splitmix-style). Odd, so multiplication is a bijection.
const goldenGamma = 0x9e3779b97f4a7c15

// Hash mixes both coordinates into a 64-bit value.
// Contract: structurally equal points hash identically; changing either
// coordinate always changes the hash of an otherwise-equal point.
// Stable within a process; not stable across releases. Complexity: O(1).
func (p Point) Hash() uint64 {
	h := uint64(p.X) * goldenGamma
	h ^= h >> 32
	h = (h + uint64(p.Y)) * goldenGamma
	h ^= h >> 32

	return h
}

// String renders p as "(x,y)" for logs and examples.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
