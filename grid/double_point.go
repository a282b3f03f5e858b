package grid

import "fmt"

// DoublePoint is an immutable pair of float64 coordinates: the
// continuous counterpart of Point, used where sub-pixel precision is
// needed (e.g. orientation vectors). It carries the same algebra as
// Point but no ordering or hashing contract — float keys are a trap.
type DoublePoint struct {
	X, Y float64
}

// DZero is the floating origin (0,0).
var DZero = DoublePoint{}

// DPt constructs a DoublePoint from raw coordinates.
// Complexity: O(1).
func DPt(x, y float64) DoublePoint {
	return DoublePoint{X: x, Y: y}
}

// Add returns the component-wise sum p+q. Complexity: O(1).
func (p DoublePoint) Add(q DoublePoint) DoublePoint {
	return DoublePoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p−q. Complexity: O(1).
func (p DoublePoint) Sub(q DoublePoint) DoublePoint {
	return DoublePoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the component-wise negation of p. Complexity: O(1).
func (p DoublePoint) Neg() DoublePoint {
	return DoublePoint{X: -p.X, Y: -p.Y}
}

// Area returns X·Y. Complexity: O(1).
func (p DoublePoint) Area() float64 {
	return p.X * p.Y
}

// LengthSq returns X²+Y², the squared Euclidean norm.
// Complexity: O(1).
func (p DoublePoint) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Contains reports whether q lies inside the half-open rectangle
// [0,p.X)×[0,p.Y). Complexity: O(1).
func (p DoublePoint) Contains(q DoublePoint) bool {
	return q.X >= 0 && q.Y >= 0 && q.X < p.X && q.Y < p.Y
}

// String renders p as "(x,y)" with default float formatting.
func (p DoublePoint) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
