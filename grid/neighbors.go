package grid

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// EdgeNeighbors holds the 4 unit offsets at Euclidean distance 1,
// listed in row-major order. Every member has LengthSq() == 1.
var EdgeNeighbors = [4]Point{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}

// CornerNeighbors holds the 8 offsets at Euclidean distance 1 or √2
// (edge plus diagonal), listed in row-major order. Every member has
// LengthSq() of 1 or 2.
var CornerNeighbors = [8]Point{
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// Neighbors returns a fresh copy of the offset table selected by c:
// the 4-member edge table for Conn4, the 8-member corner table for
// Conn8 (and for any unrecognized value, which keeps connectivity
// traversals total). Callers may reorder or mutate the returned slice
// freely. Complexity: O(1).
func Neighbors(c Connectivity) []Point {
	if c == Conn4 {
		return append([]Point(nil), EdgeNeighbors[:]...)
	}

	return append([]Point(nil), CornerNeighbors[:]...)
}
