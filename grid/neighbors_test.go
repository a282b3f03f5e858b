package grid_test

import (
	"testing"

	"github.com/katalvlaran/ridgegrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEdgeNeighbors verifies the 4-member edge table: all distinct,
// every member at squared distance exactly 1.
func TestEdgeNeighbors(t *testing.T) {
	seen := map[grid.Point]bool{}
	for _, n := range grid.EdgeNeighbors {
		seen[n] = true
		assert.Equal(t, 1, n.LengthSq(), "edge neighbor %v must be a unit offset", n)
	}
	assert.Len(t, seen, 4, "edge table members must be distinct")
}

// TestCornerNeighbors verifies the 8-member corner table: all distinct,
// every member at squared distance 1 or 2.
func TestCornerNeighbors(t *testing.T) {
	seen := map[grid.Point]bool{}
	for _, n := range grid.CornerNeighbors {
		seen[n] = true
		sq := n.LengthSq()
		assert.True(t, sq == 1 || sq == 2, "corner neighbor %v has LengthSq %d", n, sq)
	}
	assert.Len(t, seen, 8, "corner table members must be distinct")
}

// TestCornerContainsEdge checks the corner table is a superset of the
// edge table.
func TestCornerContainsEdge(t *testing.T) {
	corner := map[grid.Point]bool{}
	for _, n := range grid.CornerNeighbors {
		corner[n] = true
	}
	for _, n := range grid.EdgeNeighbors {
		assert.True(t, corner[n], "edge offset %v missing from corner table", n)
	}
}

// TestNeighbors verifies the connectivity selector and that it hands
// out defensive copies.
func TestNeighbors(t *testing.T) {
	four := grid.Neighbors(grid.Conn4)
	require.Len(t, four, 4)
	assert.Equal(t, grid.EdgeNeighbors[:], four)

	eight := grid.Neighbors(grid.Conn8)
	require.Len(t, eight, 8)
	assert.Equal(t, grid.CornerNeighbors[:], eight)

	// Mutating the returned slice must not leak into the tables.
	four[0] = grid.Pt(99, 99)
	assert.Equal(t, grid.Pt(0, -1), grid.EdgeNeighbors[0])
	assert.Equal(t, grid.Pt(0, -1), grid.Neighbors(grid.Conn4)[0])
}
