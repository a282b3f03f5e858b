package raster

import (
	"math"

	"github.com/katalvlaran/ridgegrid/grid"
)

// Line — digital straight-line enumeration.
//
// Algorithm Outline:
//  1. relative = to − from.
//  2. Pick the dominant axis: X when |relative.X| ≥ |relative.Y|
//     (ties resolve to X), otherwise Y.
//  3. If from == to, emit the single-element line [from].
//  4. Walk i = 0..n with n = |relative.dominant|:
//     – dominant coordinate advances by sign(relative.dominant) per step;
//     – secondary coordinate is from.secondary + round(d·slope), where
//     d is the signed dominant delta at step i and
//     slope = relative.secondary / relative.dominant in float64.
//     Rounding is half-away-from-zero (math.Round), pinned so that
//     half-integer interpolations land identically on every platform.
//
// Output: len == max(|Δx|,|Δy|)+1, result[0] == from, last == to.
//
// Complexity: O(max(|Δx|,|Δy|)) time, single result allocation.
func Line(from, to grid.Point) []grid.Point {
	relative := to.Sub(from)
	if abs(relative.X) >= abs(relative.Y) {
		return walk(from, relative.X, relative.Y, true)
	}

	return walk(from, relative.Y, relative.X, false)
}

// walk emits the interpolated line for one dominant-axis choice.
// dom and sec are the signed deltas along the dominant and secondary
// axes; xDominant tells which grid axis dom belongs to.
func walk(from grid.Point, dom, sec int, xDominant bool) []grid.Point {
	n := abs(dom)
	result := make([]grid.Point, n+1)
	result[0] = from
	if n == 0 {
		return result
	}

	slope := float64(sec) / float64(dom)
	step := 1
	if dom < 0 {
		step = -1
	}
	for i := 1; i <= n; i++ {
		d := i * step
		s := int(math.Round(float64(d) * slope))
		if xDominant {
			result[i] = grid.Pt(from.X+d, from.Y+s)
		} else {
			result[i] = grid.Pt(from.X+s, from.Y+d)
		}
	}

	return result
}

// abs returns |v|. Complexity: O(1).
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
