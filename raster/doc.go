// Package raster enumerates digital straight lines between integer
// grid points, the edge-tracing primitive of the fingerprint raster
// pipeline.
//
// What:
//
//   - Line(from, to) returns the ordered sequence of grid points
//     approximating the segment from→to, both endpoints included.
//   - One point per unit step along the dominant axis (the axis with
//     the larger absolute delta; ties favor X).
//   - The secondary coordinate follows per-step linear interpolation
//     with round-half-away-from-zero, matching a Bresenham-equivalent
//     line while staying branch-light.
//
// Why:
//
//   - Ridge tracing: walk the raster between two minutiae candidates.
//   - Edge sampling: collect pixel values under a straight probe.
//   - Mask drawing: stamp connective strokes between features.
//
// Guarantees:
//
//   - Length is exactly max(|Δx|,|Δy|)+1; Line(p,p) is [p].
//   - First element == from, last element == to.
//   - The dominant coordinate moves strictly monotonically toward to.
//   - The secondary coordinate changes by at most 1 per step
//     (digital-line continuity).
//
// Complexity:
//
//   - Line: O(max(|Δx|,|Δy|)) time, one allocation for the result.
//
// The package has no error conditions: Line is total over all point
// pairs. All operations are pure and safe for concurrent use.
package raster
