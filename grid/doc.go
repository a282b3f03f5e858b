// Package grid provides the 2D point algebra underlying raster-based
// fingerprint analysis: integer grid points with exact arithmetic,
// a floating counterpart for sub-pixel work, fixed neighbor topology,
// and deterministic ordering, hashing and enumeration contracts.
//
// What:
//
//   - Point wraps an (X, Y) integer pair as an immutable value type.
//   - Add/Sub/Neg/Area/LengthSq give component-wise exact arithmetic.
//   - Contains treats a point as a half-open rectangle size anchored at
//     the origin: q is inside p iff 0 ≤ q.X < p.X and 0 ≤ q.Y < p.Y.
//   - Cmp/Less impose the row-major total order (Y first, then X).
//   - Hash mixes both coordinates into an equality-consistent 64-bit value.
//   - Points enumerates [0,X)×[0,Y) lazily in row-major order.
//   - EdgeNeighbors / CornerNeighbors are the fixed 4- and 8-offset tables.
//   - DoublePoint mirrors the algebra over float64 (conversion target).
//
// Why:
//
//   - Ridge tracing: walk raster neighborhoods without re-deriving offsets.
//   - Reproducible scans: row-major order makes processing deterministic.
//   - Container keys: Point is comparable and hash-consistent, so it can
//     index maps and sorted slices of grid features.
//
// Complexity:
//
//   - Every algebraic operation: O(1).
//   - Points enumeration: O(X·Y) total, O(1) per element, O(1) memory.
//
// Determinism contracts:
//
//   - Arithmetic wraps on overflow (two's complement), never traps.
//   - Ordering compares Y then X, both ascending.
//   - Hashing is stable within a process and equality-consistent.
//
// The package has no error conditions: all operations are total, and a
// non-positive rectangle size enumerates as empty rather than failing.
package grid
