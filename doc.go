// Package ridgegrid is the grid-geometry foundation for raster-based
// fingerprint image analysis — point algebra, neighbor topology and
// digital line rasterization, ready for ridge tracing and matching
// layers to build on top.
//
// 🚀 What is ridgegrid?
//
//	A small, deterministic library that brings together:
//		• Point algebra: integer & floating 2D points, add/sub/negate,
//		  area, squared length, half-open rectangle containment
//		• Grid topology: fixed 4- and 8-neighbor offset tables
//		• Ordering & hashing: row-major total order, equality-consistent hashes
//		• Enumeration: restartable row-major rectangle walks
//		• Rasterization: digital straight lines between grid points
//		• Acquisition options: range-validated image DPI
//
// ✨ Why choose ridgegrid?
//
//   - Value types everywhere – immutable points, safe as map keys
//   - Deterministic – pinned rounding mode, pinned overflow policy
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-safe by construction – every operation is pure and stateless
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/    — point algebra, neighbor tables, ordering, hashing, enumeration
//	raster/  — digital straight-line enumeration (dominant-axis walk)
//	fpimage/ — fingerprint image acquisition options (validated DPI)
//
// Quick ASCII example:
//
//	    ·(1,1)
//	     ·(1,2)
//	      ·(2,3)
//	       ·(2,4)   raster.Line(Pt(1,1), Pt(3,7)) walks the dominant
//	        ·(2,5)  Y axis, rounding X at every step.
//	         ·(3,6)
//	          ·(3,7)
//
// Next up: ridge extraction and minutiae matching, both standing on this
// coordinate kernel. Dive into each package's doc.go for complexity
// notes, error contracts and runnable examples.
//
//	go get github.com/katalvlaran/ridgegrid
package ridgegrid
