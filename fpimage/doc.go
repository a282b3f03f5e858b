// Package fpimage holds acquisition options for fingerprint images
// entering the raster pipeline.
//
// What:
//
//   - Options carries the image resolution in dots per inch (DPI).
//   - DefaultOptions returns the conventional 500 DPI of live-scan
//     fingerprint sensors.
//   - WithDPI validates a new resolution against the physically
//     plausible inclusive range [20, 20000] and refuses anything
//     outside it.
//
// Errors:
//
//   - ErrDPIRange: the requested DPI is non-positive, impossibly low,
//     or impossibly high. The update does not take effect — there is
//     no clamping, no default substitution and no retry.
//
// Options values are immutable: WithDPI returns a new value and leaves
// its receiver untouched, so a failed update can never leak a
// half-configured state.
package fpimage
