package fpimage

import "errors"

// DPI bounds accepted by WithDPI, both inclusive.
const (
	// MinDPI is the lowest physically plausible image resolution.
	MinDPI = 20
	// MaxDPI is the highest physically plausible image resolution.
	MaxDPI = 20_000
	// DefaultDPI is the conventional live-scan sensor resolution.
	DefaultDPI = 500
)

// ErrDPIRange indicates a requested DPI outside [MinDPI, MaxDPI].
var ErrDPIRange = errors.New("fpimage: dpi is non-positive, impossibly low, or impossibly high")

// Options describes how a fingerprint image was acquired.
// The zero value is not useful; start from DefaultOptions.
type Options struct {
	dpi float64
}

// DefaultOptions returns acquisition options with sane defaults:
// DPI = DefaultDPI (500).
func DefaultOptions() Options {
	return Options{dpi: DefaultDPI}
}

// WithDPI returns a copy of o with the image resolution set to dpi.
// A value outside the inclusive range [MinDPI, MaxDPI] fails with
// ErrDPIRange and the receiver is returned unchanged — the update does
// not take effect. Complexity: O(1).
func (o Options) WithDPI(dpi float64) (Options, error) {
	if dpi < MinDPI || dpi > MaxDPI {
		return o, ErrDPIRange
	}
	o.dpi = dpi

	return o, nil
}

// DPI reports the configured image resolution in dots per inch.
func (o Options) DPI() float64 {
	return o.dpi
}
