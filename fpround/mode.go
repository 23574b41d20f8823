// SPDX-License-Identifier: MIT

package fpround

import "errors"

// ErrUnsupportedMode is returned by controllers that cannot switch to the
// requested rounding mode.
var ErrUnsupportedMode = errors.New("fpround: rounding mode not supported")

// Mode is an IEEE 754 rounding direction.
type Mode uint8

const (
	// ToNearest rounds to the nearest representable value, ties to even.
	ToNearest Mode = iota
	// Downward rounds toward −Inf.
	Downward
	// Upward rounds toward +Inf.
	Upward
	// TowardZero truncates.
	TowardZero
)

// String returns the C99 <fenv.h> name of the mode.
func (m Mode) String() string {
	switch m {
	case ToNearest:
		return "FE_TONEAREST"
	case Downward:
		return "FE_DOWNWARD"
	case Upward:
		return "FE_UPWARD"
	case TowardZero:
		return "FE_TOWARDZERO"
	default:
		return "FE_UNKNOWN"
	}
}

// Valid reports whether m is one of the four IEEE directions.
func (m Mode) Valid() bool { return m <= TowardZero }

// Controller reads and writes the rounding mode of some floating-point unit.
// Implementations are not required to be safe for concurrent use; the host
// controller acts on whatever OS thread the caller runs on.
type Controller interface {
	Mode() Mode
	SetMode(m Mode) error
}
