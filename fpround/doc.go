// SPDX-License-Identifier: MIT

// Package fpround controls the floating-point rounding mode of the current
// OS thread for the duration of a numerically sensitive computation.
//
// Go code itself always rounds to nearest (ties to even), but a process that
// hosts cgo libraries can leave the FP unit in another mode, and the mode is
// per-thread state. Distance comparisons against pruning bounds must not
// depend on that ambient setting, so callers wrap the sensitive phase in a
// Guard:
//
//	g, err := fpround.Acquire(fpround.Host())
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//
// Acquire pins the goroutine to its OS thread, saves the current mode and
// forces ToNearest. Release restores the saved mode exactly once and unpins
// the goroutine; it is safe to call more than once and runs from a deferred
// call on panics too.
//
// Host controllers:
//   - amd64: the SSE control/status register (MXCSR, round-control bits 13–14).
//   - other architectures: a controller fixed at ToNearest; requests for any
//     other mode fail with ErrUnsupportedMode.
package fpround
