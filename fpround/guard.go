// SPDX-License-Identifier: MIT

package fpround

import (
	"errors"
	"runtime"
)

// ErrNilController is returned by Acquire when no controller is given.
var ErrNilController = errors.New("fpround: nil controller")

// Guard holds a saved rounding mode until Release.
//
// A Guard belongs to the goroutine that acquired it: the goroutine stays
// locked to its OS thread until Release, because the mode being guarded is
// thread state.
type Guard struct {
	c        Controller
	saved    Mode
	released bool
}

// Acquire saves the controller's current mode and forces ToNearest.
//
// Steps:
//  1. Lock the calling goroutine to its OS thread.
//  2. Read and remember the current mode.
//  3. Switch to ToNearest unless already there.
//
// If step 3 fails the thread is unlocked again, the mode is left untouched
// and the controller's error is returned; no Release is needed.
func Acquire(c Controller) (*Guard, error) {
	if c == nil {
		return nil, ErrNilController
	}
	runtime.LockOSThread()
	g := &Guard{c: c, saved: c.Mode()}
	if g.saved != ToNearest {
		if err := c.SetMode(ToNearest); err != nil {
			runtime.UnlockOSThread()

			return nil, err
		}
	}

	return g, nil
}

// Saved returns the mode observed at Acquire.
func (g *Guard) Saved() Mode { return g.saved }

// Release restores the saved mode and unlocks the OS thread. Calls after the
// first are no-ops.
func (g *Guard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	if g.c.Mode() != g.saved {
		// The saved mode was readable from this controller, so writing it
		// back cannot be an unsupported request.
		_ = g.c.SetMode(g.saved)
	}
	runtime.UnlockOSThread()
}
