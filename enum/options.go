// SPDX-License-Identifier: MIT

package enum

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/latenum/fpround"
)

// Walk selects the walker implementation. Both visit the same nodes in the
// same order; they differ only in how the frontier is kept.
type Walk uint8

const (
	// Iterative keeps the frontier level in a loop variable.
	Iterative Walk = iota
	// Recursive descends one call frame per level, mirroring the tree.
	Recursive
)

// String returns the walker name.
func (w Walk) String() string {
	switch w {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	default:
		return "unknown"
	}
}

// DefaultWalk is the walker used when no WithWalk option is given.
const DefaultWalk = Iterative

const (
	panicWalkInvalid = "enum: WithWalk: unknown walker"
	panicRoundingNil = "enum: WithRounding: controller must be non-nil"
	panicSinkNil     = "enum: NewKernel: sink must be non-nil"
)

// Option configures a Kernel at construction time.
type Option func(*Options)

// Options is the resolved kernel configuration.
type Options struct {
	walk     Walk
	logger   *slog.Logger
	rounding fpround.Controller
}

// WithWalk selects the walker. Panics on an unknown value.
func WithWalk(w Walk) Option {
	if w > Recursive {
		panic(panicWalkInvalid)
	}

	return func(o *Options) { o.walk = w }
}

// WithLogger sets the structured logger. The kernel logs at Debug level at
// Load and at the end of every Enumerate call, never per node. A nil logger
// discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithRounding replaces the host rounding controller, e.g. with a software
// one in tests. Panics on nil.
func WithRounding(c fpround.Controller) Option {
	if c == nil {
		panic(panicRoundingNil)
	}

	return func(o *Options) { o.rounding = c }
}

func gatherOptions(opts ...Option) Options {
	o := Options{walk: DefaultWalk, rounding: fpround.Host()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
