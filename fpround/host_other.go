// SPDX-License-Identifier: MIT

//go:build !amd64

package fpround

// hostController models an FP unit that Go never leaves round-to-nearest.
type hostController struct{}

// Host returns a controller fixed at ToNearest. Only ToNearest can be set.
func Host() Controller { return hostController{} }

func (hostController) Mode() Mode { return ToNearest }

func (hostController) SetMode(m Mode) error {
	if m != ToNearest {
		return ErrUnsupportedMode
	}

	return nil
}
