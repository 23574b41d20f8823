// SPDX-License-Identifier: MIT

package fpround

// MXCSR round-control field: bits 13–14, encoded in the same order as Mode.
const (
	mxcsrRCShift = 13
	mxcsrRCMask  = uint32(3) << mxcsrRCShift
)

// getcsr returns the MXCSR register of the current thread.
func getcsr() uint32

// setcsr loads csr into the MXCSR register of the current thread.
func setcsr(csr uint32)

type hostController struct{}

// Host returns the controller of the calling OS thread's SSE unit.
func Host() Controller { return hostController{} }

func (hostController) Mode() Mode {
	return Mode((getcsr() & mxcsrRCMask) >> mxcsrRCShift)
}

func (hostController) SetMode(m Mode) error {
	if !m.Valid() {
		return ErrUnsupportedMode
	}
	csr := getcsr()
	setcsr(csr&^mxcsrRCMask | uint32(m)<<mxcsrRCShift)

	return nil
}
