//go:build !cgo

package jvmti

// Capabilities is unusable without cgo; New never returns one.
type Capabilities struct{}

// New fails closed: probing requires the host C toolchain.
func New() (*Capabilities, error) {
	return nil, ErrUnavailable
}

func (t *Capabilities) Size() int     { return 0 }
func (t *Capabilities) Zero()         {}
func (t *Capabilities) Set(int) error { return ErrUnavailable }
func (t *Capabilities) Bytes() []byte { return nil }
