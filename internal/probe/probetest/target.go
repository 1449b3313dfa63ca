// Package probetest provides an in-memory probe target for tests. It packs
// flags in declaration order, eight per byte, least significant bit first,
// which is the layout mainstream C compilers assign to the capability
// structure. Production code must never use it as ground truth; the point
// of probing is to measure the host toolchain, not to assume this packing.
package probetest

import "fmt"

// Image is a pure-Go probe target over a fixed-size byte buffer.
type Image struct {
	buf    []byte
	nflags int
}

// NewImage returns an image of the given byte size accepting field indices
// below nflags.
func NewImage(size, nflags int) *Image {
	return &Image{buf: make([]byte, size), nflags: nflags}
}

func (m *Image) Size() int { return len(m.buf) }

func (m *Image) Zero() {
	for i := range m.buf {
		m.buf[i] = 0
	}
}

func (m *Image) Set(index int) error {
	if index < 0 || index >= m.nflags {
		return fmt.Errorf("probetest: no field at index %d", index)
	}
	m.buf[index/8] |= 1 << (index % 8)
	return nil
}

func (m *Image) Bytes() []byte {
	out := make([]byte, len(m.buf))
	copy(out, m.buf)
	return out
}
