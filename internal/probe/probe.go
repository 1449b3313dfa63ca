// Package probe discovers where the host toolchain placed each single-bit
// capability field inside the packed structure's raw bytes. It never
// computes bit positions itself: it sets one field through the target's own
// write semantics and observes which bit changed.
package probe

import (
	"math/bits"

	"github.com/javabind/capgen/internal/catalog"
)

// ImageSize is the declared total size of the capability structure in
// bytes. A target whose compiled size differs is unsupported; there is no
// fallback layout strategy.
const ImageSize = 16

// Target is one instance of the host-compiled capability structure, viewed
// as a scratch image the prober may zero and mutate freely.
type Target interface {
	// Size returns the structure's compiled total size in bytes.
	Size() int
	// Zero sets every byte of the instance to zero.
	Zero()
	// Set writes 1 to the field at the given declaration index through the
	// host compiler's field write semantics.
	Set(index int) error
	// Bytes returns a copy of the instance's raw byte representation.
	Bytes() []byte
}

// LayoutFact is the discovered location of one flag: the byte offset within
// the structure and the single-bit mask within that byte.
type LayoutFact struct {
	Offset int
	Mask   byte
}

// Encoded packs the fact into one integer, offset in the high byte and mask
// in the low byte. Offsets fit in a byte because the structure is 16 bytes.
func (f LayoutFact) Encoded() uint16 {
	return uint16(f.Offset)<<8 | uint16(f.Mask)
}

// Probed pairs a catalog flag with its discovered layout.
type Probed struct {
	Flag catalog.Flag
	Fact LayoutFact
}

// CheckSize verifies the target's compiled size against ImageSize. Callers
// check once before probing; on mismatch the environment is unsupported and
// no probe result can be trusted.
func CheckSize(t Target) error {
	if got := t.Size(); got != ImageSize {
		return &SizeError{Got: got, Want: ImageSize}
	}
	return nil
}

// Probe zeroes the target, sets the one field named by flag, and scans the
// raw bytes for the bit that appeared. Exactly one byte must be nonzero and
// that byte must hold exactly one set bit; anything else violates the
// one-bit-per-flag packing assumption and is reported as a LayoutError.
func Probe(t Target, flag catalog.Flag) (LayoutFact, error) {
	t.Zero()
	if err := t.Set(flag.Index); err != nil {
		return LayoutFact{}, err
	}

	fact := LayoutFact{Offset: -1}
	for i, b := range t.Bytes() {
		if b == 0 {
			continue
		}
		if fact.Offset >= 0 {
			return LayoutFact{}, &LayoutError{Flag: flag.Name, Kind: MultipleBytes}
		}
		if bits.OnesCount8(b) != 1 {
			return LayoutFact{}, &LayoutError{Flag: flag.Name, Kind: MultipleBits}
		}
		fact = LayoutFact{Offset: i, Mask: b}
	}
	if fact.Offset < 0 {
		return LayoutFact{}, &LayoutError{Flag: flag.Name, Kind: NoBit}
	}
	return fact, nil
}

// All probes every flag in order and returns the discovered layouts. The
// size precondition is checked once up front; the first failing flag stops
// the run.
func All(t Target, flags []catalog.Flag) ([]Probed, error) {
	if err := CheckSize(t); err != nil {
		return nil, err
	}
	results := make([]Probed, 0, len(flags))
	for _, flag := range flags {
		fact, err := Probe(t, flag)
		if err != nil {
			return nil, err
		}
		results = append(results, Probed{Flag: flag, Fact: fact})
	}
	return results, nil
}
