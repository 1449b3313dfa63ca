package probe

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch reports that the compiled structure size differs from
// ImageSize. Use errors.Is to detect it; the concrete error is a SizeError
// carrying both sizes.
var ErrSizeMismatch = errors.New("structure size mismatch")

// SizeError is the unsupported-environment failure: the host toolchain
// compiled the structure to a different total size than this tool expects.
type SizeError struct {
	Got  int
	Want int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("structure size mismatch: compiled size %d, expected %d", e.Got, e.Want)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// InconsistencyKind classifies how a probed image violated the
// one-bit-per-flag packing assumption.
type InconsistencyKind int

const (
	NoBit         InconsistencyKind = iota // no byte changed after the field write
	MultipleBytes                          // more than one byte changed
	MultipleBits                           // one byte changed but holds several set bits
)

func (k InconsistencyKind) String() string {
	switch k {
	case NoBit:
		return "no bit set"
	case MultipleBytes:
		return "more than one nonzero byte"
	case MultipleBits:
		return "more than one bit set in byte"
	default:
		return "unknown"
	}
}

// LayoutError reports a layout inconsistency for one flag. It means either
// the catalog names a field that is not a single-bit field, or the ABI
// packs fields across byte boundaries; neither is recoverable.
type LayoutError struct {
	Flag string
	Kind InconsistencyKind
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout inconsistency for %s: %s", e.Flag, e.Kind)
}
