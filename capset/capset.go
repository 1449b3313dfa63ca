// Package capset provides a capability set over the structure's raw byte
// image, addressed through probed layout facts instead of compiled-in
// field access. It is the consumer-side counterpart of the generated
// constants: a binding that only sees the structure as bytes can still
// read and write individual flags.
package capset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/javabind/capgen/internal/catalog"
	"github.com/javabind/capgen/internal/probe"
)

// Layout maps capability names to their discovered byte offset and bit mask.
type Layout map[string]probe.LayoutFact

// Discover probes the full catalog against the target and returns the
// resulting layout.
func Discover(t probe.Target) (Layout, error) {
	probed, err := probe.All(t, catalog.Flags())
	if err != nil {
		return nil, err
	}
	l := make(Layout, len(probed))
	for _, p := range probed {
		l[p.Flag.Name] = p.Fact
	}
	return l, nil
}

// Set is one capability structure image addressed through a Layout.
type Set struct {
	layout Layout
	raw    [probe.ImageSize]byte
}

// New returns an empty set using the given layout.
func New(layout Layout) *Set {
	return &Set{layout: layout}
}

// FromBytes returns a set initialized from a raw structure image. The
// slice must be exactly the structure's total size.
func FromBytes(layout Layout, b []byte) (*Set, error) {
	if len(b) != probe.ImageSize {
		return nil, fmt.Errorf("capset: image is %d bytes, expected %d", len(b), probe.ImageSize)
	}
	s := New(layout)
	copy(s.raw[:], b)
	return s, nil
}

// Bytes returns a copy of the raw structure image.
func (s *Set) Bytes() []byte {
	out := make([]byte, probe.ImageSize)
	copy(out, s.raw[:])
	return out
}

// Has reports whether the named capability is set. Unknown names read as
// unset.
func (s *Set) Has(name string) bool {
	fact, ok := s.layout[name]
	if !ok {
		return false
	}
	return s.raw[fact.Offset]&fact.Mask != 0
}

// Enable sets the named capability.
func (s *Set) Enable(name string) error {
	fact, ok := s.layout[name]
	if !ok {
		return fmt.Errorf("capset: unknown capability %s", name)
	}
	s.raw[fact.Offset] |= fact.Mask
	return nil
}

// Disable clears the named capability.
func (s *Set) Disable(name string) error {
	fact, ok := s.layout[name]
	if !ok {
		return fmt.Errorf("capset: unknown capability %s", name)
	}
	s.raw[fact.Offset] &^= fact.Mask
	return nil
}

// Names returns the enabled capabilities sorted by name.
func (s *Set) Names() []string {
	var names []string
	for name := range s.layout {
		if s.Has(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (s *Set) String() string {
	return strings.Join(s.Names(), ",")
}
