package jvmti_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javabind/capgen/internal/catalog"
	"github.com/javabind/capgen/internal/jvmti"
	"github.com/javabind/capgen/internal/probe"
)

func newTarget(t *testing.T) *jvmti.Capabilities {
	t.Helper()
	caps, err := jvmti.New()
	if errors.Is(err, jvmti.ErrUnavailable) {
		t.Skip("built without cgo")
	}
	require.NoError(t, err)
	return caps
}

func TestCapabilities_CompiledSize(t *testing.T) {
	caps := newTarget(t)
	require.NoError(t, probe.CheckSize(caps))
	assert.Equal(t, probe.ImageSize, caps.Size())
}

func TestCapabilities_FirstFlag(t *testing.T) {
	caps := newTarget(t)

	fact, err := probe.Probe(caps, catalog.Flags()[0])
	require.NoError(t, err)
	assert.Equal(t, 0, fact.Offset)
	assert.Equal(t, byte(0x01), fact.Mask)
}

func TestCapabilities_AllFlagsSingleBit(t *testing.T) {
	caps := newTarget(t)

	probed, err := probe.All(caps, catalog.Flags())
	require.NoError(t, err)
	require.Len(t, probed, catalog.Count())

	seen := make(map[uint16]string)
	for _, p := range probed {
		enc := p.Fact.Encoded()
		if prev, ok := seen[enc]; ok {
			t.Errorf("flags %s and %s share location 0x%04X", prev, p.Flag.Name, enc)
		}
		seen[enc] = p.Flag.Name
	}
}

func TestCapabilities_HostPacksDeclarationOrder(t *testing.T) {
	// Mainstream compilers pack these bit-fields in declaration order,
	// eight per byte, least significant bit first. Asserting it here keeps
	// compiler drift visible: the probe still reports the truth either
	// way, but the downstream binding's own expectations would need a
	// fresh look if this starts failing.
	caps := newTarget(t)

	for _, flag := range catalog.Flags() {
		fact, err := probe.Probe(caps, flag)
		require.NoError(t, err, flag.Name)
		assert.Equal(t, flag.Index/8, fact.Offset, flag.Name)
		assert.Equal(t, byte(1)<<(flag.Index%8), fact.Mask, flag.Name)
	}
}

func TestCapabilities_UnknownIndex(t *testing.T) {
	caps := newTarget(t)

	assert.Error(t, caps.Set(catalog.Count()))
	assert.Error(t, caps.Set(-1))
}
