package capset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javabind/capgen/internal/catalog"
	"github.com/javabind/capgen/internal/probe"
	"github.com/javabind/capgen/internal/probe/probetest"
)

func discoverLayout(t *testing.T) Layout {
	t.Helper()
	img := probetest.NewImage(probe.ImageSize, catalog.Count())
	layout, err := Discover(img)
	require.NoError(t, err)
	return layout
}

func TestDiscover(t *testing.T) {
	layout := discoverLayout(t)
	require.Len(t, layout, catalog.Count())

	// can_suspend is the 21st declared flag: byte 2, bit 4.
	assert.Equal(t, probe.LayoutFact{Offset: 2, Mask: 0x10}, layout["can_suspend"])
}

func TestDiscover_SizeMismatch(t *testing.T) {
	img := probetest.NewImage(8, catalog.Count())

	_, err := Discover(img)
	assert.ErrorIs(t, err, probe.ErrSizeMismatch)
}

func TestSet_EnableTouchesOneBit(t *testing.T) {
	s := New(discoverLayout(t))

	require.NoError(t, s.Enable("can_suspend"))
	assert.True(t, s.Has("can_suspend"))

	raw := s.Bytes()
	for i, b := range raw {
		if i == 2 {
			assert.Equal(t, byte(0x10), b)
		} else {
			assert.Zero(t, b, "byte %d", i)
		}
	}

	require.NoError(t, s.Disable("can_suspend"))
	assert.False(t, s.Has("can_suspend"))
	for i, b := range s.Bytes() {
		assert.Zero(t, b, "byte %d", i)
	}
}

func TestSet_UnknownCapability(t *testing.T) {
	s := New(discoverLayout(t))

	assert.False(t, s.Has("can_time_travel"))
	assert.Error(t, s.Enable("can_time_travel"))
	assert.Error(t, s.Disable("can_time_travel"))
}

func TestSet_ByteRoundTrip(t *testing.T) {
	layout := discoverLayout(t)

	s := New(layout)
	require.NoError(t, s.Enable("can_tag_objects"))
	require.NoError(t, s.Enable("can_pop_frame"))
	require.NoError(t, s.Enable("can_support_virtual_threads"))

	restored, err := FromBytes(layout, s.Bytes())
	require.NoError(t, err)
	assert.Equal(t, s.Bytes(), restored.Bytes())
	assert.True(t, restored.Has("can_pop_frame"))
	assert.False(t, restored.Has("can_suspend"))
}

func TestFromBytes_WrongSize(t *testing.T) {
	_, err := FromBytes(discoverLayout(t), make([]byte, 8))
	assert.Error(t, err)
}

func TestSet_String(t *testing.T) {
	s := New(discoverLayout(t))
	assert.Equal(t, "", s.String())

	require.NoError(t, s.Enable("can_suspend"))
	require.NoError(t, s.Enable("can_get_bytecodes"))
	assert.Equal(t, "can_get_bytecodes,can_suspend", s.String())
}
