package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisclosureInitiallyClosed(t *testing.T) {
	t.Parallel()

	d := NewDisclosure("001", "002", "003", "004")
	for _, id := range d.IDs() {
		assert.False(t, d.IsOpen(id), id)
	}
}

func TestDisclosureActivateOnlyAffectsTarget(t *testing.T) {
	t.Parallel()

	d := NewDisclosure("001", "002", "003", "004")
	require.True(t, d.Activate("002"))

	assert.Equal(t, map[string]bool{
		"001": false,
		"002": true,
		"003": false,
		"004": false,
	}, d.States())
}

func TestDisclosureTwoCycle(t *testing.T) {
	t.Parallel()

	d := NewDisclosure("a", "b")
	assert.True(t, d.Activate("a"))
	assert.True(t, d.IsOpen("a"))
	assert.False(t, d.Activate("a"))
	assert.False(t, d.IsOpen("a"))
}

func TestDisclosureItemsAreIndependent(t *testing.T) {
	t.Parallel()

	d := NewDisclosure("a", "b")
	d.Activate("a")
	d.Activate("b")
	require.True(t, d.IsOpen("a"))
	require.True(t, d.IsOpen("b"))

	d.Activate("a")
	assert.False(t, d.IsOpen("a"))
	assert.True(t, d.IsOpen("b"), "closing a must not close b")
}

func TestDisclosureUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	d := NewDisclosure("a")
	assert.False(t, d.Activate("zzz"))
	assert.False(t, d.Has("zzz"))
	d.Set("zzz", true)
	assert.False(t, d.IsOpen("zzz"))
	assert.Equal(t, map[string]bool{"a": false}, d.States())
}

func TestDisclosureDuplicateIDs(t *testing.T) {
	t.Parallel()

	d := NewDisclosure("a", "b", "a")
	assert.Equal(t, []string{"a", "b"}, d.IDs())
}

func TestDisclosureSetRestoresState(t *testing.T) {
	t.Parallel()

	d := NewDisclosure("a", "b")
	d.Set("b", true)
	assert.False(t, d.Activate("b"))
	assert.Equal(t, "closed", StateName(d.IsOpen("b")))
	assert.Equal(t, "open", StateName(true))
}
