package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarqueeTrackDuplicatesOnceInOrder(t *testing.T) {
	t.Parallel()

	src := []string{"a", "b", "c"}
	m := NewMarquee(src, 30*time.Second)

	track := m.Track()
	require.Len(t, track, 2*len(src))
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, track)
}

func TestMarqueeCopiesSource(t *testing.T) {
	t.Parallel()

	src := []int{1, 2}
	m := NewMarquee(src, time.Second)
	src[0] = 99

	assert.Equal(t, []int{1, 2, 1, 2}, m.Track())
	assert.Equal(t, 2, m.Len())
}

func TestMarqueeEmpty(t *testing.T) {
	t.Parallel()

	m := NewMarquee[string](nil, time.Second)
	assert.Empty(t, m.Track())
	assert.Zero(t, m.Progress(500*time.Millisecond))
	assert.Equal(t, "animation: none;", m.AnimationCSS("marquee"))
}

func TestMarqueeLoops(t *testing.T) {
	t.Parallel()

	m := NewMarquee([]string{"a", "b"}, 10*time.Second)

	assert.Zero(t, m.Progress(0))
	assert.InDelta(t, 0.25, m.Progress(2500*time.Millisecond), 1e-9)
	assert.Zero(t, m.Progress(10*time.Second), "a full cycle restarts at the origin")
	assert.InDelta(t, 0.5, m.Progress(35*time.Second), 1e-9)
	assert.InDelta(t, 0.9, m.Progress(-1*time.Second), 1e-9)
}

func TestMarqueeOffsetSpansOneSourceWidth(t *testing.T) {
	t.Parallel()

	m := NewMarquee([]string{"a", "b"}, 4*time.Second)
	const width = 800.0

	assert.Zero(t, m.Offset(0, width))
	assert.InDelta(t, -400, m.Offset(2*time.Second, width), 1e-9)
	assert.InDelta(t, -600, m.Offset(3*time.Second, width), 1e-9)
	assert.Zero(t, m.Offset(4*time.Second, width))

	for ms := 0; ms < 12000; ms += 250 {
		off := m.Offset(time.Duration(ms)*time.Millisecond, width)
		assert.LessOrEqual(t, off, 0.0)
		assert.Greater(t, off, -width)
	}
}

func TestMarqueeAnimationCSS(t *testing.T) {
	t.Parallel()

	m := NewMarquee([]string{"a"}, 40*time.Second)
	assert.Equal(t, "animation: marquee 40s linear infinite;", m.AnimationCSS("marquee"))
}
