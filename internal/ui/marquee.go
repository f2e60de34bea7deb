package ui

import (
	"fmt"
	"time"
)

// Marquee loops a fixed list of items horizontally. The rendered track is the
// source list followed by itself, and one cycle moves the track left by
// exactly one source-list width before snapping back to the origin, so the
// wrap is invisible.
type Marquee[T any] struct {
	items    []T
	duration time.Duration
}

// NewMarquee copies items and cycles them once per duration.
func NewMarquee[T any](items []T, duration time.Duration) *Marquee[T] {
	src := make([]T, len(items))
	copy(src, items)
	return &Marquee[T]{items: src, duration: duration}
}

// Len is the number of source items.
func (m *Marquee[T]) Len() int {
	return len(m.items)
}

// Duration is the length of one cycle.
func (m *Marquee[T]) Duration() time.Duration {
	return m.duration
}

// Track returns the source list concatenated with itself once.
func (m *Marquee[T]) Track() []T {
	track := make([]T, 0, 2*len(m.items))
	track = append(track, m.items...)
	return append(track, m.items...)
}

// Progress is the fraction of the current cycle completed after elapsed,
// in [0, 1). A marquee with no items or no duration never moves.
func (m *Marquee[T]) Progress(elapsed time.Duration) float64 {
	if len(m.items) == 0 || m.duration <= 0 {
		return 0
	}
	phase := elapsed % m.duration
	if phase < 0 {
		phase += m.duration
	}
	return float64(phase) / float64(m.duration)
}

// Offset is the horizontal translation of the track after elapsed, given the
// rendered width of one source list. It runs from 0 towards -width.
func (m *Marquee[T]) Offset(elapsed time.Duration, width float64) float64 {
	p := m.Progress(elapsed)
	if p == 0 {
		return 0
	}
	return -p * width
}

// AnimationCSS is the inline declaration driving the CSS rendition of the
// loop. The keyframes translate the doubled track by -50%, one source width.
func (m *Marquee[T]) AnimationCSS(name string) string {
	if len(m.items) == 0 || m.duration <= 0 {
		return "animation: none;"
	}
	return fmt.Sprintf("animation: %s %gs linear infinite;", name, m.duration.Seconds())
}
