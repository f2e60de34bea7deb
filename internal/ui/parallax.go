package ui

import (
	"fmt"
	"strings"
)

// Span is an output range of the parallax mapping.
type Span struct {
	From float64
	To   float64
}

// At returns the point at fraction t of the span.
func (s Span) At(t float64) float64 {
	return s.From + (s.To-s.From)*t
}

// Interpolate maps x from [inMin, inMax] onto out, clamping outside the
// input range. An empty range yields out.From up to inMin and out.To past it.
func Interpolate(x, inMin, inMax float64, out Span) float64 {
	if inMax <= inMin {
		if x <= inMin {
			return out.From
		}
		return out.To
	}
	t := (x - inMin) / (inMax - inMin)
	switch {
	case t <= 0:
		return out.From
	case t >= 1:
		return out.To
	}
	return out.At(t)
}

// Frame is the hero transform at one scroll position.
type Frame struct {
	Y       float64
	Opacity float64
}

// Parallax maps the vertical scroll offset onto the hero's translation and
// opacity.
type Parallax struct {
	InputMax float64
	Y        Span
	Opacity  Span
}

// DefaultParallax fades the hero out and pushes it down over the first 300px
// of scroll.
func DefaultParallax() Parallax {
	return Parallax{
		InputMax: 300,
		Y:        Span{From: 0, To: 150},
		Opacity:  Span{From: 1, To: 0},
	}
}

// Map returns the transform for a scroll offset.
func (p Parallax) Map(offset float64) Frame {
	return Frame{
		Y:       Interpolate(offset, 0, p.InputMax, p.Y),
		Opacity: Interpolate(offset, 0, p.InputMax, p.Opacity),
	}
}

// Keyframe is a sampled stop of the mapping.
type Keyframe struct {
	Percent float64
	Frame
}

// Keyframes samples the mapping at steps+1 evenly spaced offsets between 0
// and InputMax. Fewer than one step is treated as one.
func (p Parallax) Keyframes(steps int) []Keyframe {
	if steps < 1 {
		steps = 1
	}
	out := make([]Keyframe, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, Keyframe{
			Percent: t * 100,
			Frame:   p.Map(t * p.InputMax),
		})
	}
	return out
}

// KeyframesCSS renders the sampled mapping as a scroll-driven CSS animation
// applied to selector.
func (p Parallax) KeyframesCSS(name, selector string, steps int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", name)
	for _, k := range p.Keyframes(steps) {
		fmt.Fprintf(&b, "  %s%% { transform: translateY(%spx); opacity: %s; }\n",
			trimFloat(k.Percent), trimFloat(k.Y), trimFloat(k.Opacity))
	}
	b.WriteString("}\n")
	fmt.Fprintf(&b, "%s {\n  animation: %s linear both;\n  animation-timeline: scroll(root block);\n  animation-range: 0 %spx;\n}\n",
		selector, name, trimFloat(p.InputMax))
	return b.String()
}

func trimFloat(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}
