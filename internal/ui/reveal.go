package ui

import (
	"fmt"
	"time"
)

// DefaultStagger is the delay between consecutive items of a revealed list.
const DefaultStagger = 100 * time.Millisecond

// Stagger is the fade-in delay of the item at index.
func Stagger(index int, step time.Duration) time.Duration {
	if index <= 0 || step <= 0 {
		return 0
	}
	return time.Duration(index) * step
}

// DelayCSS renders a stagger delay as the --delay custom property read by the
// reveal animation.
func DelayCSS(index int, step time.Duration) string {
	return fmt.Sprintf("--delay: %gs;", Stagger(index, step).Seconds())
}
