package ui

import "strings"

// NavAction names a transition of the mobile navigation menu.
type NavAction string

const (
	NavActionToggle   NavAction = "toggle"
	NavActionNavigate NavAction = "navigate"
	NavActionClose    NavAction = "close"
)

// ParseNavAction maps a request value onto a NavAction. The empty string
// means toggle, which is what the menu button sends.
func ParseNavAction(s string) (NavAction, bool) {
	switch a := NavAction(strings.ToLower(strings.TrimSpace(s))); a {
	case "":
		return NavActionToggle, true
	case NavActionToggle, NavActionNavigate, NavActionClose:
		return a, true
	default:
		return "", false
	}
}

// NavToggle is the open flag of the mobile menu. The zero value is closed.
type NavToggle struct {
	Open bool
}

// Toggle flips the menu.
func (t *NavToggle) Toggle() {
	t.Open = !t.Open
}

// Navigate closes the menu after one of its links was followed.
func (t *NavToggle) Navigate() {
	t.Open = false
}

// Close closes the menu.
func (t *NavToggle) Close() {
	t.Open = false
}

// Apply runs the transition for action and reports the resulting state.
// Unknown actions leave the menu as it is.
func (t *NavToggle) Apply(action NavAction) bool {
	switch action {
	case NavActionToggle:
		t.Toggle()
	case NavActionNavigate:
		t.Navigate()
	case NavActionClose:
		t.Close()
	}
	return t.Open
}
