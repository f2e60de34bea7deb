package ui

// Disclosure tracks the open/closed flag of a fixed list of items, keyed by
// id. Items are independent: activating one never touches another.
type Disclosure struct {
	ids  []string
	open map[string]bool
}

// NewDisclosure returns a list with every id closed. Duplicate ids collapse
// into one entry; the first occurrence keeps its position.
func NewDisclosure(ids ...string) *Disclosure {
	d := &Disclosure{
		ids:  make([]string, 0, len(ids)),
		open: make(map[string]bool, len(ids)),
	}
	for _, id := range ids {
		if _, dup := d.open[id]; dup {
			continue
		}
		d.ids = append(d.ids, id)
		d.open[id] = false
	}
	return d
}

// Activate flips the item and returns its new state. Unknown ids are a no-op
// and report false.
func (d *Disclosure) Activate(id string) bool {
	cur, ok := d.open[id]
	if !ok {
		return false
	}
	d.open[id] = !cur
	return !cur
}

// Set restores a known item's state, e.g. from the flag a browser sent back.
func (d *Disclosure) Set(id string, open bool) {
	if _, ok := d.open[id]; ok {
		d.open[id] = open
	}
}

// IsOpen reports whether id is open. Unknown ids are closed.
func (d *Disclosure) IsOpen(id string) bool {
	return d.open[id]
}

// Has reports whether id belongs to the list.
func (d *Disclosure) Has(id string) bool {
	_, ok := d.open[id]
	return ok
}

// IDs returns the ids in list order.
func (d *Disclosure) IDs() []string {
	out := make([]string, len(d.ids))
	copy(out, d.ids)
	return out
}

// States returns a snapshot of every item's flag.
func (d *Disclosure) States() map[string]bool {
	out := make(map[string]bool, len(d.open))
	for id, open := range d.open {
		out[id] = open
	}
	return out
}

// StateName renders a flag as "open" or "closed".
func StateName(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
