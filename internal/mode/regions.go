package mode

// Panes is the in-memory Regions used by the terminal UI: a mode has a
// region only if it was registered.
type Panes struct {
	known   map[Mode]bool
	visible map[Mode]bool
}

// NewPanes registers a region for each of modes.
func NewPanes(modes ...Mode) *Panes {
	p := &Panes{
		known:   make(map[Mode]bool),
		visible: make(map[Mode]bool),
	}
	for _, m := range modes {
		p.known[m] = true
	}
	return p
}

// HideAll hides every region.
func (p *Panes) HideAll() {
	for m := range p.visible {
		delete(p.visible, m)
	}
}

// Show reveals m's region. Unregistered modes are ignored.
func (p *Panes) Show(m Mode) bool {
	if !p.known[m] {
		return false
	}
	p.visible[m] = true
	return true
}

// Visible reports whether m's region is showing.
func (p *Panes) Visible(m Mode) bool {
	return p.visible[m]
}

// VisibleCount is the number of regions showing.
func (p *Panes) VisibleCount() int {
	return len(p.visible)
}
