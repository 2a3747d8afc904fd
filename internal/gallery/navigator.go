// Package gallery drives the portfolio drill-down: a category picker, a
// two-tab category detail view and a lightbox overlay on top of it.
package gallery

import "fmt"

// Navigator holds the drill-down state for one visitor. It is not safe for
// concurrent use; the owner serialises calls.
//
// Every operation that does not apply in the current state is ignored and
// reports false.
type Navigator struct {
	categories map[string]Category
	names      []string

	selected *Category
	tab      Tab
	open     bool
	// index remembers the lightbox position separately for each tab.
	index map[Tab]int
}

// NewNavigator creates a navigator in the browsing view. Categories keep the
// order given.
func NewNavigator(categories []Category) *Navigator {
	n := &Navigator{
		categories: make(map[string]Category, len(categories)),
		index:      make(map[Tab]int, 2),
		tab:        TabImages,
	}
	for _, c := range categories {
		if _, dup := n.categories[c.Name]; dup {
			continue
		}
		n.categories[c.Name] = c
		n.names = append(n.names, c.Name)
	}
	return n
}

// Categories lists the category names in display order.
func (n *Navigator) Categories() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// View reports the current drill-down level.
func (n *Navigator) View() View {
	switch {
	case n.selected == nil:
		return ViewBrowsing
	case n.open:
		return ViewLightbox
	default:
		return ViewCategory
	}
}

// SelectCategory opens the detail view of the named category on the images
// tab, closing any open lightbox.
func (n *Navigator) SelectCategory(name string) error {
	c, ok := n.categories[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	n.selected = &c
	n.tab = TabImages
	n.open = false
	n.index = make(map[Tab]int, 2)
	return nil
}

// SwitchTab changes the listed media type of the selected category.
func (n *Navigator) SwitchTab(t Tab) bool {
	if n.View() != ViewCategory || !t.Valid() || t == n.tab {
		return false
	}
	n.tab = t
	return true
}

// Back returns to the category picker, force-closing the lightbox.
func (n *Navigator) Back() bool {
	if n.selected == nil {
		return false
	}
	n.selected = nil
	n.open = false
	n.tab = TabImages
	n.index = make(map[Tab]int, 2)
	return true
}

// CanOpen reports whether the current tab has anything to open.
func (n *Navigator) CanOpen() bool {
	return n.selected != nil && len(n.items()) > 0
}

// Open shows item i of the given kind in the lightbox. It is refused when
// the sequence is empty or i is out of range.
func (n *Navigator) Open(kind Kind, i int) bool {
	if n.View() != ViewCategory || (kind != KindImage && kind != KindVideo) {
		return false
	}
	tab := kind.Tab()
	seq := n.selected.Items(tab)
	if len(seq) == 0 || i < 0 || i >= len(seq) {
		return false
	}
	n.tab = tab
	n.index[tab] = i
	n.open = true
	return true
}

// Close hides the lightbox, keeping category and tab.
func (n *Navigator) Close() bool {
	if !n.open {
		return false
	}
	n.open = false
	return true
}

// Next moves the lightbox forward, wrapping to the first item.
func (n *Navigator) Next() bool { return n.step(1) }

// Prev moves the lightbox back, wrapping to the last item.
func (n *Navigator) Prev() bool { return n.step(-1) }

func (n *Navigator) step(delta int) bool {
	if !n.open {
		return false
	}
	size := len(n.items())
	if size == 0 {
		return false
	}
	n.index[n.tab] = (n.currentIndex() + delta + size) % size
	return true
}

// JumpTo sets the lightbox index directly from the thumbnail strip. Only
// the images tab has a strip.
func (n *Navigator) JumpTo(i int) bool {
	if !n.open || n.tab != TabImages {
		return false
	}
	if i < 0 || i >= len(n.items()) || i == n.currentIndex() {
		return false
	}
	n.index[n.tab] = i
	return true
}

// Lightbox returns the overlay state.
func (n *Navigator) Lightbox() Lightbox {
	if !n.open {
		return Lightbox{Kind: KindNone}
	}
	items := n.items()
	i := n.currentIndex()
	return Lightbox{Kind: KindOf(n.tab), Index: i, URL: items[i]}
}

// Snapshot returns a copy of the state for rendering.
func (n *Navigator) Snapshot() Snapshot {
	s := Snapshot{View: n.View(), Lightbox: n.Lightbox()}
	if n.selected == nil {
		return s
	}
	items := n.items()
	s.Category = n.selected.Name
	s.Tab = n.tab
	s.Items = append([]string(nil), items...)
	s.Empty = len(items) == 0
	return s
}

// items is always derived from the current (category, tab) pair.
func (n *Navigator) items() []string {
	if n.selected == nil {
		return nil
	}
	return n.selected.Items(n.tab)
}

// currentIndex clamps the remembered index to the current sequence.
func (n *Navigator) currentIndex() int {
	size := len(n.items())
	i := n.index[n.tab]
	switch {
	case size == 0 || i < 0:
		return 0
	case i >= size:
		return size - 1
	default:
		return i
	}
}
