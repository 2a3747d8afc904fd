// Package viewport decides which gallery preview clips play, based on the
// visitor's window width and which picker card is hovered.
package viewport

import "sync"

// NoHover is the hovered index when the pointer is over no card.
const NoHover = -1

// IsMobile reports whether width falls below the mobile breakpoint.
func IsMobile(width, breakpoint int) bool {
	return width < breakpoint
}

// ShouldAutoplay reports whether the preview clip of card index plays.
// On mobile every clip plays muted and looped; on desktop only the hovered
// card plays.
func ShouldAutoplay(isMobile bool, hoveredIndex, index int) bool {
	if isMobile {
		return true
	}
	return hoveredIndex != NoHover && index == hoveredIndex
}

// Preview is the playback state of one picker card.
type Preview struct {
	Index   int  `json:"index"`
	Playing bool `json:"playing"`
	Rewind  bool `json:"rewind,omitempty"`
}

// Tracker follows the width and hover signals of one page. It is safe for
// concurrent use.
type Tracker struct {
	mu         sync.Mutex
	breakpoint int
	width      int
	hovered    int

	nextID    int
	listeners map[int]func(mobile bool)
}

// NewTracker starts with the width reported on connect.
func NewTracker(width, breakpoint int) *Tracker {
	return &Tracker{
		breakpoint: breakpoint,
		width:      width,
		hovered:    NoHover,
		listeners:  make(map[int]func(bool)),
	}
}

// Mobile reports the current layout mode.
func (t *Tracker) Mobile() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return IsMobile(t.width, t.breakpoint)
}

// Width returns the last reported width.
func (t *Tracker) Width() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width
}

// Hovered returns the hovered card index or NoHover.
func (t *Tracker) Hovered() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hovered
}

// Resize records a new width. Listeners are told when the layout mode flips.
func (t *Tracker) Resize(width int) (flipped bool) {
	t.mu.Lock()
	was := IsMobile(t.width, t.breakpoint)
	t.width = width
	now := IsMobile(t.width, t.breakpoint)
	var fns []func(bool)
	if was != now {
		fns = t.listenersLocked()
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	return was != now
}

// Hover marks card i as hovered. On desktop it returns the previously
// hovered card, which must be paused and rewound, or NoHover.
func (t *Tracker) Hover(i int) (rewind int) {
	if i < 0 {
		return t.Leave()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.hovered
	t.hovered = i
	if IsMobile(t.width, t.breakpoint) || prev == i {
		return NoHover
	}
	return prev
}

// Leave clears the hover. On desktop it returns the card that stopped
// playing, or NoHover.
func (t *Tracker) Leave() (rewind int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.hovered
	t.hovered = NoHover
	if IsMobile(t.width, t.breakpoint) {
		return NoHover
	}
	return prev
}

// Previews evaluates the autoplay rule for count cards. rewind marks the
// card returned by the last Hover or Leave.
func (t *Tracker) Previews(count, rewind int) []Preview {
	t.mu.Lock()
	mobile := IsMobile(t.width, t.breakpoint)
	hovered := t.hovered
	t.mu.Unlock()

	out := make([]Preview, count)
	for i := range out {
		playing := ShouldAutoplay(mobile, hovered, i)
		out[i] = Preview{Index: i, Playing: playing, Rewind: !playing && i == rewind}
	}
	return out
}

// Subscribe registers fn for layout mode flips. The returned func removes it.
func (t *Tracker) Subscribe(fn func(mobile bool)) (cancel func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.listeners, id)
			t.mu.Unlock()
		})
	}
}

// Close drops every listener.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.listeners = make(map[int]func(bool))
	t.mu.Unlock()
}

func (t *Tracker) listenersLocked() []func(bool) {
	fns := make([]func(bool), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	return fns
}
