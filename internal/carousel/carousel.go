// Package carousel implements an auto-advancing slide index with manual
// navigation, pause-on-hover and a transition lock.
//
// Autoplay is a re-armable one-shot timer: every change that affects pacing
// (index change, pause toggle) cancels the pending timer and arms a fresh one,
// so the next tick always lands one full interval after the last change.
package carousel

import (
	"sync"
	"time"
)

// State is a point-in-time view of a carousel. ActiveIndex is -1 when the
// carousel has no items.
type State struct {
	ActiveIndex   int  `json:"active_index"`
	ItemCount     int  `json:"item_count"`
	Paused        bool `json:"paused"`
	Transitioning bool `json:"transitioning"`
}

// Enabled reports whether the carousel has anything to show.
func (s State) Enabled() bool { return s.ItemCount > 0 }

// Options configures a Carousel.
type Options struct {
	// Interval is the autoplay period. Zero disables autoplay.
	Interval time.Duration
	// TransitionLock is how long navigation is ignored after an index change.
	TransitionLock time.Duration
	// Clock defaults to SystemClock.
	Clock Clock
	// Suspended starts the carousel with autoplay held off; see SetSuspended.
	Suspended bool
	// OnChange observes every state change. It runs with the carousel
	// locked and must not call back into the carousel.
	OnChange func(State)
}

// Carousel is safe for concurrent use.
type Carousel struct {
	mu   sync.Mutex
	opts Options

	count         int
	active        int
	paused        bool
	suspended     bool
	transitioning bool
	closed        bool

	autoplay    Timer
	autoplayGen uint64
	unlock      Timer
	unlockGen   uint64
}

// New creates a carousel over count items and starts autoplay.
func New(count int, opts Options) *Carousel {
	if count < 0 {
		count = 0
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	c := &Carousel{opts: opts, count: count, suspended: opts.Suspended}

	c.mu.Lock()
	c.armAutoplayLocked()
	c.mu.Unlock()
	return c
}

// State returns the current state.
func (c *Carousel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Next advances to the following slide, wrapping at the end. It reports
// whether the index changed.
func (c *Carousel) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepLocked(1)
}

// Prev moves to the preceding slide, wrapping at the start.
func (c *Carousel) Prev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepLocked(-1)
}

// GoTo jumps to slide i. Out-of-range indexes and the current index are
// ignored.
func (c *Carousel) GoTo(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= c.count || i == c.active {
		return false
	}
	return c.moveLocked(i)
}

// SetPaused suspends or resumes autoplay. Manual navigation is unaffected.
func (c *Carousel) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.paused == paused {
		return
	}
	c.paused = paused
	c.armAutoplayLocked()
	c.notifyLocked()
}

// SetSuspended stops or restarts the autoplay timer without touching the
// visible pause state. It is meant for when nobody is watching the carousel.
// Resuming arms a full interval.
func (c *Carousel) SetSuspended(suspended bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.suspended == suspended {
		return
	}
	c.suspended = suspended
	c.armAutoplayLocked()
}

// Close cancels all timers. The carousel ignores every call afterwards.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopAutoplayLocked()
	c.stopUnlockLocked()
}

func (c *Carousel) stateLocked() State {
	active := c.active
	if c.count == 0 {
		active = -1
	}
	return State{
		ActiveIndex:   active,
		ItemCount:     c.count,
		Paused:        c.paused,
		Transitioning: c.transitioning,
	}
}

func (c *Carousel) stepLocked(delta int) bool {
	if c.count <= 1 {
		return false
	}
	return c.moveLocked((c.active + delta + c.count) % c.count)
}

func (c *Carousel) moveLocked(target int) bool {
	if c.closed || c.transitioning {
		return false
	}
	c.active = target
	c.transitioning = true
	c.armUnlockLocked()
	c.armAutoplayLocked()
	c.notifyLocked()
	return true
}

func (c *Carousel) notifyLocked() {
	if c.opts.OnChange != nil {
		c.opts.OnChange(c.stateLocked())
	}
}

func (c *Carousel) stopAutoplayLocked() {
	if c.autoplay != nil {
		c.autoplay.Stop()
		c.autoplay = nil
	}
	// A callback already waiting on mu sees a newer generation and bails.
	c.autoplayGen++
}

func (c *Carousel) armAutoplayLocked() {
	c.stopAutoplayLocked()
	if c.closed || c.paused || c.suspended || c.count <= 1 || c.opts.Interval <= 0 {
		return
	}
	gen := c.autoplayGen
	c.autoplay = c.opts.Clock.AfterFunc(c.opts.Interval, func() { c.tick(gen) })
}

func (c *Carousel) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.autoplayGen {
		return
	}
	c.autoplay = nil
	if !c.stepLocked(1) {
		// Still animating; keep autoplay alive for the next period.
		c.armAutoplayLocked()
	}
}

func (c *Carousel) stopUnlockLocked() {
	if c.unlock != nil {
		c.unlock.Stop()
		c.unlock = nil
	}
	c.unlockGen++
}

func (c *Carousel) armUnlockLocked() {
	c.stopUnlockLocked()
	if c.opts.TransitionLock <= 0 {
		c.transitioning = false
		return
	}
	gen := c.unlockGen
	c.unlock = c.opts.Clock.AfterFunc(c.opts.TransitionLock, func() { c.release(gen) })
}

func (c *Carousel) release(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.unlockGen {
		return
	}
	c.unlock = nil
	c.transitioning = false
	c.notifyLocked()
}
