package site

import (
	"sync"
	"time"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/carousel"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/catalog"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/gallery"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/viewport"
)

// Options sets the pacing of every session.
type Options struct {
	HeroInterval        time.Duration
	TestimonialInterval time.Duration
	TransitionLock      time.Duration
	MobileBreakpoint    int
	// Clock drives the carousels. Defaults to the system clock.
	Clock carousel.Clock
}

// ViewportState is the layout signal as last reported by the browser.
type ViewportState struct {
	Width   int  `json:"width"`
	Mobile  bool `json:"mobile"`
	Hovered int  `json:"hovered"`
}

// Snapshot is everything a page needs to redraw its interactive parts.
type Snapshot struct {
	Hero         carousel.State     `json:"hero"`
	Testimonials carousel.State     `json:"testimonials"`
	Gallery      gallery.Snapshot   `json:"gallery"`
	Viewport     ViewportState      `json:"viewport"`
	Previews     []viewport.Preview `json:"previews"`
}

// Update is pushed to the browser after every change.
type Update struct {
	Type      string    `json:"type"`
	Session   string    `json:"session"`
	Snapshot  Snapshot  `json:"snapshot"`
	Fragments Fragments `json:"fragments"`
}

// Session is the interactive state of one browser tab. It owns two
// carousels, the gallery navigator and the viewport tracker, and pushes an
// Update to subscribers whenever any of them changes.
//
// Autoplay only runs while at least one subscriber is attached.
type Session struct {
	ID      string
	catalog *catalog.Catalog

	hero         *carousel.Carousel
	testimonials *carousel.Carousel
	viewport     *viewport.Tracker
	stopViewport func()

	// mu serialises event handling; carousels lock themselves.
	mu       sync.Mutex
	gallery  *gallery.Navigator
	rewind   int
	lastSeen time.Time

	subMu  sync.Mutex
	subs   map[int]chan Update
	nextID int

	dirty  chan struct{}
	done   chan struct{}
	pumped chan struct{}
	once   sync.Once
}

func newSession(id string, c *catalog.Catalog, width int, opts Options, now time.Time) *Session {
	s := &Session{
		ID:       id,
		catalog:  c,
		gallery:  gallery.NewNavigator(c.Media),
		viewport: viewport.NewTracker(width, opts.MobileBreakpoint),
		rewind:   viewport.NoHover,
		lastSeen: now,
		subs:     make(map[int]chan Update),
		dirty:    make(chan struct{}, 1),
		done:     make(chan struct{}),
		pumped:   make(chan struct{}),
	}
	// OnChange runs under the carousel lock, so it only flags the session.
	changed := func(carousel.State) { s.markDirty() }
	s.hero = carousel.New(len(c.Hero), carousel.Options{
		Interval:       opts.HeroInterval,
		Suspended:      true,
		TransitionLock: opts.TransitionLock,
		Clock:          opts.Clock,
		OnChange:       changed,
	})
	s.testimonials = carousel.New(len(c.Testimonials), carousel.Options{
		Interval:       opts.TestimonialInterval,
		Suspended:      true,
		TransitionLock: opts.TransitionLock,
		Clock:          opts.Clock,
		OnChange:       changed,
	})
	// Resize runs while the session is locked; listeners only flag.
	s.stopViewport = s.viewport.Subscribe(func(bool) { s.markDirty() })

	go s.pump()
	return s
}

// Catalog returns the catalog this session was created with.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

func (s *Session) markDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

// pump turns change flags into updates; bursts collapse into one.
func (s *Session) pump() {
	defer close(s.pumped)
	for {
		select {
		case <-s.done:
			return
		case <-s.dirty:
			if s.Subscribers() == 0 {
				continue
			}
			s.broadcast(s.Update())
		}
	}
}

func (s *Session) broadcast(u Update) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		// Each update is a full snapshot, so a slow reader only needs the
		// latest one.
		select {
		case ch <- u:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- u:
			default:
			}
		}
	}
}

// Subscribe returns a channel of updates. The channel is closed by cancel
// or when the session closes.
func (s *Session) Subscribe() (<-chan Update, func()) {
	ch := make(chan Update, 1)
	s.subMu.Lock()
	select {
	case <-s.done:
		s.subMu.Unlock()
		close(ch)
		return ch, func() {}
	default:
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	if len(s.subs) == 1 {
		s.suspendLocked(false)
	}
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
				if len(s.subs) == 0 {
					s.suspendLocked(true)
				}
			}
		})
	}
}

// suspendLocked holds or restarts autoplay. Callers hold subMu.
func (s *Session) suspendLocked(suspended bool) {
	s.hero.SetSuspended(suspended)
	s.testimonials.SetSuspended(suspended)
}

// Subscribers counts live subscriptions.
func (s *Session) Subscribers() int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return len(s.subs)
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Hero:         s.hero.State(),
		Testimonials: s.testimonials.State(),
		Gallery:      s.gallery.Snapshot(),
		Viewport: ViewportState{
			Width:   s.viewport.Width(),
			Mobile:  s.viewport.Mobile(),
			Hovered: s.viewport.Hovered(),
		},
		Previews: s.viewport.Previews(len(s.catalog.Picker), s.rewind),
	}
}

// Update captures the state and renders its fragments.
func (s *Session) Update() Update {
	snap := s.Snapshot()
	return Update{
		Type:      "update",
		Session:   s.ID,
		Snapshot:  snap,
		Fragments: Render(snap, s.catalog),
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close cancels the carousel timers, drops the viewport listener and ends
// every subscription. Safe to call more than once.
func (s *Session) Close() {
	s.once.Do(func() {
		s.hero.Close()
		s.testimonials.Close()
		s.stopViewport()
		s.viewport.Close()

		s.subMu.Lock()
		close(s.done)
		for id, ch := range s.subs {
			delete(s.subs, id)
			close(ch)
		}
		s.subMu.Unlock()
		<-s.pumped
	})
}
