package site

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/catalog"
)

// Registry tracks the live view sessions of the process.
type Registry struct {
	src  *catalog.Source
	opts Options
	idle time.Duration
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

// NewRegistry creates sessions from the catalog current in src. Sessions
// untouched for idle are dropped by Sweep.
func NewRegistry(src *catalog.Source, opts Options, idle time.Duration) *Registry {
	return &Registry{
		src:      src,
		opts:     opts,
		idle:     idle,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a session at the reported viewport width.
func (r *Registry) Create(width int) *Session {
	id := uuid.Must(uuid.NewV7()).String()
	s := newSession(id, r.src.Current(), width, r.opts, r.now())

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		s.Close()
		return s
	}
	r.sessions[id] = s
	r.mu.Unlock()
	return s
}

// Get returns the session and marks it as seen.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		s.touch(r.now())
	}
	return s, ok
}

// Remove tears the session down.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Len counts live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle longer than the timeout. Sessions with an open
// channel are never idle.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idle)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if s.Subscribers() > 0 {
			s.touch(r.now())
			continue
		}
		if s.idleSince().Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	if len(stale) > 0 {
		log.Debug().Int("swept", len(stale)).Int("live", r.Len()).Msg("view sessions expired")
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Sweep()
		}
	}
}

// Close tears down every session; later Creates return closed sessions.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
}

// Catalog returns the catalog new sessions will start from.
func (r *Registry) Catalog() *catalog.Catalog { return r.src.Current() }
