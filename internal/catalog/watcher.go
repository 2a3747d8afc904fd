package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a catalog file into a Source when it changes on disk. A
// file that fails to load leaves the previous catalog in place.
type Watcher struct {
	path     string
	src      *Source
	debounce time.Duration
	onReload func(*Catalog)

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher prepares a watcher for path. onReload may be nil.
func NewWatcher(path string, src *Source, onReload func(*Catalog)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	return &Watcher{
		path:     filepath.Clean(path),
		src:      src,
		debounce: defaultDebounce,
		onReload: onReload,
		watcher:  fw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start watches the catalog's directory; editors often replace files by
// rename, which a watch on the file itself would lose. Non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.running = true
	go w.run(ctx)
	log.Info().Str("path", w.path).Msg("watching catalog")
	return nil
}

// Stop ends the watch and waits for the loop to exit. Safe to call more
// than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.watcher.Close(); err != nil {
		log.Warn().Err(err).Msg("closing catalog watcher")
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("catalog watcher error")

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("catalog reload failed, keeping previous")
		return
	}
	w.src.Swap(c)
	st := c.Stats()
	log.Info().
		Int("categories", st.Categories).
		Int("slides", st.Slides).
		Int("testimonials", st.Testimonials).
		Msg("catalog reloaded")
	if w.onReload != nil {
		w.onReload(c)
	}
}
