package site

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/carousel"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/gallery"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/viewport"
)

var (
	// ErrUnknownEvent is returned for an event type no component handles.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrBadEvent is returned when an event lacks a field its type needs.
	ErrBadEvent = errors.New("malformed event")
)

// Event is one interaction reported by the browser.
type Event struct {
	Type     string       `json:"type"`
	Index    *int         `json:"index,omitempty"`
	Paused   *bool        `json:"paused,omitempty"`
	Category string       `json:"category,omitempty"`
	Tab      gallery.Tab  `json:"tab,omitempty"`
	Kind     gallery.Kind `json:"kind,omitempty"`
	Width    int          `json:"width,omitempty"`
}

// Apply routes ev to the component it targets. changed is false when the
// event was valid but ignored in the current state, e.g. a navigation
// during the transition lock.
func (s *Session) Apply(ev Event) (changed bool, err error) {
	target, action, _ := strings.Cut(ev.Type, ".")

	s.mu.Lock()
	switch target {
	case "hero":
		changed, err = applyCarousel(s.hero, action, ev)
	case "testimonials":
		changed, err = applyCarousel(s.testimonials, action, ev)
	case "gallery":
		changed, err = s.applyGallery(action, ev)
	case "viewport":
		changed, err = s.applyViewport(action, ev)
	case "preview":
		changed, err = s.applyPreview(action, ev)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	s.mu.Unlock()

	if err != nil {
		return false, err
	}
	// Carousels report their own changes.
	if changed && target != "hero" && target != "testimonials" {
		s.markDirty()
	}
	return changed, nil
}

func applyCarousel(c *carousel.Carousel, action string, ev Event) (bool, error) {
	switch action {
	case "next":
		return c.Next(), nil
	case "prev":
		return c.Prev(), nil
	case "goto":
		if ev.Index == nil {
			return false, fmt.Errorf("%w: goto needs index", ErrBadEvent)
		}
		return c.GoTo(*ev.Index), nil
	case "pause":
		if ev.Paused == nil {
			return false, fmt.Errorf("%w: pause needs paused", ErrBadEvent)
		}
		before := c.State().Paused
		c.SetPaused(*ev.Paused)
		return c.State().Paused != before, nil
	}
	return false, fmt.Errorf("%w: carousel action %q", ErrUnknownEvent, action)
}

func (s *Session) applyGallery(action string, ev Event) (bool, error) {
	g := s.gallery
	switch action {
	case "select":
		if err := g.SelectCategory(ev.Category); err != nil {
			return false, err
		}
		return true, nil
	case "tab":
		return g.SwitchTab(ev.Tab), nil
	case "back":
		return g.Back(), nil
	case "open":
		if ev.Index == nil {
			return false, fmt.Errorf("%w: open needs index", ErrBadEvent)
		}
		kind := ev.Kind
		if kind == gallery.KindNone {
			kind = gallery.KindOf(g.Snapshot().Tab)
		}
		return g.Open(kind, *ev.Index), nil
	case "close":
		return g.Close(), nil
	case "next":
		return g.Next(), nil
	case "prev":
		return g.Prev(), nil
	case "jump":
		if ev.Index == nil {
			return false, fmt.Errorf("%w: jump needs index", ErrBadEvent)
		}
		return g.JumpTo(*ev.Index), nil
	}
	return false, fmt.Errorf("%w: gallery action %q", ErrUnknownEvent, action)
}

func (s *Session) applyViewport(action string, ev Event) (bool, error) {
	if action != "resize" {
		return false, fmt.Errorf("%w: viewport action %q", ErrUnknownEvent, action)
	}
	if ev.Width <= 0 {
		return false, fmt.Errorf("%w: resize needs a positive width", ErrBadEvent)
	}
	if s.viewport.Width() == ev.Width {
		return false, nil
	}
	if s.viewport.Resize(ev.Width) {
		s.rewind = viewport.NoHover
	}
	return true, nil
}

func (s *Session) applyPreview(action string, ev Event) (bool, error) {
	before := s.viewport.Hovered()
	switch action {
	case "hover":
		if ev.Index == nil || *ev.Index < 0 {
			return false, fmt.Errorf("%w: hover needs index", ErrBadEvent)
		}
		s.rewind = s.viewport.Hover(*ev.Index)
	case "leave":
		s.rewind = s.viewport.Leave()
	default:
		return false, fmt.Errorf("%w: preview action %q", ErrUnknownEvent, action)
	}
	return s.viewport.Hovered() != before, nil
}
