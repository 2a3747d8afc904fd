package gallery

import "errors"

// ErrUnknownCategory is returned when selecting a category that is not in
// the media set.
var ErrUnknownCategory = errors.New("unknown gallery category")

// View identifies which level of the drill-down is showing.
type View string

const (
	ViewBrowsing View = "browsing"
	ViewCategory View = "category"
	ViewLightbox View = "lightbox"
)

// Tab selects which media sequence of a category is listed.
type Tab string

const (
	TabImages Tab = "images"
	TabVideos Tab = "videos"
)

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool { return t == TabImages || t == TabVideos }

// Kind is the media type shown in the lightbox.
type Kind string

const (
	KindNone  Kind = ""
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Tab returns the tab that lists media of this kind.
func (k Kind) Tab() Tab {
	if k == KindVideo {
		return TabVideos
	}
	return TabImages
}

// KindOf returns the lightbox kind for items of tab t.
func KindOf(t Tab) Kind {
	if t == TabVideos {
		return KindVideo
	}
	return KindImage
}

// Category is one portfolio category with its ordered media.
type Category struct {
	Name   string   `json:"name" yaml:"name"`
	Images []string `json:"images" yaml:"images"`
	Videos []string `json:"videos" yaml:"videos"`
}

// Items returns the sequence listed under tab t.
func (c Category) Items(t Tab) []string {
	if t == TabVideos {
		return c.Videos
	}
	return c.Images
}

// Lightbox describes the overlay. Kind is KindNone when it is closed.
type Lightbox struct {
	Kind  Kind   `json:"kind"`
	Index int    `json:"index"`
	URL   string `json:"url,omitempty"`
}

// Snapshot is a render-ready copy of the navigator state.
type Snapshot struct {
	View     View     `json:"view"`
	Category string   `json:"category,omitempty"`
	Tab      Tab      `json:"tab,omitempty"`
	Items    []string `json:"items,omitempty"`
	// Empty is set when the selected tab has nothing to show; the page
	// renders an empty-state message instead of thumbnails.
	Empty    bool     `json:"empty"`
	Lightbox Lightbox `json:"lightbox"`
}
