package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/carousel"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/gallery"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/viewport"
)

func TestRenderHeroMarksActiveSlide(t *testing.T) {
	snap := Snapshot{Hero: carousel.State{ActiveIndex: 2, ItemCount: 3}}
	f := Render(snap, testCatalog())

	html := string(f.Hero)
	assert.Contains(t, html, `data-active="2"`)
	assert.Equal(t, 1, strings.Count(html, `class="slide active"`))
	assert.Contains(t, html, `data-event="hero.goto" data-index="2"`)
	assert.Contains(t, html, "Light")
}

func TestRenderEmptyCarousels(t *testing.T) {
	c := testCatalog()
	c.Hero = nil
	c.Testimonials = nil
	snap := Snapshot{
		Hero:         carousel.State{ActiveIndex: -1},
		Testimonials: carousel.State{ActiveIndex: -1},
	}
	f := Render(snap, c)

	assert.Contains(t, string(f.Hero), "hero-empty")
	assert.NotContains(t, string(f.Hero), "hero.next")
	assert.Contains(t, string(f.Testimonials), "No testimonials yet.")
}

func TestRenderTestimonialStars(t *testing.T) {
	snap := Snapshot{Testimonials: carousel.State{ActiveIndex: 1, ItemCount: 2}}
	html := string(Render(snap, testCatalog()).Testimonials)
	assert.Contains(t, html, "★★★★☆")
	assert.Contains(t, html, "Stunning work.")
}

func TestRenderGalleryViews(t *testing.T) {
	c := testCatalog()

	browsing := string(Render(Snapshot{Gallery: gallery.Snapshot{View: gallery.ViewBrowsing}}, c).Gallery)
	assert.Contains(t, browsing, `data-category="Wedding"`)
	assert.NotContains(t, browsing, "lightbox")

	empty := string(Render(Snapshot{Gallery: gallery.Snapshot{
		View: gallery.ViewCategory, Category: "Portrait", Tab: gallery.TabVideos, Empty: true,
	}}, c).Gallery)
	assert.Contains(t, empty, "Nothing in Portrait yet.")
	assert.Contains(t, empty, `class="tab active" data-event="gallery.tab" data-tab="videos"`)

	items := c.Media[0].Images
	lb := string(Render(Snapshot{Gallery: gallery.Snapshot{
		View: gallery.ViewLightbox, Category: "Wedding", Tab: gallery.TabImages, Items: items,
		Lightbox: gallery.Lightbox{Kind: gallery.KindImage, Index: 3, URL: items[3]},
	}}, c).Gallery)
	assert.Contains(t, lb, `class="lightbox"`)
	assert.Contains(t, lb, "4 / 5")
	assert.Contains(t, lb, `class="strip-thumb active" data-event="gallery.jump" data-index="3"`)
}

func TestRenderVideoLightboxHasNoStrip(t *testing.T) {
	c := testCatalog()
	items := c.Media[0].Videos
	html := string(Render(Snapshot{Gallery: gallery.Snapshot{
		View: gallery.ViewLightbox, Category: "Wedding", Tab: gallery.TabVideos, Items: items,
		Lightbox: gallery.Lightbox{Kind: gallery.KindVideo, Index: 0, URL: items[0]},
	}}, c).Gallery)
	assert.Contains(t, html, "<video class=\"stage\"")
	assert.NotContains(t, html, "strip")
}

func TestRenderPreviews(t *testing.T) {
	snap := Snapshot{Previews: []viewport.Preview{
		{Index: 0, Rewind: true},
		{Index: 1, Playing: true},
		{Index: 2},
	}}
	html := string(Render(snap, testCatalog()).Previews)
	assert.Contains(t, html, `data-preview="0" data-playing="false" data-rewind="true"`)
	assert.Contains(t, html, `data-preview="1" data-playing="true"`)
	assert.Equal(t, 1, strings.Count(html, " autoplay"))
}

func TestRenderEscapesCatalogText(t *testing.T) {
	c := testCatalog()
	c.Hero[0].Title = "<script>alert(1)</script>"
	html := string(Render(Snapshot{Hero: carousel.State{ItemCount: 3}}, c).Hero)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
