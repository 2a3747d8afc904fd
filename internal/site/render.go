package site

import (
	"bytes"
	"html/template"

	"github.com/rs/zerolog/log"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/carousel"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/catalog"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/gallery"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/viewport"
)

// Fragments are the server-rendered parts of a page that change with the
// session state.
type Fragments struct {
	Hero         template.HTML `json:"hero"`
	Testimonials template.HTML `json:"testimonials"`
	Gallery      template.HTML `json:"gallery"`
	Previews     template.HTML `json:"previews"`
}

var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"stars": stars,
	"add":   func(a, b int) int { return a + b },
}).Parse(heroFragment + testimonialsFragment + galleryFragment + previewsFragment))

type heroData struct {
	State  carousel.State
	Slides []catalog.HeroSlide
}

type testimonialsData struct {
	State carousel.State
	Items []catalog.Testimonial
}

type galleryData struct {
	Snap   gallery.Snapshot
	Picker []catalog.PickerEntry
}

type previewCard struct {
	Entry   catalog.PickerEntry
	Preview viewport.Preview
}

type previewsData struct {
	Mobile bool
	Cards  []previewCard
}

// Render draws every fragment for snap. It reads nothing but its arguments.
func Render(snap Snapshot, c *catalog.Catalog) Fragments {
	cards := make([]previewCard, 0, len(c.Picker))
	for i, e := range c.Picker {
		p := viewport.Preview{Index: i}
		if i < len(snap.Previews) {
			p = snap.Previews[i]
		}
		cards = append(cards, previewCard{Entry: e, Preview: p})
	}
	return Fragments{
		Hero:         execute("hero", heroData{State: snap.Hero, Slides: c.Hero}),
		Testimonials: execute("testimonials", testimonialsData{State: snap.Testimonials, Items: c.Testimonials}),
		Gallery:      execute("gallery", galleryData{Snap: snap.Gallery, Picker: c.Picker}),
		Previews:     execute("previews", previewsData{Mobile: snap.Viewport.Mobile, Cards: cards}),
	}
}

func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("fragment", name).Msg("render failed")
		return ""
	}
	return template.HTML(buf.String())
}

func stars(n int) string {
	out := make([]rune, 0, 5)
	for i := 1; i <= 5; i++ {
		if i <= n {
			out = append(out, '★')
		} else {
			out = append(out, '☆')
		}
	}
	return string(out)
}
