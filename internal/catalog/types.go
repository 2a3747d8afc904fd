package catalog

import (
	"errors"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/gallery"
)

// ErrInvalid wraps every catalog validation failure.
var ErrInvalid = errors.New("invalid catalog")

// Catalog is the static content of the studio site.
type Catalog struct {
	Studio       Studio             `yaml:"studio" json:"studio"`
	Hero         []HeroSlide        `yaml:"hero" json:"hero"`
	Services     []Service          `yaml:"services" json:"services"`
	Courses      []Course           `yaml:"courses" json:"courses"`
	Testimonials []Testimonial      `yaml:"testimonials" json:"testimonials"`
	Picker       []PickerEntry      `yaml:"picker" json:"picker"`
	Media        []gallery.Category `yaml:"media" json:"media"`
}

// Studio holds the contact details shown in the footer and contact page.
type Studio struct {
	Name    string `yaml:"name" json:"name"`
	Tagline string `yaml:"tagline" json:"tagline"`
	Email   string `yaml:"email" json:"email"`
	Phone   string `yaml:"phone" json:"phone"`
	Address string `yaml:"address" json:"address"`
}

// HeroSlide is one slide of the landing carousel.
type HeroSlide struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Image    string `yaml:"image" json:"image"`
	CTA      string `yaml:"cta" json:"cta"`
	CTALink  string `yaml:"cta_link" json:"cta_link"`
}

// Service is a bookable studio service. Description is markdown.
type Service struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Icon        string   `yaml:"icon" json:"icon"`
	Summary     string   `yaml:"summary" json:"summary"`
	Description string   `yaml:"description" json:"description"`
	Price       string   `yaml:"price" json:"price"`
	Features    []string `yaml:"features" json:"features"`
}

// Course is a workshop offered by the studio. Description is markdown.
type Course struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Level       string   `yaml:"level" json:"level"`
	Duration    string   `yaml:"duration" json:"duration"`
	Price       string   `yaml:"price" json:"price"`
	Summary     string   `yaml:"summary" json:"summary"`
	Description string   `yaml:"description" json:"description"`
	Syllabus    []string `yaml:"syllabus" json:"syllabus"`
}

// Testimonial is a client quote. Rating is 1 to 5 stars.
type Testimonial struct {
	Name   string `yaml:"name" json:"name"`
	Role   string `yaml:"role" json:"role"`
	Quote  string `yaml:"quote" json:"quote"`
	Avatar string `yaml:"avatar" json:"avatar"`
	Rating int    `yaml:"rating" json:"rating"`
}

// PickerEntry is a card of the gallery category picker. Preview is the clip
// that autoplays on the card.
type PickerEntry struct {
	Icon     string `yaml:"icon" json:"icon"`
	Title    string `yaml:"title" json:"title"`
	Category string `yaml:"category" json:"category"`
	Preview  string `yaml:"preview" json:"preview"`
}

// Category looks up a media category by name.
func (c *Catalog) Category(name string) (gallery.Category, bool) {
	for _, m := range c.Media {
		if m.Name == name {
			return m, true
		}
	}
	return gallery.Category{}, false
}

// Service looks up a service by id.
func (c *Catalog) Service(id string) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ServiceTitles lists service titles, used by the contact form's picker.
func (c *Catalog) ServiceTitles() []string {
	out := make([]string, 0, len(c.Services))
	for _, s := range c.Services {
		out = append(out, s.Title)
	}
	return out
}

// Stats summarises a catalog for the CLI.
type Stats struct {
	Slides       int
	Services     int
	Courses      int
	Testimonials int
	Categories   int
	Images       int
	Videos       int
}

// Stats counts the catalog contents.
func (c *Catalog) Stats() Stats {
	s := Stats{
		Slides:       len(c.Hero),
		Services:     len(c.Services),
		Courses:      len(c.Courses),
		Testimonials: len(c.Testimonials),
		Categories:   len(c.Media),
	}
	for _, m := range c.Media {
		s.Images += len(m.Images)
		s.Videos += len(m.Videos)
	}
	return s
}
