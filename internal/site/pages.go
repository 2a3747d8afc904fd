package site

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/catalog"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/settings"
)

// DefaultWidth is assumed for sessions created before the browser has
// reported its viewport.
const DefaultWidth = 1280

// homeServices is how many services the home page previews.
const homeServices = 3

// Site serves the public pages and their view-session channel.
type Site struct {
	reg   *Registry
	pages map[string]*template.Template
}

// New creates the site on top of a session registry.
func New(reg *Registry) *Site {
	base := template.Must(template.New("base").Funcs(template.FuncMap{
		"markdown": catalog.Markdown,
	}).Parse(layoutTemplate))

	pages := map[string]string{
		"home":     homePage,
		"services": servicesPage,
		"courses":  coursesPage,
		"gallery":  galleryPage,
		"contact":  contactPage,
		"partner":  partnerPage,
	}
	s := &Site{reg: reg, pages: make(map[string]*template.Template, len(pages))}
	for name, src := range pages {
		s.pages[name] = template.Must(template.Must(base.Clone()).Parse(src))
	}
	return s
}

// Registry returns the session registry behind the site.
func (s *Site) Registry() *Registry { return s.reg }

// RegisterRoutes mounts the pages, static assets and the view channel.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.page("home", "Home", true))
	r.Get("/services", s.page("services", "Services", false))
	r.Get("/courses", s.page("courses", "Courses", false))
	r.Get("/gallery", s.page("gallery", "Gallery", true))
	r.Get("/contact", s.page("contact", "Contact", false))
	r.Get("/partner", s.page("partner", "Partner", false))

	r.Get("/static/style.css", staticAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/app.js", staticAsset("application/javascript; charset=utf-8", jsContent))

	r.Get("/ws/view", s.handleChannel)
	r.Post("/api/view/{session}/events", s.handleEvent)
}

type pageData struct {
	Title     string
	Page      string
	Theme     string
	Year      int
	Studio    catalog.Studio
	Session   string
	Fragments Fragments
	Services  []catalog.Service
	Courses   []catalog.Course
	Selected  string
}

func (s *Site) page(name, title string, interactive bool) http.HandlerFunc {
	tmpl := s.pages[name]
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{
			Title: title,
			Page:  name,
			Theme: settings.FromContext(r.Context()).Theme(),
			Year:  time.Now().Year(),
		}
		c := s.reg.Catalog()
		if interactive {
			sess := s.reg.Create(DefaultWidth)
			c = sess.Catalog()
			data.Session = sess.ID
			data.Fragments = sess.Update().Fragments
		}
		data.Studio = c.Studio
		data.Services = c.Services
		data.Courses = c.Courses
		if name == "home" && len(data.Services) > homeServices {
			data.Services = data.Services[:homeServices]
		}
		data.Selected = r.URL.Query().Get("service")

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("page", name).Msg("rendering page")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

func staticAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=300")
		w.Write([]byte(body))
	}
}
