package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/catalog"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/config"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/db"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/server"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/site"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/submissions"
)

func TestRegisterRoutesServesEveryFeature(t *testing.T) {
	cat, err := catalog.Load("../catalog.yml")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	defer database.Close()

	cfg := config.DefaultConfig()
	feed := submissions.NewFeed()
	defer feed.Close()
	svc := submissions.NewService(submissions.NewSQLStore(database), feed, nil)

	reg := site.NewRegistry(catalog.NewSource(cat), site.Options{
		HeroInterval:        cfg.Carousel.HeroInterval(),
		TestimonialInterval: cfg.Carousel.TestimonialInterval(),
		TransitionLock:      cfg.Carousel.TransitionLock(),
		MobileBreakpoint:    cfg.Viewport.MobileBreakpoint,
	}, cfg.Session.IdleTimeout())
	defer reg.Close()

	srv := server.New(server.Config{})
	registerRoutes(srv.Router(), cfg, reg, svc)
	r := srv.Router()

	for _, path := range []string{"/", "/services", "/courses", "/gallery", "/contact", "/partner", "/healthz", "/api/settings/theme", "/admin"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}

	body := `{"name":"Ada","email":"ada@example.com","message":"Hello"}`
	req := httptest.NewRequest("POST", "/api/forms/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST contact: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/submissions", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ada@example.com") {
		t.Errorf("admin list: got %d %s", w.Code, w.Body.String())
	}
}
