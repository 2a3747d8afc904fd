package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/catalog"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/gallery"
	"github.com/nivin77789/studio-glow-vue-sub000/internal/settings"
)

func setupSite(t *testing.T) (*Site, chi.Router) {
	t.Helper()
	return setupSiteWithClock(t, &manualClock{})
}

func setupSiteWithClock(t *testing.T, clock *manualClock) (*Site, chi.Router) {
	t.Helper()
	reg := NewRegistry(catalog.NewSource(testCatalog()), testOptions(clock), time.Hour)
	t.Cleanup(reg.Close)

	s := New(reg)
	r := chi.NewRouter()
	r.Use(settings.Middleware(false))
	s.RegisterRoutes(r)
	return s, r
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPagesRender(t *testing.T) {
	_, r := setupSite(t)

	cases := map[string]string{
		"/":         "Kind words",
		"/services": "<strong>day</strong>",
		"/courses":  "New courses are coming soon.",
		"/gallery":  `data-fragment="gallery"`,
		"/contact":  `data-form="contact"`,
		"/partner":  `name="company"`,
	}
	for path, want := range cases {
		w := get(r, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, want) {
			t.Errorf("%s: expected %q in page", path, want)
		}
		if !strings.Contains(body, "Studio Glow") {
			t.Errorf("%s: expected studio name", path)
		}
	}
}

func TestInteractivePagesCreateSessions(t *testing.T) {
	s, r := setupSite(t)

	if body := get(r, "/services").Body.String(); !strings.Contains(body, `data-session=""`) {
		t.Error("static pages should not open a session")
	}
	if s.Registry().Len() != 0 {
		t.Fatalf("expected no sessions, got %d", s.Registry().Len())
	}

	body := get(r, "/").Body.String()
	if s.Registry().Len() != 1 {
		t.Fatalf("expected one session, got %d", s.Registry().Len())
	}
	if strings.Contains(body, `data-session=""`) {
		t.Error("home page should embed its session id")
	}
	if !strings.Contains(body, `class="slide active"`) {
		t.Error("expected the first hero slide to be rendered active")
	}
}

func TestPageThemeFollowsCookie(t *testing.T) {
	_, r := setupSite(t)

	if body := get(r, "/services").Body.String(); !strings.Contains(body, `data-theme="light"`) {
		t.Error("expected light theme by default")
	}
	dark := &http.Cookie{Name: settings.CookieName, Value: "true"}
	if body := get(r, "/services", dark).Body.String(); !strings.Contains(body, `data-theme="dark"`) {
		t.Error("expected dark theme from cookie")
	}
}

func TestContactPreselectsService(t *testing.T) {
	_, r := setupSite(t)
	body := get(r, "/contact?service=portrait").Body.String()
	if !strings.Contains(body, `value="Portrait Sessions" selected`) {
		t.Error("expected the requested service to be preselected")
	}
}

func TestStaticAssets(t *testing.T) {
	_, r := setupSite(t)
	for path, ct := range map[string]string{
		"/static/app.js":    "application/javascript",
		"/static/style.css": "text/css",
	} {
		w := get(r, path)
		if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), ct) {
			t.Errorf("%s: got %d %q", path, w.Code, w.Header().Get("Content-Type"))
		}
	}
}

func postEvent(r http.Handler, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/view/"+session+"/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostEventReturnsUpdate(t *testing.T) {
	s, r := setupSite(t)
	sess := s.Registry().Create(1400)

	w := postEvent(r, sess.ID, `{"type":"gallery.select","category":"Wedding"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var u Update
	if err := json.NewDecoder(w.Body).Decode(&u); err != nil {
		t.Fatalf("decoding update: %v", err)
	}
	if u.Type != "update" || u.Session != sess.ID {
		t.Errorf("unexpected update header %+v", u)
	}
	if u.Snapshot.Gallery.View != gallery.ViewCategory || u.Snapshot.Gallery.Category != "Wedding" {
		t.Errorf("unexpected gallery %+v", u.Snapshot.Gallery)
	}
	if !strings.Contains(string(u.Fragments.Gallery), "All categories") {
		t.Error("expected category detail fragment")
	}
}

func TestPostEventErrors(t *testing.T) {
	s, r := setupSite(t)
	sess := s.Registry().Create(1400)

	if w := postEvent(r, "nope", `{"type":"hero.next"}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown session: expected 404, got %d", w.Code)
	}
	if w := postEvent(r, sess.ID, `{"type":`); w.Code != http.StatusBadRequest {
		t.Errorf("bad json: expected 400, got %d", w.Code)
	}
	w := postEvent(r, sess.ID, `{"type":"gallery.select","category":"Birthday"}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "unknown gallery category") {
		t.Errorf("unknown category: got %d %s", w.Code, w.Body.String())
	}
}

func dialView(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/view?" + query
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(v); err != nil {
		t.Fatalf("reading message: %v", err)
	}
}

func TestViewChannel(t *testing.T) {
	s, r := setupSite(t)
	sess := s.Registry().Create(1400)

	server := httptest.NewServer(r)
	defer server.Close()

	conn := dialView(t, server, "session="+sess.ID+"&width=1400")
	defer conn.Close()

	var u Update
	readMessage(t, conn, &u)
	if u.Session != sess.ID || u.Snapshot.Gallery.View != gallery.ViewBrowsing {
		t.Fatalf("unexpected initial update %+v", u.Snapshot.Gallery)
	}

	if err := conn.WriteJSON(Event{Type: "gallery.select", Category: "Events"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	readMessage(t, conn, &u)
	if u.Snapshot.Gallery.Category != "Events" {
		t.Fatalf("expected Events selected, got %+v", u.Snapshot.Gallery)
	}

	if err := conn.WriteJSON(Event{Type: "gallery.warp"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var rejected channelError
	readMessage(t, conn, &rejected)
	if rejected.Type != "error" || !strings.Contains(rejected.Error, "unknown event") {
		t.Errorf("expected an error message, got %+v", rejected)
	}
}

func TestViewChannelCreatesMissingSession(t *testing.T) {
	s, r := setupSite(t)
	server := httptest.NewServer(r)
	defer server.Close()

	conn := dialView(t, server, "session=expired&width=600")
	defer conn.Close()

	var u Update
	readMessage(t, conn, &u)
	if u.Session == "" || u.Session == "expired" {
		t.Fatalf("expected a fresh session id, got %q", u.Session)
	}
	if !u.Snapshot.Viewport.Mobile {
		t.Error("expected the reported width to pick the mobile layout")
	}
	if _, ok := s.Registry().Get(u.Session); !ok {
		t.Error("new session should be registered")
	}
}

func TestClosingViewStopsAutoplay(t *testing.T) {
	clock := &manualClock{}
	s, r := setupSiteWithClock(t, clock)
	server := httptest.NewServer(r)
	defer server.Close()

	conn := dialView(t, server, "width=1400")
	var u Update
	readMessage(t, conn, &u)
	sess, ok := s.Registry().Get(u.Session)
	if !ok {
		t.Fatal("session not registered")
	}
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for sess.Subscribers() > 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscriber not released after the connection closed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	clock.Advance(heroEvery)
	if got := sess.Snapshot().Hero.ActiveIndex; got != 0 {
		t.Errorf("hero advanced to %d with no view attached", got)
	}
	if n := clock.Pending(); n != 0 {
		t.Errorf("expected no armed timers, got %d", n)
	}
}
