package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter(defaultDark bool) chi.Router {
	r := chi.NewRouter()
	r.Use(Middleware(defaultDark))
	RegisterRoutes(r)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Preferences {
	t.Helper()
	var p Preferences
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return p
}

func TestDefaultWithoutCookie(t *testing.T) {
	for _, def := range []bool{false, true} {
		r := setupRouter(def)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/api/settings/theme", nil))
		if got := decode(t, w); got.DarkMode != def {
			t.Errorf("default %v: got %v", def, got.DarkMode)
		}
	}
}

func TestCookieOverridesDefault(t *testing.T) {
	r := setupRouter(false)
	req := httptest.NewRequest("GET", "/api/settings/theme", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "true"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !decode(t, w).DarkMode {
		t.Error("expected dark mode from cookie")
	}
}

func TestGarbageCookieFallsBack(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "purple"})
	if Read(req, true).DarkMode != true {
		t.Error("expected fallback to default")
	}
}

func TestToggleWritesCookie(t *testing.T) {
	r := setupRouter(false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/settings/theme", nil))
	if !decode(t, w).DarkMode {
		t.Fatal("empty body should toggle to dark")
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value != "true" {
		t.Fatalf("unexpected cookies %+v", cookies)
	}

	// Replay the cookie and toggle back.
	req := httptest.NewRequest("POST", "/api/settings/theme", strings.NewReader(`{}`))
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if decode(t, w).DarkMode {
		t.Error("second toggle should return to light")
	}
}

func TestExplicitSet(t *testing.T) {
	r := setupRouter(true)
	req := httptest.NewRequest("POST", "/api/settings/theme", strings.NewReader(`{"dark_mode":true}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !decode(t, w).DarkMode {
		t.Error("explicit true must not toggle")
	}

	req = httptest.NewRequest("POST", "/api/settings/theme", strings.NewReader(`{bad`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTheme(t *testing.T) {
	if (Preferences{DarkMode: true}).Theme() != "dark" || (Preferences{}).Theme() != "light" {
		t.Error("unexpected theme names")
	}
}
