// Package settings carries visitor preferences through the request context.
// The only preference is dark mode, persisted in a cookie.
package settings

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// CookieName is the fixed key the dark-mode flag is stored under.
const CookieName = "studio_dark_mode"

const cookieMaxAge = 365 * 24 * time.Hour

// Preferences are read once per request and written on toggle.
type Preferences struct {
	DarkMode bool `json:"dark_mode"`
}

// Theme names the CSS theme for p.
func (p Preferences) Theme() string {
	if p.DarkMode {
		return "dark"
	}
	return "light"
}

type ctxKey struct{}

// WithPreferences returns a context carrying p.
func WithPreferences(ctx context.Context, p Preferences) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the preferences in ctx, or the zero value.
func FromContext(ctx context.Context) Preferences {
	p, _ := ctx.Value(ctxKey{}).(Preferences)
	return p
}

// Read parses the cookie, falling back to defaultDark when it is missing or
// unreadable.
func Read(r *http.Request, defaultDark bool) Preferences {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Preferences{DarkMode: defaultDark}
	}
	dark, err := strconv.ParseBool(c.Value)
	if err != nil {
		return Preferences{DarkMode: defaultDark}
	}
	return Preferences{DarkMode: dark}
}

// Write stores p in the cookie. Last writer wins.
func Write(w http.ResponseWriter, p Preferences) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    strconv.FormatBool(p.DarkMode),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware puts the visitor's preferences in every request context.
func Middleware(defaultDark bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := Read(r, defaultDark)
			next.ServeHTTP(w, r.WithContext(WithPreferences(r.Context(), p)))
		})
	}
}

// RegisterRoutes mounts the theme API. The routes expect Middleware to run
// first.
func RegisterRoutes(r chi.Router) {
	r.Get("/api/settings/theme", handleGet)
	r.Post("/api/settings/theme", handleSet)
}

func handleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, FromContext(r.Context()))
}

// handleSet sets the flag from the body, or toggles it when the body is
// empty.
func handleSet(w http.ResponseWriter, r *http.Request) {
	p := FromContext(r.Context())

	var req struct {
		DarkMode *bool `json:"dark_mode"`
	}
	err := json.NewDecoder(io.LimitReader(r.Body, 1024)).Decode(&req)
	switch {
	case err == io.EOF:
		p.DarkMode = !p.DarkMode
	case err != nil:
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	case req.DarkMode == nil:
		p.DarkMode = !p.DarkMode
	default:
		p.DarkMode = *req.DarkMode
	}

	Write(w, p)
	writeJSON(w, p)
}

func writeJSON(w http.ResponseWriter, p Preferences) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}
