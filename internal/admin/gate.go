package admin

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"
)

// CookieName holds the local admin flag.
const CookieName = "studio_admin"

// flag is the cookie value that unlocks the console. It changes whenever
// the passcode does, so old cookies stop working.
func (c *Console) flag() string {
	sum := sha256.Sum256([]byte("studio-admin:" + c.passcode))
	return hex.EncodeToString(sum[:])
}

// Authorized reports whether r carries the admin flag.
func (c *Console) Authorized(r *http.Request) bool {
	if c.passcode == "" {
		return true
	}
	ck, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(ck.Value), []byte(c.flag())) == 1
}

// Gate sends visitors without the flag to the login page, or answers 401
// for API and socket requests.
func (c *Console) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.Authorized(r) {
			next.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/ws/") {
			http.Error(w, `{"error":"admin login required"}`, http.StatusUnauthorized)
			return
		}
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
	})
}

func (c *Console) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	given := r.PostForm.Get("passcode")
	if c.passcode != "" && subtle.ConstantTimeCompare([]byte(given), []byte(c.passcode)) != 1 {
		hlog.FromRequest(r).Warn().Str("remote", r.RemoteAddr).Msg("admin login failed")
		c.renderLogin(w, http.StatusUnauthorized, "That passcode is not right.")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    c.flag(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (c *Console) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: CookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
