package admin

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed console.html
var consoleHTML string

//go:embed login.html
var loginHTML string

var (
	consoleTmpl = template.Must(template.New("console").Parse(consoleHTML))
	loginTmpl   = template.Must(template.New("login").Parse(loginHTML))
)

// ServeIndex serves the console page.
func (c *Console) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	consoleTmpl.Execute(w, map[string]any{
		"SiteName": c.siteName,
		"Locked":   c.passcode != "",
	})
}

func (c *Console) serveLogin(w http.ResponseWriter, r *http.Request) {
	if c.passcode == "" || c.Authorized(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	c.renderLogin(w, http.StatusOK, "")
}

func (c *Console) renderLogin(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	loginTmpl.Execute(w, map[string]any{"SiteName": c.siteName, "Error": msg})
}
