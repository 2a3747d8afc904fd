// Package admin serves the submissions console: a login gate, a JSON API
// for triage and a WebSocket feed that keeps open consoles in sync.
package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/submissions"
)

// snapshotLimit caps how many submissions a console receives at once.
const snapshotLimit = 200

// Console provides the admin pages and API.
type Console struct {
	svc      *submissions.Service
	passcode string
	siteName string
}

// New creates a console. An empty passcode leaves it open.
func New(svc *submissions.Service, passcode, siteName string) *Console {
	return &Console{svc: svc, passcode: passcode, siteName: siteName}
}

// RegisterRoutes mounts the login page, the console and its API.
func (c *Console) RegisterRoutes(r chi.Router) {
	r.Get("/admin/login", c.serveLogin)
	r.Post("/admin/login", c.handleLogin)
	r.Post("/admin/logout", c.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(c.Gate)
		r.Get("/admin", c.ServeIndex)
		r.Get("/api/admin/stats", c.handleStats)
		r.Get("/api/admin/submissions", c.handleList)
		r.Get("/api/admin/submissions/{id}", c.handleGet)
		r.Put("/api/admin/submissions/{id}/status", c.handleStatus)
		r.Delete("/api/admin/submissions/{id}", c.handleDelete)
		r.Get("/ws/admin", c.handleWebSocket)
	})
}
