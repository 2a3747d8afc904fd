package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/submissions"
)

func (c *Console) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := c.svc.Counts(r.Context())
	if err != nil {
		submissions.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (c *Console) handleList(w http.ResponseWriter, r *http.Request) {
	f := submissions.Filter{
		Kind:   submissions.Kind(r.URL.Query().Get("kind")),
		Status: submissions.Status(r.URL.Query().Get("status")),
		Limit:  snapshotLimit,
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = n
		}
	}

	subs, err := c.svc.List(r.Context(), f)
	if err != nil {
		submissions.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (c *Console) handleGet(w http.ResponseWriter, r *http.Request) {
	s, err := c.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		submissions.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (c *Console) handleStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status submissions.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	updated, err := c.svc.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		submissions.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (c *Console) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		submissions.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
