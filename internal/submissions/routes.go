package submissions

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

// RetryMessage is shown to visitors when saving fails for reasons they
// cannot fix.
const RetryMessage = "Something went wrong. Please try again in a moment."

const maxBodyBytes = 64 << 10

// RegisterRoutes mounts the public form endpoints.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/forms/{kind}", handleSubmit(svc))
}

type formRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func decodeForm(r *http.Request) (formRequest, error) {
	var req formRequest
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/x-www-form-urlencoded" || ct == "multipart/form-data" {
		parse := r.ParseForm
		if ct == "multipart/form-data" {
			parse = func() error { return r.ParseMultipartForm(maxBodyBytes) }
		}
		if err := parse(); err != nil {
			return req, err
		}
		req = formRequest{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Phone:   r.PostForm.Get("phone"),
			Company: r.PostForm.Get("company"),
			Service: r.PostForm.Get("service"),
			Message: r.PostForm.Get("message"),
		}
		return req, nil
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

func handleSubmit(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := Kind(chi.URLParam(r, "kind"))
		if !kind.Valid() {
			http.Error(w, `{"error":"unknown form"}`, http.StatusNotFound)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		req, err := decodeForm(r)
		if err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		created, err := svc.Submit(r.Context(), Submission{
			Kind:    kind,
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
			Service: req.Service,
			Message: req.Message,
		})
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"id":      created.ID,
			"message": thanks(kind),
		})
	}
}

func thanks(k Kind) string {
	switch k {
	case KindNewsletter:
		return "You're subscribed. Watch your inbox for our next issue."
	case KindPartner:
		return "Thanks for reaching out. Our partnerships team will be in touch."
	default:
		return "Thanks for your message. We'll get back to you within two working days."
	}
}

// WriteError maps a submission error to its HTTP status. Unexpected errors
// are logged and answered with RetryMessage.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "please check the highlighted fields", "fields": verr.Fields})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrAlreadySubscribed):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "this email is already subscribed"})
	default:
		hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": RetryMessage})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
