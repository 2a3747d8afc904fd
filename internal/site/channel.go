package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	writeWait     = 10 * time.Second
	maxEventBytes = 4 << 10
)

type channelError struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// handleChannel attaches a browser to its session. An unknown or expired
// session id gets a fresh session; the first update carries the new id.
func (s *Site) handleChannel(w http.ResponseWriter, r *http.Request) {
	width, _ := strconv.Atoi(r.URL.Query().Get("width"))
	sess, ok := s.reg.Get(r.URL.Query().Get("session"))
	if !ok {
		if width <= 0 {
			width = DefaultWidth
		}
		sess = s.reg.Create(width)
	} else if width > 0 {
		changed, err := sess.Apply(Event{Type: "viewport.resize", Width: width})
		hlog.FromRequest(r).Debug().Err(err).Str("session", sess.ID).Int("width", width).
			Bool("changed", changed).Msg("view reattached")
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("view websocket upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxEventBytes)

	updates, cancel := sess.Subscribe()
	defer cancel()

	rejects := make(chan string, 4)
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			var ev Event
			err := conn.ReadJSON(&ev)
			if err != nil {
				var syntax *json.SyntaxError
				var typ *json.UnmarshalTypeError
				if !errors.As(err, &syntax) && !errors.As(err, &typ) {
					return
				}
				err = fmt.Errorf("%w: %v", ErrBadEvent, err)
			} else if _, err = sess.Apply(ev); err == nil {
				continue
			}
			select {
			case rejects <- err.Error():
			default:
			}
		}
	}()

	logger := hlog.FromRequest(r)
	if err := write(conn, sess.Update()); err != nil {
		return
	}
	for {
		select {
		case <-closed:
			return
		case msg := <-rejects:
			if err := write(conn, channelError{Type: "error", Error: msg}); err != nil {
				return
			}
		case u, ok := <-updates:
			if !ok {
				return
			}
			if err := write(conn, u); err != nil {
				logger.Debug().Err(err).Str("session", sess.ID).Msg("view websocket write")
				return
			}
		}
	}
}

func write(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// handleEvent is the plain HTTP fallback. It applies one event and answers
// with the resulting update.
func (s *Site) handleEvent(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.reg.Get(chi.URLParam(r, "session"))
	if !ok {
		http.Error(w, `{"error":"unknown session"}`, http.StatusNotFound)
		return
	}

	var ev Event
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes)).Decode(&ev); err != nil {
		http.Error(w, `{"error":"invalid event"}`, http.StatusBadRequest)
		return
	}
	if _, err := sess.Apply(ev); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sess.Update())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
