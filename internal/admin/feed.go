package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"

	"github.com/nivin77789/studio-glow-vue-sub000/internal/submissions"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 10 * time.Second

// snapshot is pushed on connect and after every change. Submissions are
// newest first.
type snapshot struct {
	Type        string                   `json:"type"`
	Event       *submissions.Event       `json:"event,omitempty"`
	Submissions []submissions.Submission `json:"submissions"`
	Counts      submissions.Counts       `json:"counts"`
}

func (c *Console) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("admin websocket upgrade")
		return
	}
	defer conn.Close()

	// Subscribe before the first snapshot so no change falls in between.
	events, cancel := c.svc.Feed().Subscribe(32)
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := r.Context()
	if err := c.sendSnapshot(ctx, conn, nil); err != nil {
		return
	}
	for {
		select {
		case <-closed:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := c.sendSnapshot(ctx, conn, &ev); err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("admin websocket write")
				return
			}
		}
	}
}

func (c *Console) sendSnapshot(ctx context.Context, conn *websocket.Conn, ev *submissions.Event) error {
	subs, err := c.svc.List(ctx, submissions.Filter{Limit: snapshotLimit})
	if err != nil {
		return err
	}
	counts, err := c.svc.Counts(ctx)
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(snapshot{Type: "snapshot", Event: ev, Submissions: subs, Counts: counts})
}
