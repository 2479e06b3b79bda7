package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/scythe504/partydeck-backend/internal"
	"github.com/scythe504/partydeck-backend/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket subscribes a client to a room's event stream. The socket is
// read-only for the client; actions go through the HTTP action endpoint.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	viewerID := r.URL.Query().Get("playerId")

	state, err := s.store.Get(r.Context(), roomID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("room", roomID).Msg("websocket upgrade failed")
		return
	}

	sub := s.hub.Subscribe(conn, roomID, viewerID)
	log.Debug().Str("room", roomID).Str("viewer", viewerID).Msg("subscriber connected")

	// Catch the newcomer up immediately.
	sub.enqueue(internal.Message[internal.GameUpdateData]{
		Type: "game-update",
		Data: internal.GameUpdateData{State: game.ProjectFor(state, viewerID, time.Now().UnixMilli())},
	})

	go s.readLoop(sub)
}

// readLoop drains the connection for pings and close frames; inbound payloads
// are ignored.
func (s *Server) readLoop(sub *subscriber) {
	defer s.hub.unsubscribe(sub)

	sub.conn.SetReadLimit(1024)
	sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		sub.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("room", sub.roomID).Msg("subscriber read error")
			}
			return
		}
	}
}
