package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/scythe504/partydeck-backend/internal"
	"github.com/scythe504/partydeck-backend/internal/game"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

// Hub fans events out to websocket subscribers per room. Connections carry no
// game state; each subscriber only remembers which viewer it is so state
// publications can be redacted per recipient.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*subscriber]bool
}

type subscriber struct {
	conn     *websocket.Conn
	roomID   string
	viewerID string

	// mu serializes close against enqueue; sending on a closed channel
	// panics even inside a select, and publishers enqueue outside the hub
	// lock.
	mu     sync.Mutex
	send   chan any
	closed bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*subscriber]bool)}
}

func (h *Hub) Subscribe(conn *websocket.Conn, roomID, viewerID string) *subscriber {
	sub := &subscriber{
		conn:     conn,
		roomID:   roomID,
		viewerID: viewerID,
		send:     make(chan any, sendBufferSize),
	}

	h.mu.Lock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*subscriber]bool)
	}
	h.rooms[roomID][sub] = true
	h.mu.Unlock()

	go sub.writeLoop(h)
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	if subs, ok := h.rooms[sub.roomID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.rooms, sub.roomID)
		}
	}
	h.mu.Unlock()
	sub.close()
}

func (sub *subscriber) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	sub.closed = true
	close(sub.send)
}

// enqueue drops the message when the subscriber is gone or its buffer is
// full; a stalled client catches up from the next full snapshot.
func (sub *subscriber) enqueue(msg any) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	select {
	case sub.send <- msg:
	default:
		log.Warn().Str("room", sub.roomID).Str("viewer", sub.viewerID).
			Msg("subscriber buffer full, dropping event")
	}
}

func (sub *subscriber) writeLoop(h *Hub) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sub.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := sub.conn.WriteJSON(msg); err != nil {
				log.Debug().Err(err).Str("room", sub.roomID).Msg("subscriber write failed")
				h.unsubscribe(sub)
				return
			}
		case <-ticker.C:
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unsubscribe(sub)
				return
			}
		}
	}
}

// PublishState sends each subscriber their own projection of the new state.
func (h *Hub) PublishState(state *internal.GameState) {
	now := time.Now().UnixMilli()

	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.rooms[state.RoomID]))
	for sub := range h.rooms[state.RoomID] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		projected := game.ProjectFor(state, sub.viewerID, now)
		sub.enqueue(internal.Message[internal.GameUpdateData]{
			Type: "game-update",
			Data: internal.GameUpdateData{State: projected},
		})
	}
}

// PublishTyping is the ephemeral fast path; nothing is read from or written
// to the store for it.
func (h *Hub) PublishTyping(roomID, playerID, text string) {
	h.broadcast(roomID, internal.Message[internal.TypingUpdateData]{
		Type: "typing-update",
		Data: internal.TypingUpdateData{RoomID: roomID, PlayerID: playerID, Text: text},
	})
}

// PublishPartyEnded tells every subscriber the room is gone, then drops them.
func (h *Hub) PublishPartyEnded(roomID, hostID string) {
	h.broadcast(roomID, internal.Message[internal.PartyEndedData]{
		Type: "party-ended",
		Data: internal.PartyEndedData{RoomID: roomID, HostID: hostID},
	})
	h.CloseRoom(roomID)
}

func (h *Hub) broadcast(roomID string, msg any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.rooms[roomID] {
		sub.enqueue(msg)
	}
}

func (h *Hub) CloseRoom(roomID string) {
	h.mu.Lock()
	subs := h.rooms[roomID]
	delete(h.rooms, roomID)
	h.mu.Unlock()

	for sub := range subs {
		sub.close()
	}
}

func (h *Hub) Shutdown() {
	h.mu.Lock()
	rooms := h.rooms
	h.rooms = make(map[string]map[*subscriber]bool)
	h.mu.Unlock()

	for _, subs := range rooms {
		for sub := range subs {
			sub.close()
		}
	}
}
