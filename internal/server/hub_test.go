package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scythe504/partydeck-backend/internal"
	"github.com/scythe504/partydeck-backend/internal/game"
)

// newTestSubscriber registers a subscriber without a connection; no writeLoop
// runs, so tests read the send channel directly.
func newTestSubscriber(h *Hub, roomID, viewerID string) *subscriber {
	sub := &subscriber{
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
	return sub
}

func TestEnqueueAfterCloseIsDropped(t *testing.T) {
	sub := &subscriber{roomID: "ROOM", viewerID: "alice", send: make(chan any, sendBufferSize)}

	sub.close()
	sub.enqueue("late event")
	sub.close() // closing twice is fine

	_, open := <-sub.send
	assert.False(t, open)
}

func TestPublishSurvivesConcurrentDisconnect(t *testing.T) {
	h := NewHub()
	state := game.NewReducer().NewGameState("ROOM", "alice", "Alice", internal.GameConnect4, game.RoomOptions{})

	subs := make([]*subscriber, 8)
	for i := range subs {
		subs[i] = newTestSubscriber(h, "ROOM", "alice")
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			h.PublishState(state)
		}
	}()
	go func() {
		defer wg.Done()
		for _, sub := range subs {
			// Drain a little so the publisher keeps finding buffer room.
			for len(sub.send) > sendBufferSize/2 {
				<-sub.send
			}
			h.unsubscribe(sub)
		}
	}()
	wg.Wait()

	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.Empty(t, h.rooms)
}
