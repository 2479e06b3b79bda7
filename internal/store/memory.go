package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/scythe504/partydeck-backend/internal"
)

// Memory is the dev/test store. States are cloned on the way in and out so
// no caller ever aliases what the map holds.
type Memory struct {
	mu    sync.RWMutex
	games map[string]*internal.GameState
}

func NewMemory() *Memory {
	return &Memory{games: make(map[string]*internal.GameState)}
}

func (m *Memory) Get(ctx context.Context, roomID string) (*internal.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[roomID]
	if !ok {
		return nil, fmt.Errorf("room %s: %w", roomID, internal.ErrNotFound)
	}
	return s.Clone(), nil
}

func (m *Memory) Put(ctx context.Context, state *internal.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[state.RoomID] = state.Clone()
	return nil
}

func (m *Memory) Delete(ctx context.Context, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, roomID)
	return nil
}

func (m *Memory) ListPublicActive(ctx context.Context) ([]*internal.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*internal.GameState
	for _, s := range m.games {
		if s.Settings.Visibility == internal.VisibilityPublic &&
			s.Status != internal.PartyFinished && s.Status != internal.PartyLobby {
			out = append(out, s.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if len(out) > publicListLimit {
		out = out[:publicListLimit]
	}
	return out, nil
}

func (m *Memory) Cleanup(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, s := range m.games {
		last := s.LastActivity
		if last == 0 {
			last = s.CreatedAt
		}
		if expired(s.Status, last, now) {
			delete(m.games, id)
			n++
		}
	}
	return n, nil
}

func (m *Memory) Close() {}
