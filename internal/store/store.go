package store

import (
	"context"
	"time"

	"github.com/scythe504/partydeck-backend/internal"
)

// Expiry thresholds. A finished room hangs around briefly for post-game
// screens; an idle one gets a full hour before the reaper takes it.
const (
	FinishedExpiry = 15 * time.Minute
	InactiveExpiry = 60 * time.Minute
)

// Store persists room state keyed by room id. Implementations must be safe
// for concurrent use; the reducer above them never sees storage.
type Store interface {
	// Get returns the state for a room, or internal.ErrNotFound.
	Get(ctx context.Context, roomID string) (*internal.GameState, error)

	// Put saves the state, overwriting any previous version.
	Put(ctx context.Context, state *internal.GameState) error

	// Delete removes a room. Deleting a missing room is not an error.
	Delete(ctx context.Context, roomID string) error

	// ListPublicActive returns public rooms with a match underway, newest
	// first.
	ListPublicActive(ctx context.Context) ([]*internal.GameState, error)

	// Cleanup deletes expired rooms and reports how many went.
	Cleanup(ctx context.Context, now time.Time) (int, error)

	Close()
}

func expired(status internal.PartyStatus, lastActivity int64, now time.Time) bool {
	age := now.Sub(time.UnixMilli(lastActivity))
	if status == internal.PartyFinished && age > FinishedExpiry {
		return true
	}
	return age > InactiveExpiry
}
