package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scythe504/partydeck-backend/internal"
)

const testNow = int64(1700000000000)

// stubRand pins every random pick to the first option so starters and
// shuffles are reproducible.
type stubRand struct{}

func (stubRand) Intn(int) int                { return 0 }
func (stubRand) Float64() float64            { return 0 }
func (stubRand) Shuffle(int, func(int, int)) {}

func testReducer() *Reducer {
	return NewReducerWith(stubRand{}, func() int64 { return testNow })
}

func act(t *testing.T, actorID string, typ ActionType, payload any) Action {
	t.Helper()
	a := Action{ActorID: actorID, Type: typ}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		a.Payload = raw
	}
	return a
}

// twoPlayerRoom seats alice (host) and bob; two-seat variants auto-start on
// bob's arrival.
func twoPlayerRoom(t *testing.T, r *Reducer, gt internal.GameType) *internal.GameState {
	t.Helper()
	s := r.NewGameState("ROOM", "alice", "Alice", gt, RoomOptions{})
	s, err := r.JoinGame(s, "bob", "Bob")
	require.NoError(t, err)
	return s
}

// threePlayerRoom builds a started cah or imposter match with alice, bob and
// carol.
func threePlayerRoom(t *testing.T, r *Reducer, gt internal.GameType) *internal.GameState {
	t.Helper()
	s := r.NewGameState("ROOM", "alice", "Alice", gt, RoomOptions{})
	s, err := r.JoinGame(s, "bob", "Bob")
	require.NoError(t, err)
	s, err = r.JoinGame(s, "carol", "Carol")
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "alice", ActionStartMatch, nil))
	require.NoError(t, err)
	return s
}

func lastHistory(t *testing.T, s *internal.GameState) internal.Turn {
	t.Helper()
	require.NotEmpty(t, s.History)
	return s.History[len(s.History)-1]
}
