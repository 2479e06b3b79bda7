package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scythe504/partydeck-backend/internal"
)

func TestWordBombAutoStart(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	assert.Equal(t, internal.MatchPlaying, s.MatchStatus)
	assert.Equal(t, "alice", s.TurnPlayerID)
	require.NotNil(t, s.WordBomb)
	assert.Equal(t, "TH", s.WordBomb.Prompt)
	assert.Equal(t, internal.WordBombInitialTimer, s.WordBomb.TimerDuration)
	assert.Equal(t, internal.WordBombInitialLives, s.Players["alice"].WordBomb.Lives)
}

func TestSubmitWordAccepted(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	next, err := r.Apply(s, act(t, "alice", ActionSubmitWord, WordPayload{Word: " The "}))
	require.NoError(t, err)
	assert.Equal(t, []string{"the"}, next.WordBomb.UsedWords)
	assert.Equal(t, "bob", next.TurnPlayerID)
	assert.ElementsMatch(t, []string{"e", "h", "t"}, next.Players["alice"].WordBomb.UsedLetters)
}

func TestSubmitWordMissKeepsTurn(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	next, err := r.Apply(s, act(t, "alice", ActionSubmitWord, WordPayload{Word: "dog"}))
	require.NoError(t, err)
	assert.Empty(t, next.WordBomb.UsedWords)
	assert.Equal(t, "alice", next.TurnPlayerID)
	assert.Contains(t, lastHistory(t, next).Content, "doesn't contain")
}

func TestSubmitWordDuplicateKeepsTurn(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	s, err := r.Apply(s, act(t, "alice", ActionSubmitWord, WordPayload{Word: "the"}))
	require.NoError(t, err)
	next, err := r.Apply(s, act(t, "bob", ActionSubmitWord, WordPayload{Word: "THE"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"the"}, next.WordBomb.UsedWords)
	assert.Equal(t, "bob", next.TurnPlayerID)
	assert.Contains(t, lastHistory(t, next).Content, "already used")
}

func TestSubmitWordOutOfTurn(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	_, err := r.Apply(s, act(t, "bob", ActionSubmitWord, WordPayload{Word: "the"}))
	assert.ErrorIs(t, err, internal.ErrNotYourTurn)
}

func TestTimerExpiredCostsLifeAndPassesTurn(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	next, err := r.Apply(s, act(t, "bob", ActionTimerExpired, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, next.Players["alice"].WordBomb.Lives)
	assert.Equal(t, "bob", next.TurnPlayerID)
	assert.Equal(t, internal.MatchPlaying, next.MatchStatus)
}

func TestEliminationEndsRound(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	// alice -> bob -> alice again; the third expiry eliminates alice.
	var err error
	for i := 0; i < 3; i++ {
		s, err = r.Apply(s, act(t, "bob", ActionTimerExpired, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, internal.MatchFinished, s.MatchStatus)
	assert.Equal(t, "bob", s.WinnerID)
	assert.Equal(t, 1, s.Players["bob"].Wins)
	assert.True(t, s.Players["alice"].WordBomb.IsEliminated)
	assert.Equal(t, testNow, s.WordBomb.LobbyCountdownStart)
	assert.ElementsMatch(t, []string{"alice", "bob"}, s.WordBomb.JoinedNextRound)
}

func TestForfeitWordResetsTimer(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)
	s.WordBomb.TimerDuration = 7

	next, err := r.Apply(s, act(t, "alice", ActionForfeitWord, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, next.Players["alice"].WordBomb.Lives)
	assert.Equal(t, internal.WordBombInitialTimer, next.WordBomb.TimerDuration)
	assert.Equal(t, "bob", next.TurnPlayerID)

	// Only the current player may give up; others are ignored.
	again, err := r.Apply(next, act(t, "alice", ActionForfeitWord, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, again.Players["alice"].WordBomb.Lives)
}

func TestGoldenHeartAtFullAlphabet(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	// Everything but the letters of "myth" is already covered.
	var covered []string
	for c := 'a'; c <= 'z'; c++ {
		switch c {
		case 'm', 'y', 't', 'h':
			continue
		}
		covered = append(covered, string(c))
	}
	s.Players["alice"].WordBomb.UsedLetters = covered

	next, err := r.Apply(s, act(t, "alice", ActionSubmitWord, WordPayload{Word: "myth"}))
	require.NoError(t, err)

	data := next.Players["alice"].WordBomb
	assert.True(t, data.GoldenHeart)
	assert.Equal(t, internal.WordBombInitialLives+1, data.Lives)
	assert.Len(t, data.UsedLetters, 26)
	assert.Contains(t, lastHistory(t, next).Content, "Golden Heart")
}

func TestGoldenHeartCapsLives(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)

	var covered []string
	for c := 'a'; c <= 'z'; c++ {
		if c == 't' || c == 'h' || c == 'e' {
			continue
		}
		covered = append(covered, string(c))
	}
	alice := s.Players["alice"].WordBomb
	alice.UsedLetters = covered
	alice.Lives = internal.WordBombMaxLives

	next, err := r.Apply(s, act(t, "alice", ActionSubmitWord, WordPayload{Word: "the"}))
	require.NoError(t, err)
	assert.Equal(t, internal.WordBombMaxLives, next.Players["alice"].WordBomb.Lives)
	assert.True(t, next.Players["alice"].WordBomb.GoldenHeart)
}

func TestTimerStepsDownWithRotations(t *testing.T) {
	assert.Equal(t, 20, timerFor(0, 2))
	assert.Equal(t, 20, timerFor(9, 2))
	assert.Equal(t, 15, timerFor(10, 2))
	assert.Equal(t, 10, timerFor(20, 2))
	assert.Equal(t, 7, timerFor(30, 2))
}

func finishedWordBombRoom(t *testing.T, r *Reducer) *internal.GameState {
	t.Helper()
	s := twoPlayerRoom(t, r, internal.GameWordBomb)
	var err error
	for i := 0; i < 3; i++ {
		s, err = r.Apply(s, act(t, "bob", ActionTimerExpired, nil))
		require.NoError(t, err)
	}
	require.Equal(t, internal.MatchFinished, s.MatchStatus)
	return s
}

func TestNextRoundEnrollment(t *testing.T) {
	r := testReducer()
	s := finishedWordBombRoom(t, r)

	s, err := r.Apply(s, act(t, "alice", ActionLeaveNextRound, nil))
	require.NoError(t, err)
	assert.NotContains(t, s.WordBomb.JoinedNextRound, "alice")

	s, err = r.Apply(s, act(t, "alice", ActionJoinNextRound, nil))
	require.NoError(t, err)
	assert.Contains(t, s.WordBomb.JoinedNextRound, "alice")

	// Joining twice does not duplicate.
	s, err = r.Apply(s, act(t, "alice", ActionJoinNextRound, nil))
	require.NoError(t, err)
	assert.Len(t, s.WordBomb.JoinedNextRound, 2)
}

func TestStartNextRoundNeedsTwo(t *testing.T) {
	r := testReducer()
	s := finishedWordBombRoom(t, r)
	s.WordBomb.JoinedNextRound = []string{"bob"}

	next, err := r.Apply(s, act(t, "alice", ActionStartWordBomb, nil))
	require.NoError(t, err)
	assert.Equal(t, internal.MatchFinished, next.MatchStatus)
}

func TestStartNextRoundResetsLives(t *testing.T) {
	r := testReducer()
	s := finishedWordBombRoom(t, r)

	next, err := r.Apply(s, act(t, "alice", ActionStartWordBomb, nil))
	require.NoError(t, err)

	assert.Equal(t, internal.MatchPlaying, next.MatchStatus)
	assert.Equal(t, "alice", next.TurnPlayerID)
	assert.Empty(t, next.WinnerID)
	for _, id := range []string{"alice", "bob"} {
		data := next.Players[id].WordBomb
		require.NotNil(t, data)
		assert.Equal(t, internal.WordBombInitialLives, data.Lives)
		assert.False(t, data.IsEliminated)
	}
	// The match log carries over between rounds in this variant.
	assert.Greater(t, len(next.History), 1)
}

func TestResetLobbyTimer(t *testing.T) {
	r := testReducer()
	s := finishedWordBombRoom(t, r)
	s.WordBomb.LobbyCountdownStart = 1

	next, err := r.Apply(s, act(t, "alice", ActionResetLobbyTimer, nil))
	require.NoError(t, err)
	assert.Equal(t, testNow, next.WordBomb.LobbyCountdownStart)
}
